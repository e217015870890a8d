package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"limeal.fr/rsplaunch/internal/config"
	"limeal.fr/rsplaunch/pkg/launcher"
	"limeal.fr/rsplaunch/pkg/responsefile"
)

// openFolder is swapped in tests.
var openFolder = launcher.OpenFolder

var revealCmd = &cobra.Command{
	Use:   "reveal [path]",
	Short: "Open a folder in the file manager",
	Long: `Open a folder in the file manager.
Without a path, the directory response files are written to is opened.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Load(viper.GetViper()).TempDir
		if path == "" {
			path = responsefile.TempDir()
		}
		if len(args) > 0 {
			path = args[0]
		}

		if !openFolder(path) {
			return fmt.Errorf("failed to open %s", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(revealCmd)
}
