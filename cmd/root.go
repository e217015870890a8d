package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"limeal.fr/rsplaunch/internal/config"
)

var debug bool
var cfgFile string

// exitCode is what the process exits with once the command returned
// without error; launch sets it to the companion's exit code.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "rsplaunch",
	Short: "rsplaunch runs a companion program through a response file",
	Long: heredoc.Doc(`
		rsplaunch runs a companion program through a response file.

		Arguments are written to a temporary response file, one per line, and the
		companion (found next to rsplaunch) is started with @<response file> as its
		only argument. rsplaunch waits for it, removes the file and exits with the
		companion's exit code.
	`),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.rsplaunch.yaml)")
}

func initConfig() {
	if err := config.Init(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "Can't read config:", err)
		os.Exit(1)
	}
}

func configureLogging() {
	level := config.Load(viper.GetViper()).Level()
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
