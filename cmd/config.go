package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
	"limeal.fr/rsplaunch/internal/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config <command>",
	Short: "Configuration commands",
	Long:  `Commands for managing the launcher configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Load(viper.GetViper())
		out := cmd.OutOrStdout()

		switch configFormat {
		case "yaml":
			output, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("failed to marshal to YAML: %w", err)
			}
			fmt.Fprint(out, string(output))
		case "toml":
			if err := toml.NewEncoder(out).Encode(settings); err != nil {
				return fmt.Errorf("failed to marshal to TOML: %w", err)
			}
		case "json":
			output, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal to JSON: %w", err)
			}
			fmt.Fprintln(out, string(output))
		default:
			return fmt.Errorf("unknown format %q, expected yaml, json or toml", configFormat)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  `Set a configuration value that will be persisted in the config file.`,
	Example: heredoc.Doc(`
		# Use another companion
		$ rsplaunch config set companion chocolate-doom

		# Refuse to launch with a partially written response file
		$ rsplaunch config set strict true
	`),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(viper.GetViper(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully set %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configShowCmd.Flags().StringVar(&configFormat, "format", "yaml", "Output format. Accepts 'yaml', 'json' or 'toml'")
}
