package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprminimizer/internal/cli/styles"
	"github.com/bnema/hyprminimizer/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create the default config file, print its path or write its JSON schema.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the default configuration as TOML, plus config.schema.json next to it.

An existing config file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: writeDefaultConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := resolveConfigFile()
		if err != nil {
			return fmt.Errorf("failed to get config file path: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

// writeDefaultConfig backs both `config init` and --generate-config-file.
func writeDefaultConfig(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}
	return initConfigFile(cmd.OutOrStdout(), path)
}

func initConfigFile(w io.Writer, path string) error {
	theme := styles.NewTheme()

	if err := config.WriteDefaultConfig(path); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			_, _ = fmt.Fprintln(w, theme.Info("Config file already exists: "+path))
			return nil
		}
		return err
	}
	schemaPath := config.SchemaFileFor(path)
	if err := config.WriteSchemaFile(schemaPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, theme.Success("Wrote default config: "+path))
	_, _ = fmt.Fprintln(w, "  "+theme.MutedBadge("schema")+" "+schemaPath)
	return nil
}
