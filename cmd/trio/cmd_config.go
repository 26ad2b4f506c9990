package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"trio/internal/config"
)

var forceConfig bool

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the trio config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Args:  cobra.MaximumNArgs(1),
	// init replaces the file, so a broken file must not stop it.
	PersistentPreRunE: setupDefaults,
	RunE:              initConfig,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  showConfig,
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceConfig, "force", "f", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := config.Path(configPath)
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceConfig {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Debug("config written")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(currentConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
