package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/roshambo/internal/app"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roshambo",
		Short: "First-to-N rock-paper-scissors in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	// Command output goes to stdout; cobra falls back to stderr otherwise
	rootCmd.SetOut(os.Stdout)

	// Add persistent config flag
	rootCmd.PersistentFlags().StringP("config", "c", "roshambo.yml", "Path to config file")

	// Add subcommands
	rootCmd.AddCommand(
		createPlayCommand(),
		createSimulateCommand(),
		createRulesCommand(),
		createInitCommand(),
		createValidateCommand(),
	)

	return rootCmd
}

// createAppFromCommand extracts the config path and creates the app.
func createAppFromCommand(cmd *cobra.Command) (*app.App, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return app.New(configPath), nil
}
