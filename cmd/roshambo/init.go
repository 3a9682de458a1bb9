package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/roshambo/internal/config"
)

// createInitCommand creates the init command.
func createInitCommand() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long:  "Write a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			if err := config.WriteDefault(afero.NewOsFs(), configPath, force); err != nil {
				return fmt.Errorf("failed to write default config: %w", err)
			}

			cmd.Printf("Wrote %s\n", configPath)
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return initCmd
}
