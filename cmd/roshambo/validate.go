package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long:  "Validate configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliApp, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			result, err := cliApp.ValidateConfig()
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			cmd.Print(result)
			return nil
		},
	}
}
