package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createSimulateCommand creates the simulate command.
func createSimulateCommand() *cobra.Command {
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run random-vs-random rounds and print the tally",
		Long:  "Run random-vs-random rounds and print the tally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliApp, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			rounds, err := cmd.Flags().GetInt("rounds")
			if err != nil {
				return fmt.Errorf("failed to get rounds flag: %w", err)
			}

			result, err := cliApp.Simulate(cmd.Context(), rounds)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			cmd.Print(result.Summary())
			return nil
		},
	}

	simulateCmd.Flags().Int("rounds", 256, "Number of rounds to simulate")

	return simulateCmd
}
