package main

import (
	"github.com/spf13/cobra"
)

// createRulesCommand creates the rules command.
func createRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the outcome of every move combination",
		Long:  "Show the outcome of every move combination",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliApp, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			cmd.Print(cliApp.RulesTable())
			return nil
		},
	}
}
