package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/roshambo/internal/app"
)

// createPlayCommand creates the play command.
func createPlayCommand() *cobra.Command {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive match against a random opponent",
		Long:  "Play an interactive match against a random opponent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliApp, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			firstTo, err := cmd.Flags().GetUint("first-to")
			if err != nil {
				return fmt.Errorf("failed to get first-to flag: %w", err)
			}
			seed, err := cmd.Flags().GetInt64("seed")
			if err != nil {
				return fmt.Errorf("failed to get seed flag: %w", err)
			}
			noColor, err := cmd.Flags().GetBool("no-color")
			if err != nil {
				return fmt.Errorf("failed to get no-color flag: %w", err)
			}
			askTarget, err := cmd.Flags().GetBool("ask")
			if err != nil {
				return fmt.Errorf("failed to get ask flag: %w", err)
			}

			return cliApp.Play(cmd.Context(), app.PlayOptions{
				FirstTo:   firstTo,
				Seed:      seed,
				NoColor:   noColor,
				AskTarget: askTarget,
			})
		},
	}

	playCmd.Flags().Uint("first-to", 0, "Round wins required to take the match (overrides config)")
	playCmd.Flags().Int64("seed", 0, "Deterministic opponent seed (0 seeds from entropy)")
	playCmd.Flags().Bool("no-color", false, "Disable colored output")
	playCmd.Flags().Bool("ask", false, "Prompt for the match length before playing")

	return playCmd
}
