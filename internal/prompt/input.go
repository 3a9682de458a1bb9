// Package prompt collects validated game input from an interactive user.
// Invalid input is retried with a plain loop, never recursion, and the
// rules engine only ever sees parsed, legal values.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/wizzomafizzo/roshambo/internal/game"
)

// ErrCancelled indicates the user aborted input with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// MoveInput reads one move for the labelled party, re-prompting until the
// input parses. Cancellation propagates as ErrCancelled.
func MoveInput(prompter Prompter, label string) (game.Move, error) {
	coloredPrompt := color.CyanString("%s [1 Rock / 2 Paper / 3 Scissors]: ", label)

	for {
		input, err := prompter.Prompt(coloredPrompt)
		if err != nil {
			return game.MoveUnset, promptErr(err)
		}

		move, err := game.ParseMove(input)
		if err != nil {
			if errors.Is(err, game.ErrInvalidMove) {
				color.Yellow("Not a move: %q. Enter 1, 2 or 3.", input)
				continue
			}
			return game.MoveUnset, err
		}

		return move, nil
	}
}

// TargetInput reads the match length, re-prompting until the input is a
// positive number.
func TargetInput(prompter Prompter) (game.Settings, error) {
	coloredPrompt := color.CyanString("Play first to how many wins? ")

	for {
		input, err := prompter.Prompt(coloredPrompt)
		if err != nil {
			return game.Settings{}, promptErr(err)
		}

		target, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
		if err != nil {
			color.Yellow("Not a number: %q.", input)
			continue
		}

		settings, err := game.NewSettings(uint(target))
		if err != nil {
			if errors.Is(err, game.ErrInvalidConfiguration) {
				color.Yellow("Match length must be at least 1.")
				continue
			}
			return game.Settings{}, err
		}

		return settings, nil
	}
}

// promptErr normalizes liner's abort signals into ErrCancelled.
func promptErr(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return ErrCancelled
	}
	return fmt.Errorf("prompt failed: %w", err)
}
