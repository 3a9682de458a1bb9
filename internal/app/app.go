// Package app composes the rules engine with the console front-end:
// interactive matches, random-vs-random simulation and config surfaces.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/roshambo/internal/config"
	"github.com/wizzomafizzo/roshambo/internal/game"
	"github.com/wizzomafizzo/roshambo/internal/prompt"
)

type App struct {
	fs       afero.Fs
	out      io.Writer
	prompter prompt.Prompter
	source   *game.MoveSource
	// logWriter redirects structured logs away from the rotated file,
	// used by tests.
	logWriter  io.Writer
	configPath string
}

func New(configPath string, opts ...Option) *App {
	app := &App{
		configPath: configPath,
		fs:         afero.NewOsFs(),
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// loadConfig reads the config file, treating a missing file as the
// shipped defaults so the game runs without any setup.
func (a *App) loadConfig() (*config.Config, error) {
	exists, err := afero.Exists(a.fs, a.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config path: %w", err)
	}
	if !exists {
		return config.Default(), nil
	}
	return config.Load(a.fs, a.configPath)
}

// ValidateConfig loads and validates the config file, returning a
// human-readable summary. Unlike the game commands, a missing file is an
// error here.
func (a *App) ValidateConfig() (string, error) {
	cfg, err := config.Load(a.fs, a.configPath)
	if err != nil {
		return "", fmt.Errorf("config invalid: %w", err)
	}

	return fmt.Sprintf("Config valid: first to %d, %s vs %s\n",
		cfg.FirstTo, cfg.Labels.First, cfg.Labels.Second), nil
}

// RulesTable renders the outcome of every move combination, first party
// down the rows.
func (*App) RulesTable() string {
	var b strings.Builder
	b.WriteString("First party result for every move pair:\n")
	for _, first := range game.Moves() {
		for _, second := range game.Moves() {
			outcome, err := game.Resolve(first, second)
			if err != nil {
				// Unreachable: Moves() only yields legal moves.
				continue
			}
			fmt.Fprintf(&b, "  %-8s vs %-8s -> %s\n", first, second, verdict(outcome))
		}
	}
	return b.String()
}

// verdict renders an outcome from the first party's point of view.
func verdict(outcome game.Outcome) string {
	switch outcome {
	case game.OutcomeFirstWins:
		return "win"
	case game.OutcomeSecondWins:
		return "lose"
	case game.OutcomeTie:
		return "tie"
	default:
		return outcome.String()
	}
}

// moveSource returns the injected source if any, otherwise one built
// from the configured seed (zero meaning entropy).
func (a *App) moveSource(seed int64) (*game.MoveSource, error) {
	if a.source != nil {
		return a.source, nil
	}
	if seed != 0 {
		return game.NewMoveSource(seed), nil
	}
	source, err := game.NewMoveSourceFromEntropy()
	if err != nil {
		return nil, fmt.Errorf("failed to create move source: %w", err)
	}
	return source, nil
}

// newPrompter returns the injected prompter if any, otherwise a liner
// prompter. The returned closer is a no-op for injected prompters, whose
// lifecycle the caller owns.
func (a *App) newPrompter() (prompt.Prompter, func()) {
	if a.prompter != nil {
		return a.prompter, func() {}
	}
	p := prompt.NewLinerPrompter()
	return p, func() { _ = p.Close() }
}

// isCancelled reports whether the user walked away mid-prompt.
func isCancelled(err error) bool {
	return errors.Is(err, prompt.ErrCancelled)
}
