package app

import (
	"io"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/roshambo/internal/game"
	"github.com/wizzomafizzo/roshambo/internal/prompt"
)

// Option configures an App. Options exist so tests can inject scripted
// prompters, deterministic move sources and in-memory filesystems.
type Option func(*App)

// WithFilesystem replaces the OS filesystem.
func WithFilesystem(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// WithOutput redirects user-facing output.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithPrompter injects a prompter; the caller keeps ownership of it.
func WithPrompter(p prompt.Prompter) Option {
	return func(a *App) { a.prompter = p }
}

// WithMoveSource injects a move source, overriding the configured seed.
func WithMoveSource(s *game.MoveSource) Option {
	return func(a *App) { a.source = s }
}

// WithLogWriter sends structured logs to w instead of the rotated file.
func WithLogWriter(w io.Writer) Option {
	return func(a *App) { a.logWriter = w }
}
