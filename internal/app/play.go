package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/roshambo/internal/config"
	"github.com/wizzomafizzo/roshambo/internal/game"
	"github.com/wizzomafizzo/roshambo/internal/logging"
	"github.com/wizzomafizzo/roshambo/internal/prompt"
)

// PlayOptions carry per-invocation overrides from the command line.
// Zero values defer to the config file.
type PlayOptions struct {
	FirstTo   uint
	Seed      int64
	NoColor   bool
	AskTarget bool
}

// Play runs one interactive match: prompt, resolve, record, repeat until
// one side reaches the target. Tied rounds are replayed and do not
// advance the round counter.
func (a *App) Play(ctx context.Context, opts PlayOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if opts.FirstTo > 0 {
		cfg.FirstTo = opts.FirstTo
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.NoColor {
		cfg.Color = false
	}

	ctx, err = a.loggingContext(ctx, cfg)
	if err != nil {
		return err
	}
	log := logging.Get(ctx)

	source, err := a.moveSource(cfg.Seed)
	if err != nil {
		return err
	}

	prompter, closePrompter := a.newPrompter()
	defer closePrompter()

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	if opts.AskTarget {
		settings, err = prompt.TargetInput(prompter)
		if err != nil {
			if isCancelled(err) {
				fmt.Fprintln(a.out, "Match abandoned.")
				return nil
			}
			return err
		}
	}

	pal := newPalette(cfg.Color)
	pal.info.Fprintf(a.out, "Welcome to roshambo! First to %d wins.\n", settings.FirstTo)

	score := game.NewScore()
	round := 0
	for {
		round++
		fmt.Fprintf(a.out, "\nRound %d\n", round)

		firstMove, err := prompt.MoveInput(prompter, cfg.Labels.First)
		if err != nil {
			if isCancelled(err) {
				fmt.Fprintln(a.out, "Match abandoned.")
				return nil
			}
			return err
		}
		secondMove := source.Move()

		outcome, err := game.Resolve(firstMove, secondMove)
		if err != nil {
			return fmt.Errorf("resolve round %d: %w", round, err)
		}

		log.Debug().
			Int("round", round).
			Stringer("first", firstMove).
			Stringer("second", secondMove).
			Stringer("outcome", outcome).
			Msg("round resolved")

		fmt.Fprintf(a.out, "%s chose %s. %s chose %s.\n",
			cfg.Labels.First, firstMove, cfg.Labels.Second, secondMove)

		score.Record(outcome)
		switch outcome {
		case game.OutcomeTie:
			pal.tie.Fprintf(a.out, "Tie! Replaying round %d.\n", round)
			round--
			continue
		case game.OutcomeFirstWins:
			pal.win.Fprintf(a.out, "%s wins the round!\n", cfg.Labels.First)
		case game.OutcomeSecondWins:
			pal.lose.Fprintf(a.out, "%s wins the round!\n", cfg.Labels.Second)
		}

		pal.score.Fprintf(a.out, "Scores: %s %d, %s %d\n",
			cfg.Labels.First, score.FirstWins, cfg.Labels.Second, score.SecondWins)

		winner, err := score.CheckForWinner(settings)
		if err != nil {
			if errors.Is(err, game.ErrNoWinnerYet) {
				continue
			}
			return err
		}

		log.Info().
			Stringer("winner", winner).
			Uint("first_wins", score.FirstWins).
			Uint("second_wins", score.SecondWins).
			Msg("match finished")

		if winner == game.OutcomeFirstWins {
			pal.win.Fprintf(a.out, "\n%s won the match %d-%d!\n",
				cfg.Labels.First, score.FirstWins, score.SecondWins)
		} else {
			pal.lose.Fprintf(a.out, "\n%s won the match %d-%d!\n",
				cfg.Labels.Second, score.SecondWins, score.FirstWins)
		}
		return nil
	}
}

// loggingContext attaches the configured logger to ctx.
func (a *App) loggingContext(ctx context.Context, cfg *config.Config) (context.Context, error) {
	return logging.New(ctx, a.fs, logging.Config{
		Writer: a.logWriter,
		Level:  logging.ParseLevel(cfg.LogLevel),
	})
}

// palette holds the per-role output styles. Styles are per-instance so
// disabling color never touches the package-global color state.
type palette struct {
	info  *color.Color
	win   *color.Color
	lose  *color.Color
	tie   *color.Color
	score *color.Color
}

func newPalette(enabled bool) *palette {
	pal := &palette{
		info:  color.New(color.FgBlue, color.Bold),
		win:   color.New(color.FgGreen),
		lose:  color.New(color.FgRed),
		tie:   color.New(color.FgBlue),
		score: color.New(color.FgMagenta),
	}
	if !enabled {
		for _, c := range []*color.Color{pal.info, pal.win, pal.lose, pal.tie, pal.score} {
			c.DisableColor()
		}
	}
	return pal
}
