package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wizzomafizzo/roshambo/internal/game"
	"github.com/wizzomafizzo/roshambo/internal/logging"
)

// ErrInvalidRoundCount indicates a simulation request for no rounds.
var ErrInvalidRoundCount = errors.New("round count must be at least 1")

// SimulationResult tallies a random-vs-random run.
type SimulationResult struct {
	MoveCounts map[game.Move]uint
	Rounds     uint
	FirstWins  uint
	SecondWins uint
	Ties       uint
}

// Simulate plays rounds with both sides drawing random moves and returns
// the tally. Scores accumulate through the same Record path the
// interactive match uses.
func (a *App) Simulate(ctx context.Context, rounds int) (*SimulationResult, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRoundCount, rounds)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	ctx, err = a.loggingContext(ctx, cfg)
	if err != nil {
		return nil, err
	}

	source, err := a.moveSource(cfg.Seed)
	if err != nil {
		return nil, err
	}

	score := game.NewScore()
	result := &SimulationResult{
		Rounds:     uint(rounds),
		MoveCounts: make(map[game.Move]uint, 3),
	}

	for i := 0; i < rounds; i++ {
		round := game.RoundMoves{First: source.Move(), Second: source.Move()}
		result.MoveCounts[round.First]++
		result.MoveCounts[round.Second]++

		outcome, err := round.Resolve()
		if err != nil {
			return nil, fmt.Errorf("resolve simulated round %d: %w", i+1, err)
		}

		score.Record(outcome)
		if outcome == game.OutcomeTie {
			result.Ties++
		}
	}

	result.FirstWins = score.FirstWins
	result.SecondWins = score.SecondWins

	logging.Get(ctx).Info().
		Int("rounds", rounds).
		Uint("first_wins", result.FirstWins).
		Uint("second_wins", result.SecondWins).
		Uint("ties", result.Ties).
		Msg("simulation finished")

	return result, nil
}

// Summary renders the tally for console output.
func (r *SimulationResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Simulated %d rounds\n", r.Rounds)
	fmt.Fprintf(&b, "  First party wins:  %d\n", r.FirstWins)
	fmt.Fprintf(&b, "  Second party wins: %d\n", r.SecondWins)
	fmt.Fprintf(&b, "  Ties:              %d\n", r.Ties)
	b.WriteString("Move distribution:\n")
	for _, move := range game.Moves() {
		fmt.Fprintf(&b, "  %-8s %d\n", move, r.MoveCounts[move])
	}
	return b.String()
}
