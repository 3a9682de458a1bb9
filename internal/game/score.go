package game

import (
	"errors"
	"fmt"
)

// ErrNoWinnerYet is the expected negative result from CheckForWinner
// while neither side has reached the target. Callers match it with
// errors.Is and keep playing.
var ErrNoWinnerYet = errors.New("no winner yet")

// Score tracks the running win counters for both parties within a match.
// The surrounding game loop owns it; the engine only increments and
// reads. Counters only ever grow, except through Reset.
type Score struct {
	FirstWins  uint
	SecondWins uint
}

// NewScore returns a zeroed score.
func NewScore() *Score {
	return &Score{}
}

// Record applies one round outcome: each non-tie outcome increments
// exactly one counter, a tie changes nothing.
func (s *Score) Record(outcome Outcome) {
	switch outcome {
	case OutcomeFirstWins:
		s.FirstWins++
	case OutcomeSecondWins:
		s.SecondWins++
	case OutcomeTie:
	}
}

// CheckForWinner returns the match winner once a counter reaches the
// configured target, or ErrNoWinnerYet while the match is still live.
// The comparison is >= rather than == so a missed check cannot strand a
// finished match. Should both counters meet the target, which correct
// sequential recording cannot produce, the first party takes priority.
func (s *Score) CheckForWinner(settings Settings) (Outcome, error) {
	switch {
	case s.FirstWins >= settings.FirstTo:
		return OutcomeFirstWins, nil
	case s.SecondWins >= settings.FirstTo:
		return OutcomeSecondWins, nil
	default:
		return OutcomeTie, fmt.Errorf("%w: %d-%d, first to %d",
			ErrNoWinnerYet, s.FirstWins, s.SecondWins, settings.FirstTo)
	}
}

// Reset zeroes both counters.
func (s *Score) Reset() {
	s.FirstWins = 0
	s.SecondWins = 0
}
