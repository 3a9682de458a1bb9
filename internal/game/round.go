package game

import (
	"errors"
	"fmt"
)

// ErrInvalidRoundState indicates a round reached resolution with a side
// that never chose a move.
var ErrInvalidRoundState = errors.New("round has an unset move")

// beats maps each move to the move it defeats. The relation is total and
// antisymmetric over the three legal moves, so for any unequal pair
// exactly one side is the beater.
var beats = map[Move]Move{
	MoveRock:     MoveScissors,
	MoveScissors: MovePaper,
	MovePaper:    MoveRock,
}

// Resolve applies the beats relation to a pair of moves. Both sides must
// hold a legal move; an unset or out-of-range side fails with
// ErrInvalidRoundState rather than resolving to a winner.
func Resolve(first, second Move) (Outcome, error) {
	if !first.valid() {
		return OutcomeTie, fmt.Errorf("%w: first side is %s", ErrInvalidRoundState, first)
	}
	if !second.valid() {
		return OutcomeTie, fmt.Errorf("%w: second side is %s", ErrInvalidRoundState, second)
	}

	switch {
	case first == second:
		return OutcomeTie, nil
	case beats[first] == second:
		return OutcomeFirstWins, nil
	default:
		return OutcomeSecondWins, nil
	}
}

// RoundMoves holds one round's inputs. It is consumed by Resolve and not
// retained once the round's outcome is known.
type RoundMoves struct {
	First  Move
	Second Move
}

// NewRoundMoves returns a round with both sides unset.
func NewRoundMoves() RoundMoves {
	return RoundMoves{}
}

// Resolve resolves the round's pair of moves.
func (r RoundMoves) Resolve() (Outcome, error) {
	return Resolve(r.First, r.Second)
}
