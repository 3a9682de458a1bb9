// Package game implements the rules engine for a round-based
// rock-paper-scissors match: move and outcome representation, round
// resolution, score accumulation and first-to-N match completion.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove indicates external input that does not map to a legal move.
var ErrInvalidMove = errors.New("invalid move")

// Move is a player's chosen action for a round. The zero value is
// MoveUnset, the state of a round side before a choice has been made.
type Move int

const (
	MoveUnset Move = iota
	MoveRock
	MovePaper
	MoveScissors
)

func (m Move) String() string {
	switch m {
	case MoveUnset:
		return "Unset"
	case MoveRock:
		return "Rock"
	case MovePaper:
		return "Paper"
	case MoveScissors:
		return "Scissors"
	default:
		return "Unknown"
	}
}

// Code returns the numeric input code for the move (1 rock, 2 paper,
// 3 scissors), or 0 for anything that is not a legal move.
func (m Move) Code() int {
	if !m.valid() {
		return 0
	}
	return int(m)
}

// valid reports whether m is one of the three legal moves.
func (m Move) valid() bool {
	return m >= MoveRock && m <= MoveScissors
}

// ParseMove maps external input to a Move. It accepts the numeric codes
// "1", "2" and "3" as well as the move names, case-insensitively.
// Anything else fails with ErrInvalidMove; input is never silently
// defaulted to a move.
func ParseMove(input string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "rock":
		return MoveRock, nil
	case "2", "paper":
		return MovePaper, nil
	case "3", "scissors":
		return MoveScissors, nil
	default:
		return MoveUnset, fmt.Errorf("%w: %q", ErrInvalidMove, input)
	}
}

// Moves returns the three legal moves in input-code order.
func Moves() []Move {
	return []Move{MoveRock, MovePaper, MoveScissors}
}
