package game

import (
	"errors"
	"testing"
)

// The beats relation is total over the nine move combinations, so the
// resolver is tested against every one of them.
func TestResolveAllCombinations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		first  Move
		second Move
		want   Outcome
	}{
		{MoveRock, MoveRock, OutcomeTie},
		{MovePaper, MovePaper, OutcomeTie},
		{MoveScissors, MoveScissors, OutcomeTie},
		{MoveRock, MoveScissors, OutcomeFirstWins},
		{MovePaper, MoveRock, OutcomeFirstWins},
		{MoveScissors, MovePaper, OutcomeFirstWins},
		{MoveRock, MovePaper, OutcomeSecondWins},
		{MovePaper, MoveScissors, OutcomeSecondWins},
		{MoveScissors, MoveRock, OutcomeSecondWins},
	}

	if len(tests) != len(Moves())*len(Moves()) {
		t.Fatalf("Expected %d combinations, got %d", len(Moves())*len(Moves()), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.first.String()+" vs "+tt.second.String(), func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.first, tt.second)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

// Swapping the sides must swap the winner and preserve ties.
func TestResolveSymmetry(t *testing.T) {
	t.Parallel()

	for _, first := range Moves() {
		for _, second := range Moves() {
			forward, err := Resolve(first, second)
			if err != nil {
				t.Fatalf("Resolve(%s, %s) failed: %v", first, second, err)
			}
			backward, err := Resolve(second, first)
			if err != nil {
				t.Fatalf("Resolve(%s, %s) failed: %v", second, first, err)
			}

			if (forward == OutcomeFirstWins) != (backward == OutcomeSecondWins) {
				t.Errorf("Expected mirrored winners for %s vs %s, got %s and %s",
					first, second, forward, backward)
			}
			if (forward == OutcomeTie) != (first == second) {
				t.Errorf("Expected tie exactly when moves are equal, got %s for %s vs %s",
					forward, first, second)
			}
		}
	}
}

func TestResolveRejectsUnsetMoves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		first  Move
		second Move
	}{
		{name: "first unset", first: MoveUnset, second: MoveRock},
		{name: "second unset", first: MovePaper, second: MoveUnset},
		{name: "both unset", first: MoveUnset, second: MoveUnset},
		{name: "out of range", first: Move(7), second: MoveRock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(tt.first, tt.second)
			if !errors.Is(err, ErrInvalidRoundState) {
				t.Fatalf("Expected ErrInvalidRoundState, got %v", err)
			}
		})
	}
}

func TestNewRoundMovesStartsUnset(t *testing.T) {
	t.Parallel()

	round := NewRoundMoves()
	if round.First != MoveUnset || round.Second != MoveUnset {
		t.Fatalf("Expected both sides unset, got %s and %s", round.First, round.Second)
	}

	// A freshly built round must not resolve to a winner.
	if _, err := round.Resolve(); !errors.Is(err, ErrInvalidRoundState) {
		t.Errorf("Expected ErrInvalidRoundState, got %v", err)
	}
}

func TestRoundMovesResolve(t *testing.T) {
	t.Parallel()

	round := RoundMoves{First: MoveRock, Second: MoveScissors}

	outcome, err := round.Resolve()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if outcome != OutcomeFirstWins {
		t.Errorf("Expected FirstWins, got %s", outcome)
	}
}
