package game

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Move
	}{
		{name: "code 1 is rock", input: "1", want: MoveRock},
		{name: "code 2 is paper", input: "2", want: MovePaper},
		{name: "code 3 is scissors", input: "3", want: MoveScissors},
		{name: "name rock", input: "rock", want: MoveRock},
		{name: "name mixed case", input: "Paper", want: MovePaper},
		{name: "surrounding whitespace", input: "  3\n", want: MoveScissors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMove(tt.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseMoveRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "0", "4", "-1", "spock", "rocks", "1 2", "one"}

	for _, input := range inputs {
		t.Run("input "+input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMove(input)
			if !errors.Is(err, ErrInvalidMove) {
				t.Fatalf("Expected ErrInvalidMove for %q, got %v", input, err)
			}
			if got != MoveUnset {
				t.Errorf("Expected MoveUnset alongside the error, got %s", got)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want string
		move Move
	}{
		{move: MoveUnset, want: "Unset"},
		{move: MoveRock, want: "Rock"},
		{move: MovePaper, want: "Paper"},
		{move: MoveScissors, want: "Scissors"},
		{move: Move(99), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.move.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMoveCode(t *testing.T) {
	t.Parallel()

	if got := MoveRock.Code(); got != 1 {
		t.Errorf("Expected rock code 1, got %d", got)
	}
	if got := MoveScissors.Code(); got != 3 {
		t.Errorf("Expected scissors code 3, got %d", got)
	}
	if got := MoveUnset.Code(); got != 0 {
		t.Errorf("Expected unset code 0, got %d", got)
	}
	if got := Move(42).Code(); got != 0 {
		t.Errorf("Expected out-of-range code 0, got %d", got)
	}
}

func TestParseMoveRoundTripsCodes(t *testing.T) {
	t.Parallel()

	for _, move := range Moves() {
		parsed, err := ParseMove(move.String())
		if err != nil {
			t.Fatalf("Expected %s to parse by name, got %v", move, err)
		}
		if parsed != move {
			t.Errorf("Expected %s, got %s", move, parsed)
		}
	}
}
