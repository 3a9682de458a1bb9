package game

// Outcome is the result of comparing two moves. Outcomes are produced by
// Resolve and by Score.CheckForWinner; callers have no reason to build
// one directly outside of tests.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeFirstWins
	OutcomeSecondWins
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTie:
		return "Tie"
	case OutcomeFirstWins:
		return "FirstWins"
	case OutcomeSecondWins:
		return "SecondWins"
	default:
		return "Unknown"
	}
}
