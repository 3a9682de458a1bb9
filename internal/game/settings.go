package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates a match length that can never be won.
var ErrInvalidConfiguration = errors.New("target win count must be at least 1")

// Settings defines match completion: the number of round wins required
// to take the match. Immutable once constructed.
type Settings struct {
	FirstTo uint
}

// NewSettings validates and builds match settings. A target of zero
// fails with ErrInvalidConfiguration.
func NewSettings(firstTo uint) (Settings, error) {
	if firstTo == 0 {
		return Settings{}, fmt.Errorf("%w: got 0", ErrInvalidConfiguration)
	}
	return Settings{FirstTo: firstTo}, nil
}

// DefaultSettings returns a first-to-1 match, the shortest match that
// can be won.
func DefaultSettings() Settings {
	return Settings{FirstTo: 1}
}

// FirstToThree returns the common first-to-3 match.
func FirstToThree() Settings {
	return Settings{FirstTo: 3}
}
