package game

import (
	"fmt"
	"math/rand"

	"github.com/wizzomafizzo/roshambo/internal/random"
)

// MoveSource draws uniformly random legal moves from its own seeded
// generator, so callers and tests control determinism instead of sharing
// process-wide random state. A source is not safe for concurrent use;
// the engine is single-threaded.
type MoveSource struct {
	rng *rand.Rand
}

// NewMoveSource returns a deterministic source for the given seed.
func NewMoveSource(seed int64) *MoveSource {
	return &MoveSource{rng: rand.New(rand.NewSource(seed))}
}

// NewMoveSourceFromEntropy returns a source seeded from crypto/rand.
func NewMoveSourceFromEntropy() (*MoveSource, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("seed move source: %w", err)
	}
	return NewMoveSource(seed), nil
}

// Move draws Rock, Paper or Scissors with equal probability. It never
// returns MoveUnset.
func (s *MoveSource) Move() Move {
	return MoveRock + Move(s.rng.Intn(3))
}
