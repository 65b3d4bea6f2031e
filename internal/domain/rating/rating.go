// Package rating implements the ELO update rule for pairwise comparisons.
package rating

import "math"

// DefaultKFactor is the maximum possible rating swing per comparison.
const DefaultKFactor = 32

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithKFactor overrides the default K-factor. Non-positive values are ignored.
func WithKFactor(k int) Option {
	return func(e *Engine) {
		if k > 0 {
			e.kFactor = k
		}
	}
}

// Engine computes rating deltas from a pair of current ratings and a declared
// winner. It holds no state beyond its configuration; Update is pure and
// deterministic, total over all integer pairs.
type Engine struct {
	kFactor int
}

// NewEngine creates an Engine with the standard K-factor of 32.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{kFactor: DefaultKFactor}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// KFactor returns the configured K-factor.
func (e *Engine) KFactor() int {
	return e.kFactor
}

// Update returns the rating deltas for the winner and loser of a comparison,
// computed from their pre-vote ratings. The winner delta is always >= 0 and
// the loser delta always <= 0; the magnitudes may differ by one because each
// delta is rounded independently (half away from zero).
func (e *Engine) Update(winnerRating, loserRating int) (winnerDelta, loserDelta int) {
	k := float64(e.kFactor)
	expectedWinner := expectedScore(winnerRating, loserRating)
	expectedLoser := expectedScore(loserRating, winnerRating)

	winnerDelta = int(math.Round(k * (1 - expectedWinner)))
	loserDelta = int(math.Round(k * (0 - expectedLoser)))
	return winnerDelta, loserDelta
}

// expectedScore is the ELO-predicted probability that a beats b.
// Always strictly between 0 and 1.
func expectedScore(a, b int) float64 {
	return 1 / (1 + math.Pow(10, float64(b-a)/400))
}
