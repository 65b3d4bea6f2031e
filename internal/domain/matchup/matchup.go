// Package matchup picks pairs of distinct parks to present for comparison.
package matchup

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/okian/vista/internal/domain/model"
)

// ErrInsufficientParks signals that fewer than two parks are available.
var ErrInsufficientParks = errors.New("not enough parks for a matchup")

// Option applies a configuration option to the Selector.
type Option func(*Selector)

// WithSource sets the random source. Tests use a seeded source to force
// specific matchups.
func WithSource(src rand.Source) Option {
	return func(s *Selector) {
		if src != nil {
			s.rng = rand.New(src) //nolint:gosec // non-cryptographic selection
		}
	}
}

// Selector draws two distinct parks uniformly at random. It has no side
// effects and records nothing; every park has non-zero probability of
// selection on each draw.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a Selector seeded from the wall clock.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // non-cryptographic selection
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick returns two distinct parks from the given set, or
// ErrInsufficientParks when fewer than two exist.
func (s *Selector) Pick(parks []model.Park) (model.Park, model.Park, error) {
	if len(parks) < 2 {
		return model.Park{}, model.Park{}, ErrInsufficientParks
	}

	s.mu.Lock()
	first := s.rng.Intn(len(parks))
	second := s.rng.Intn(len(parks) - 1)
	s.mu.Unlock()

	// Shift the second draw past the first so the pair is always distinct.
	if second >= first {
		second++
	}
	return parks[first], parks[second], nil
}
