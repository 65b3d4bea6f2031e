package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/vista/internal/domain/model"
	"github.com/okian/vista/pkg/metrics"
)

// MemStore is the in-process Store implementation. A single RWMutex guards
// both the park map and the vote slice; ApplyVoteOutcome holds the write
// lock across both park mutations so concurrent votes touching the same park
// never interleave their read-modify-write cycles.
type MemStore struct {
	mu    sync.RWMutex
	parks map[string]model.Park
	order []string // park ids in insertion order
	votes []model.Vote

	now   func() time.Time
	newID func() string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		parks: make(map[string]model.Park),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListParks returns all parks in insertion order.
func (s *MemStore) ListParks(_ context.Context) ([]model.Park, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parks := make([]model.Park, 0, len(s.order))
	for _, id := range s.order {
		parks = append(parks, s.parks[id])
	}
	return parks, nil
}

// GetPark returns the park with the given id.
func (s *MemStore) GetPark(_ context.Context, id string) (model.Park, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	park, ok := s.parks[id]
	if !ok {
		return model.Park{}, ErrParkNotFound
	}
	return park, nil
}

// CreatePark inserts a new park, rejecting duplicate ids.
func (s *MemStore) CreatePark(_ context.Context, park model.Park) (model.Park, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.parks[park.ID]; exists {
		return model.Park{}, ErrDuplicateID
	}

	if park.Rating == 0 {
		park.Rating = model.DefaultRating
	}
	if park.Emoji == "" {
		park.Emoji = model.DefaultEmoji
	}
	park.TotalVotes = 0
	park.Wins = 0
	park.Losses = 0

	s.parks[park.ID] = park
	s.order = append(s.order, park.ID)
	metrics.UpdateParksTotal(len(s.parks))
	return park, nil
}

// ApplyVoteOutcome updates both parks under a single write lock. Both parks
// are looked up before either is written so a missing id leaves the store
// untouched.
func (s *MemStore) ApplyVoteOutcome(_ context.Context, winnerID, loserID string, winnerDelta, loserDelta int) (model.Park, model.Park, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	winner, ok := s.parks[winnerID]
	if !ok {
		return model.Park{}, model.Park{}, ErrParkNotFound
	}
	loser, ok := s.parks[loserID]
	if !ok {
		return model.Park{}, model.Park{}, ErrParkNotFound
	}

	winner.Rating += winnerDelta
	winner.TotalVotes++
	winner.Wins++

	loser.Rating += loserDelta
	loser.TotalVotes++
	loser.Losses++

	s.parks[winnerID] = winner
	s.parks[loserID] = loser
	return winner, loser, nil
}

// AppendVote stamps the vote with a fresh id and the current time and
// appends it to the ledger.
func (s *MemStore) AppendVote(_ context.Context, vote model.Vote) (model.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vote.ID = s.newID()
	vote.CreatedAt = s.now()
	s.votes = append(s.votes, vote)
	metrics.UpdateLedgerSize(len(s.votes))
	return vote, nil
}

// RecentVotes returns the limit most recent votes, newest first. The ledger
// slice is already in append order, so a reverse walk yields newest first
// with ties broken by most-recently-appended.
func (s *MemStore) RecentVotes(_ context.Context, limit int) ([]model.Vote, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit > len(s.votes) {
		limit = len(s.votes)
	}
	recent := make([]model.Vote, 0, limit)
	for i := len(s.votes) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, s.votes[i])
	}
	return recent, nil
}

// CountVotes returns the total number of votes appended.
func (s *MemStore) CountVotes(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.votes), nil
}

// CountVotesSince returns the number of votes created at or after t.
func (s *MemStore) CountVotesSince(_ context.Context, t time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, vote := range s.votes {
		if !vote.CreatedAt.Before(t) {
			count++
		}
	}
	return count, nil
}
