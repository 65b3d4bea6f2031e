// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	repository "github.com/okian/vista/internal/adapters/repository"
	"github.com/okian/vista/internal/domain/matchup"
	"github.com/okian/vista/internal/domain/model"
	"github.com/okian/vista/internal/domain/rating"
	"github.com/okian/vista/internal/seed"
	"github.com/okian/vista/pkg/logger"
	"github.com/okian/vista/pkg/metrics"
)

// VoteOutcome bundles the recorded vote with the updated parks.
type VoteOutcome struct {
	Vote   model.Vote `json:"vote"`
	Winner model.Park `json:"winner"`
	Loser  model.Park `json:"loser"`
}

// Service implements the API dependencies for the park voting system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	selector *matchup.Selector
	engine   *rating.Engine

	// Configuration
	catalog     []model.Park
	recentLimit int
	now         func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the persistence backend. Defaults to the in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSelector sets the matchup selector.
func WithSelector(selector *matchup.Selector) Option {
	return func(s *Service) {
		if selector != nil {
			s.selector = selector
		}
	}
}

// WithRatingEngine sets the rating engine.
func WithRatingEngine(engine *rating.Engine) Option {
	return func(s *Service) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithClock sets the time source used for the daily vote window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeedCatalog sets the parks loaded into an empty store at startup.
// An empty slice disables seeding.
func WithSeedCatalog(parks []model.Park) Option {
	return func(s *Service) {
		s.catalog = parks
	}
}

// WithRecentVotesLimit sets the default page size for the recent votes feed.
func WithRecentVotesLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.recentLimit = limit
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		selector:    matchup.NewSelector(),
		engine:      rating.NewEngine(),
		catalog:     seed.Catalog(),
		recentLimit: repository.DefaultRecentLimit,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service and seeds the catalog into the store.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting voting service...")

	if s.store == nil {
		s.store = repository.NewMemStore()
		s.logger.Info(ctx, "using in-memory store")
	}

	seeded := 0
	for _, park := range s.catalog {
		if _, err := s.store.CreatePark(ctx, park); err != nil {
			if err == repository.ErrDuplicateID {
				continue
			}
			return fmt.Errorf("seed park %s: %w", park.ID, err)
		}
		seeded++
	}

	s.started = true
	s.logger.Info(ctx, "voting service started",
		logger.Int("catalog", len(s.catalog)),
		logger.Int("seeded", seeded),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping voting service...")

	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "voting service stopped")
}

// Parks returns all parks in catalog order.
func (s *Service) Parks(ctx context.Context) ([]model.Park, error) {
	return s.store.ListParks(ctx)
}

// Rankings returns all parks ordered by rating, highest first. Ties are
// broken by id so the order is stable across calls.
func (s *Service) Rankings(ctx context.Context) ([]model.RankedPark, error) {
	parks, err := s.store.ListParks(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(parks, func(i, j int) bool {
		if parks[i].Rating != parks[j].Rating {
			return parks[i].Rating > parks[j].Rating
		}
		return parks[i].ID < parks[j].ID
	})

	ranked := make([]model.RankedPark, len(parks))
	for i, park := range parks {
		ranked[i] = model.RankedPark{
			Park: park,
			Rank: i + 1,
			// Rank movement needs a rating history; reported as steady
			// until one is kept.
			Change: 0,
		}
	}

	if len(ranked) > 0 {
		metrics.UpdateTopRating(ranked[0].Rating)
	}
	return ranked, nil
}

// Matchup picks two distinct random parks for a head-to-head vote.
func (s *Service) Matchup(ctx context.Context) (model.Park, model.Park, error) {
	parks, err := s.store.ListParks(ctx)
	if err != nil {
		return model.Park{}, model.Park{}, err
	}

	first, second, err := s.selector.Pick(parks)
	if err != nil {
		metrics.RecordMatchupError()
		return model.Park{}, model.Park{}, err
	}

	metrics.RecordMatchupServed()
	return first, second, nil
}

// SubmitVote records a head-to-head result: both ratings move by the
// ELO deltas, win/loss counters advance, and the vote is appended to the
// ledger. The ledger append happens only after both park updates succeed.
func (s *Service) SubmitVote(ctx context.Context, winnerID, loserID string) (VoteOutcome, error) {
	if winnerID == "" || loserID == "" || winnerID == loserID {
		metrics.RecordVoteError()
		return VoteOutcome{}, ErrInvalidVote
	}

	winnerBefore, err := s.store.GetPark(ctx, winnerID)
	if err != nil {
		metrics.RecordVoteError()
		return VoteOutcome{}, err
	}
	loserBefore, err := s.store.GetPark(ctx, loserID)
	if err != nil {
		metrics.RecordVoteError()
		return VoteOutcome{}, err
	}

	winnerDelta, loserDelta := s.engine.Update(winnerBefore.Rating, loserBefore.Rating)

	winner, loser, err := s.store.ApplyVoteOutcome(ctx, winnerID, loserID, winnerDelta, loserDelta)
	if err != nil {
		metrics.RecordVoteError()
		return VoteOutcome{}, err
	}

	vote, err := s.store.AppendVote(ctx, model.Vote{
		WinnerID:           winnerID,
		LoserID:            loserID,
		WinnerRatingChange: winnerDelta,
		LoserRatingChange:  loserDelta,
		WinnerRatingAfter:  winner.Rating,
		LoserRatingAfter:   loser.Rating,
	})
	if err != nil {
		return VoteOutcome{}, err
	}

	metrics.RecordVote()
	s.logger.Debug(ctx, "vote recorded",
		logger.String("winner", winnerID),
		logger.String("loser", loserID),
		logger.Int("winnerDelta", winnerDelta),
		logger.Int("loserDelta", loserDelta),
	)

	return VoteOutcome{Vote: vote, Winner: winner, Loser: loser}, nil
}

// RecentVotes returns the most recent votes, newest first, with park names
// attached. A non-positive limit falls back to the configured default, and
// votes referencing parks that have since disappeared are labeled Unknown.
func (s *Service) RecentVotes(ctx context.Context, limit int) ([]model.VoteWithNames, error) {
	if limit < 1 {
		limit = s.recentLimit
	}

	votes, err := s.store.RecentVotes(ctx, limit)
	if err != nil {
		return nil, err
	}

	named := make([]model.VoteWithNames, len(votes))
	for i, vote := range votes {
		named[i] = model.VoteWithNames{
			Vote:       vote,
			WinnerName: s.parkName(ctx, vote.WinnerID),
			LoserName:  s.parkName(ctx, vote.LoserID),
		}
	}
	return named, nil
}

func (s *Service) parkName(ctx context.Context, id string) string {
	park, err := s.store.GetPark(ctx, id)
	if err != nil {
		return "Unknown"
	}
	return park.Name
}

// Stats returns aggregate voting statistics. VotesToday counts votes since
// local midnight of the clock's current day; TopRating is zero for an empty
// catalog.
func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	total, err := s.store.CountVotes(ctx)
	if err != nil {
		return model.Stats{}, err
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.store.CountVotesSince(ctx, midnight)
	if err != nil {
		return model.Stats{}, err
	}

	parks, err := s.store.ListParks(ctx)
	if err != nil {
		return model.Stats{}, err
	}

	top := 0
	for _, park := range parks {
		if park.Rating > top {
			top = park.Rating
		}
	}

	metrics.UpdateTopRating(top)

	return model.Stats{
		TotalVotes:  total,
		VotesToday:  today,
		ActiveParks: len(parks),
		TopRating:   top,
	}, nil
}
