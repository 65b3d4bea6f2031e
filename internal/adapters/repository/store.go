// Package repository defines the park store and vote ledger contract.
package repository

import (
	"context"
	"time"

	"github.com/okian/vista/internal/domain/model"
)

// DefaultRecentLimit is the number of votes returned when no limit is given.
const DefaultRecentLimit = 10

// Store provides read/write access to the park catalog and the vote ledger.
//
// The vote side is append-only: there is no update or delete. Timestamps
// assigned by AppendVote are non-decreasing with respect to call order.
type Store interface {
	// ListParks returns every park. Order is unspecified to callers;
	// implementations keep insertion order.
	ListParks(ctx context.Context) ([]model.Park, error)

	// GetPark returns the park with the given id, or ErrParkNotFound.
	GetPark(ctx context.Context, id string) (model.Park, error)

	// CreatePark inserts a new park. Rating defaults to model.DefaultRating
	// and counters are zeroed unless explicitly supplied. Returns
	// ErrDuplicateID when the id already exists.
	CreatePark(ctx context.Context, park model.Park) (model.Park, error)

	// ApplyVoteOutcome applies a completed comparison to both parks in one
	// atomic step: the winner gains winnerDelta rating, a win, and a vote;
	// the loser gains loserDelta rating, a loss, and a vote. Either both
	// parks are updated or neither is. Returns the updated parks.
	ApplyVoteOutcome(ctx context.Context, winnerID, loserID string, winnerDelta, loserDelta int) (winner, loser model.Park, err error)

	// AppendVote assigns a fresh id and the current timestamp to the vote,
	// stores it, and returns the stored record.
	AppendVote(ctx context.Context, vote model.Vote) (model.Vote, error)

	// RecentVotes returns the limit most recent votes, newest first. Votes
	// with equal timestamps order most-recently-appended first.
	RecentVotes(ctx context.Context, limit int) ([]model.Vote, error)

	// CountVotes returns the total number of votes ever appended.
	CountVotes(ctx context.Context) (int, error)

	// CountVotesSince returns the number of votes created at or after t.
	CountVotesSince(ctx context.Context, t time.Time) (int, error)
}
