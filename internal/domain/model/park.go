// Package model contains domain models passed between layers.
package model

import "time"

// DefaultRating is the strength estimate assigned to every newly created park.
const DefaultRating = 1500

// DefaultEmoji is used when a park is created without one.
const DefaultEmoji = "🏞️"

// Park represents a rankable national park. Descriptive fields are display
// only and never touched by the rating path. Rating and the three counters
// are mutated exclusively through the store's vote-outcome operation.
type Park struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	Emoji           string `json:"emoji"`
	DateEstablished string `json:"dateEstablished,omitempty"`
	Area            string `json:"area,omitempty"`
	Visitors        string `json:"visitors,omitempty"`

	Rating     int `json:"rating"`
	TotalVotes int `json:"totalVotes"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
}

// RankedPark is a Park annotated with its 1-based position in the full
// ordering by descending rating. Change is the rank delta against a previous
// snapshot; without snapshot history it is always zero.
type RankedPark struct {
	Park
	Rank   int `json:"rank"`
	Change int `json:"change"`
}

// Vote is an immutable record of one completed comparison. ID and CreatedAt
// are assigned by the ledger on append; the remaining fields capture the
// outcome so history never needs replaying.
type Vote struct {
	ID                 string    `json:"id"`
	WinnerID           string    `json:"winnerId"`
	LoserID            string    `json:"loserId"`
	WinnerRatingChange int       `json:"winnerRatingChange"`
	LoserRatingChange  int       `json:"loserRatingChange"`
	WinnerRatingAfter  int       `json:"winnerRatingAfter"`
	LoserRatingAfter   int       `json:"loserRatingAfter"`
	CreatedAt          time.Time `json:"createdAt"`
}

// VoteWithNames is a Vote joined with the display names of both parks,
// used by the recent-votes read path.
type VoteWithNames struct {
	Vote
	WinnerName string `json:"winnerName"`
	LoserName  string `json:"loserName"`
}

// Stats summarizes the vote history and catalog state.
type Stats struct {
	TotalVotes  int `json:"totalVotes"`
	VotesToday  int `json:"votesToday"`
	ActiveParks int `json:"activeParks"`
	TopRating   int `json:"topRating"`
}
