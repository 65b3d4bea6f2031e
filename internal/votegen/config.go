// Package votegen drives a running voting service with randomized
// head-to-head votes and verifies the resulting rankings.
package votegen

import "time"

// Config holds configuration for the vote generator.
type Config struct {
	BaseURL  string        // Base URL of the service
	NumVotes int           // Number of votes to cast
	Workers  int           // Number of concurrent workers
	TopN     int           // Number of top rankings to display
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Enable verbose logging
}

// Stats holds generator run statistics.
type Stats struct {
	VotesCast       int
	VotesSuccessful int
	VotesRejected   int
	VotesFailed     int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
