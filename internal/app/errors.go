package service

import (
	"errors"
)

// Sentinel kinds for service errors.
var (
	// ErrInvalidVote marks a submission with missing or identical park ids.
	ErrInvalidVote = errors.New("invalid vote submission")
)
