package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrParkNotFound = errors.New("park not found")
	ErrDuplicateID  = errors.New("park id already exists")
	ErrInvalidLimit = errors.New("invalid recent votes limit")
)
