package services

import "errors"

// Seed failures. Every error returned by SeedService wraps exactly one of these.
var (
	// ErrDatasetUnreadable: the card dataset could not be read (missing file, bucket error).
	ErrDatasetUnreadable = errors.New("card dataset unreadable")

	// ErrDatasetInvalid: the dataset was read but is malformed or fails validation.
	ErrDatasetInvalid = errors.New("card dataset invalid")

	// ErrFixtureMissing: a row the seed just wrote cannot be found again.
	ErrFixtureMissing = errors.New("seeded fixture missing")

	// ErrStorage: the database rejected a create or delete.
	ErrStorage = errors.New("storage operation failed")
)
