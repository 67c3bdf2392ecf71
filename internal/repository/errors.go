package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAllocation is returned when the sequence upsert was not acknowledged.
	// No id was reserved.
	ErrAllocation = errors.New("sequence allocation failed")

	// ErrPersistence is returned when the store fails or does not acknowledge a write
	ErrPersistence = errors.New("persistence failure")

	// ErrDuplicate is returned when a write violates a uniqueness constraint
	ErrDuplicate = errors.New("duplicate entity")
)
