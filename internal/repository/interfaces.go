package repository

import "context"

// SequenceAllocator hands out strictly increasing values for named sequences.
type SequenceAllocator interface {
	// Next returns the next value of the sequence, starting at 1.
	Next(ctx context.Context, name string) (int64, error)
	// Current returns the last issued value, or 0 if none was issued yet.
	Current(ctx context.Context, name string) (int64, error)
}
