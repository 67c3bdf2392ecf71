package sqlite

import (
	"context"
	"sync"
	"testing"

	"github.com/ganot/tasktrack/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSequenceAllocator_Next(t *testing.T) {
	db := NewTestDB(t)
	seq := NewSequenceAllocator(db, nil)
	ctx := context.Background()

	// Counter is created lazily
	current, err := seq.Current(ctx, "item_id")
	require.NoError(t, err)
	require.Equal(t, int64(0), current)

	for i := int64(1); i <= 10; i++ {
		value, err := seq.Next(ctx, "item_id")
		require.NoError(t, err)
		require.Equal(t, i, value)
	}

	current, err = seq.Current(ctx, "item_id")
	require.NoError(t, err)
	require.Equal(t, int64(10), current)
}

func TestSequenceAllocator_IndependentNames(t *testing.T) {
	db := NewTestDB(t)
	seq := NewSequenceAllocator(db, nil)
	ctx := context.Background()

	a, err := seq.Next(ctx, "a")
	require.NoError(t, err)
	_, err = seq.Next(ctx, "a")
	require.NoError(t, err)
	b, err := seq.Next(ctx, "b")
	require.NoError(t, err)

	require.Equal(t, int64(1), a)
	require.Equal(t, int64(1), b)
}

func TestSequenceAllocator_EmptyName(t *testing.T) {
	db := NewTestDB(t)
	seq := NewSequenceAllocator(db, nil)

	_, err := seq.Next(context.Background(), "")
	require.ErrorIs(t, err, repository.ErrAllocation)
}

func TestSequenceAllocator_StoreFailure(t *testing.T) {
	db := NewTestDB(t)
	seq := NewSequenceAllocator(db, nil)
	require.NoError(t, db.Close())

	_, err := seq.Next(context.Background(), "item_id")
	require.ErrorIs(t, err, repository.ErrAllocation)
}

func TestSequenceAllocator_Concurrent(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		testConcurrentNext(t, NewTestDB(t))
	})
	t.Run("file", func(t *testing.T) {
		testConcurrentNext(t, NewFileTestDB(t))
	})
}

func testConcurrentNext(t *testing.T, db *DB) {
	t.Helper()
	seq := NewSequenceAllocator(db, nil)
	ctx := context.Background()

	const workers = 8
	const perWorker = 25

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				value, err := seq.Next(ctx, "item_id")
				if err != nil {
					t.Errorf("next: %v", err)
					return
				}
				mu.Lock()
				if seen[value] {
					t.Errorf("duplicate value %d", value)
				}
				seen[value] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
	for i := int64(1); i <= workers*perWorker; i++ {
		require.True(t, seen[i], "missing value %d", i)
	}
}
