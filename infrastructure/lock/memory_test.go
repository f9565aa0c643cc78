package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_Acquire(t *testing.T) {
	ctx := context.Background()
	locker := NewMemoryLocker()

	release, err := locker.Acquire(ctx, "sync")
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "sync")
	assert.ErrorIs(t, err, ErrLocked)

	// chaves diferentes não competem
	other, err := locker.Acquire(ctx, "outra")
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, release(ctx))
	require.NoError(t, release(ctx))

	again, err := locker.Acquire(ctx, "sync")
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}

func TestMemoryLocker_OnlyOneWinner(t *testing.T) {
	ctx := context.Background()
	locker := NewMemoryLocker()

	var winners atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := locker.Acquire(ctx, "sync"); err == nil {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
