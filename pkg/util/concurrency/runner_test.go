package concurrency

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestForEachRunsAllJobs(t *testing.T) {
	var sum atomic.Int64
	jobs := []int64{1, 2, 3, 4, 5}

	err := ForEach(context.Background(), jobs, 2, func(ctx context.Context, job int64) error {
		sum.Add(job)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), sum.Load())
}

func TestForEachStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int64

	jobs := make([]int, 100)
	err := ForEach(context.Background(), jobs, 1, func(ctx context.Context, job int) error {
		if calls.Inc() == 3 {
			return boom
		}
		return nil
	})
	require.Equal(t, boom, err)
	assert.Less(t, calls.Load(), int64(100))
}

func TestForEachEmptyJobs(t *testing.T) {
	err := ForEach(context.Background(), []int{}, 4, func(ctx context.Context, job int) error {
		t.Fatal("should not be called")
		return nil
	})
	require.NoError(t, err)
}

func TestForEachHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	err := ForEach(ctx, []int{1, 2, 3}, 1, func(ctx context.Context, job int) error {
		calls.Inc()
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, int64(0), calls.Load())
}
