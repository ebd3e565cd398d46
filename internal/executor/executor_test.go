package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun_ExecutesEveryTaskOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	tasks := make([]*Task, 20)
	for i := range tasks {
		tasks[i] = &Task{
			ID: "task",
			Fn: func(ctx context.Context) error {
				calls.Add(1)
				return nil
			},
		}
	}

	err := New(4, false).Run(context.Background(), tasks)

	require.NoError(t, err)
	require.Equal(t, int32(20), calls.Load())
	for _, task := range tasks {
		require.Equal(t, Done, task.GetState())
	}
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	tasks := make([]*Task, 16)
	for i := range tasks {
		tasks[i] = &Task{
			ID: "task",
			Fn: func(ctx context.Context) error {
				cur := inFlight.Add(1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				return nil
			},
		}
	}

	err := New(3, false).Run(context.Background(), tasks)

	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRun_SequentialOrderWithOneWorker(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var order []int
	tasks := make([]*Task, 5)
	for i := range tasks {
		i := i
		tasks[i] = &Task{
			ID: "task",
			Fn: func(ctx context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			},
		}
	}

	err := New(1, false).Run(context.Background(), tasks)

	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestRun_ContinueOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tasks := []*Task{
		{ID: "a", Fn: func(ctx context.Context) error { return nil }},
		{ID: "b", Fn: func(ctx context.Context) error { return boom }},
		{ID: "c", Fn: func(ctx context.Context) error { return nil }},
	}

	err := New(1, false).Run(context.Background(), tasks)

	require.NoError(t, err, "continue-on-error mode must not surface task failures")
	require.Equal(t, Done, tasks[0].GetState())
	require.Equal(t, Failed, tasks[1].GetState())
	require.Equal(t, Done, tasks[2].GetState())
	require.Equal(t, 1, CountFailed(tasks))
	require.ErrorIs(t, tasks[1].Err(), boom)
}

func TestRun_FailFastSkipsRemaining(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var ran atomic.Int32
	tasks := []*Task{
		{ID: "a", Fn: func(ctx context.Context) error { return boom }},
		{ID: "b", Fn: func(ctx context.Context) error { ran.Add(1); return nil }},
		{ID: "c", Fn: func(ctx context.Context) error { ran.Add(1); return nil }},
	}

	err := New(1, true).Run(context.Background(), tasks)

	require.ErrorIs(t, err, boom)
	require.Equal(t, int32(0), ran.Load())
	require.Equal(t, Failed, tasks[0].GetState())
	require.Equal(t, Skipped, tasks[1].GetState())
	require.Equal(t, Skipped, tasks[2].GetState())
}

func TestRun_CancelledContextSkipsEverything(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := []*Task{
		{ID: "a", Fn: func(ctx context.Context) error { return nil }},
	}

	err := New(1, false).Run(ctx, tasks)

	require.NoError(t, err)
	require.Equal(t, Skipped, tasks[0].GetState())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "done", Done.String())
	require.Equal(t, "failed", Failed.String())
	require.Equal(t, "skipped", Skipped.String())
}
