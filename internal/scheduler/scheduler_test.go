package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
	"github.com/MrJamesThe3rd/nomina/internal/scheduler"
)

type fakeApplier struct {
	mu     sync.Mutex
	months []period.Month
	err    error
	ran    chan struct{}
}

func (f *fakeApplier) ApplyRecurring(_ context.Context, month period.Month) ([]*novelty.Novelty, error) {
	f.mu.Lock()
	f.months = append(f.months, month)
	f.mu.Unlock()

	if f.ran != nil {
		select {
		case f.ran <- struct{}{}:
		default:
		}
	}

	if f.err != nil {
		return nil, f.err
	}

	return []*novelty.Novelty{{ID: uuid.New()}}, nil
}

func (f *fakeApplier) calls() []period.Month {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]period.Month(nil), f.months...)
}

func waitFor(t *testing.T, ch <-chan struct{}, within time.Duration) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(within):
		t.Fatal("job did not run in time")
	}
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	s := scheduler.New()

	var calls atomic.Int32

	ran := make(chan struct{}, 1)

	require.NoError(t, s.AddJob("reconcile", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}

		return nil
	}))

	s.Start()
	waitFor(t, ran, 2*time.Second)
	s.Stop()

	assert.Equal(t, int32(1), calls.Load())
}

func TestScheduler_RunsOnInterval(t *testing.T) {
	s := scheduler.New()

	var calls atomic.Int32

	ran := make(chan struct{}, 4)

	require.NoError(t, s.AddJob("tick", time.Second, func(ctx context.Context) error {
		calls.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}

		return errors.New("logged, not returned")
	}))

	s.Start()
	waitFor(t, ran, 2*time.Second)
	waitFor(t, ran, 3*time.Second)
	s.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestScheduler_StopCancelsContext(t *testing.T) {
	s := scheduler.New()

	started := make(chan struct{})
	done := make(chan error, 1)

	require.NoError(t, s.AddJob("long", time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		done <- ctx.Err()

		return ctx.Err()
	}))

	s.Start()
	waitFor(t, started, 2*time.Second)
	s.Stop()

	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_SkipsDisabledJobs(t *testing.T) {
	s := scheduler.New()

	var calls atomic.Int32

	require.NoError(t, s.AddJob("disabled", 0, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}))

	s.Start()
	s.Stop()

	assert.Equal(t, int32(0), calls.Load())
}

func TestReconcileJob_Run(t *testing.T) {
	applier := &fakeApplier{}
	job := scheduler.NewReconcileJob(applier).WithClock(func() time.Time {
		return time.Date(2024, 4, 17, 10, 0, 0, 0, time.UTC)
	})

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, []period.Month{period.MustParse("2024-04")}, applier.calls())
}

func TestReconcileJob_RunError(t *testing.T) {
	boom := errors.New("lock timeout")
	job := scheduler.NewReconcileJob(&fakeApplier{err: boom}).WithClock(func() time.Time {
		return time.Date(2024, 4, 17, 10, 0, 0, 0, time.UTC)
	})

	err := job.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "2024-04")
}

func TestReconcileJob_Register(t *testing.T) {
	applier := &fakeApplier{ran: make(chan struct{}, 1)}
	s := scheduler.New()

	err := scheduler.NewReconcileJob(applier).
		WithClock(func() time.Time { return time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC) }).
		Register(s, time.Hour)
	require.NoError(t, err)

	s.Start()
	waitFor(t, applier.ran, 2*time.Second)
	s.Stop()

	assert.Equal(t, []period.Month{period.MustParse("2024-05")}, applier.calls())
}
