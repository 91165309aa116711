package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs interval jobs on a cron runner. Every job also runs once
// when the scheduler starts.
type Scheduler struct {
	cron    *cron.Cron
	entries []cron.EntryID

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Scheduler {
	logger := cronLogger{}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob schedules fn every interval. A non-positive interval disables the job.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) error {
	if interval <= 0 {
		slog.Warn("scheduled job disabled", "name", name, "interval", interval)
		return nil
	}

	id, err := s.cron.AddFunc("@every "+interval.String(), func() {
		start := time.Now()

		if err := fn(s.ctx); err != nil {
			slog.Error("scheduled job failed", "name", name, "error", err, "duration", time.Since(start))
			return
		}

		slog.Debug("scheduled job completed", "name", name, "duration", time.Since(start))
	})
	if err != nil {
		return fmt.Errorf("scheduling %s: %w", name, err)
	}

	s.entries = append(s.entries, id)
	slog.Info("scheduled job registered", "name", name, "interval", interval)

	return nil
}

func (s *Scheduler) Start() {
	for _, id := range s.entries {
		job := s.cron.Entry(id).WrappedJob

		s.wg.Add(1)

		go func() {
			defer s.wg.Done()
			job.Run()
		}()
	}

	s.cron.Start()
	slog.Info("scheduler started", "job_count", len(s.entries))
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()

	<-s.cron.Stop().Done()
	s.wg.Wait()

	slog.Info("scheduler stopped")
}

// cronLogger routes cron's own messages (recovered panics, skipped runs) to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
