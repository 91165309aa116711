package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type RecurringApplier interface {
	ApplyRecurring(ctx context.Context, month period.Month) ([]*novelty.Novelty, error)
}

// ReconcileJob keeps recurring novelties materialized for the current month.
type ReconcileJob struct {
	novelties RecurringApplier
	now       func() time.Time
}

func NewReconcileJob(novelties RecurringApplier) *ReconcileJob {
	return &ReconcileJob{novelties: novelties, now: time.Now}
}

// WithClock overrides the clock used to pick the month.
func (j *ReconcileJob) WithClock(now func() time.Time) *ReconcileJob {
	j.now = now
	return j
}

func (j *ReconcileJob) Register(s *Scheduler, interval time.Duration) error {
	return s.AddJob("apply_recurring_novelties", interval, j.Run)
}

func (j *ReconcileJob) Run(ctx context.Context) error {
	month := period.Of(j.now())

	created, err := j.novelties.ApplyRecurring(ctx, month)
	if err != nil {
		return fmt.Errorf("applying recurring novelties for %s: %w", month, err)
	}

	if len(created) > 0 {
		slog.Info("recurring novelties materialized", "month", month.String(), "created", len(created))
	}

	return nil
}
