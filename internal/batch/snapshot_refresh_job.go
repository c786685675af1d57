package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	defaultRefreshSchedule = "*/5 * * * *"
	defaultRefreshTimeout  = 30 * time.Second
)

type Refresher interface {
	Refresh(ctx context.Context) error
}

// SnapshotRefreshJob reloads the borrower snapshot on a timer so that
// changes made outside this service eventually show up in the list.
type SnapshotRefreshJob struct {
	refresher Refresher
	timeout   time.Duration
	logger    *slog.Logger
}

func NewSnapshotRefreshJob(refresher Refresher, timeout time.Duration, logger *slog.Logger) *SnapshotRefreshJob {
	if refresher == nil || logger == nil {
		panic("SnapshotRefreshJob dependencies cannot be nil")
	}
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	return &SnapshotRefreshJob{
		refresher: refresher,
		timeout:   timeout,
		logger:    logger.With("job", "SnapshotRefresh"),
	}
}

func (j *SnapshotRefreshJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting scheduled snapshot refresh.")

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Scheduled snapshot refresh failed.",
			slog.Duration("duration", time.Since(startTime)),
			slog.Any("error", err),
		)
		return fmt.Errorf("scheduled snapshot refresh failed: %w", err)
	}

	j.logger.InfoContext(ctx, "Scheduled snapshot refresh finished.", slog.Duration("duration", time.Since(startTime)))
	return nil
}

// Schedule registers the job on c. An empty schedule falls back to every five
// minutes.
func (j *SnapshotRefreshJob) Schedule(c *cron.Cron, schedule string) (cron.EntryID, error) {
	if schedule == "" {
		schedule = defaultRefreshSchedule
		j.logger.Warn("Snapshot refresh schedule not configured, using default", "schedule", schedule)
	}

	id, err := c.AddJob(schedule, cron.FuncJob(func() {
		_ = j.Run(context.Background())
	}))
	if err != nil {
		j.logger.Error("Failed to schedule snapshot refresh job", "schedule", schedule, slog.Any("error", err))
		return 0, fmt.Errorf("invalid snapshot refresh schedule %q: %w", schedule, err)
	}

	j.logger.Info("Scheduled snapshot refresh job", "schedule", schedule, "job_id", id)
	return id, nil
}
