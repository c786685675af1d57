package batch_test

import (
	"context"
	"errors"
	"io"
	"lending-admin/internal/batch"
	"log/slog"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestSnapshotRefreshJobRun(t *testing.T) {
	t.Run("refreshes with a deadline", func(t *testing.T) {
		refresher := new(MockRefresher)
		refresher.On("Refresh", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(nil).Once()

		job := batch.NewSnapshotRefreshJob(refresher, time.Second, logger)

		assert.NoError(t, job.Run(context.Background()))
		refresher.AssertExpectations(t)
	})

	t.Run("wraps refresh failure", func(t *testing.T) {
		cause := errors.New("db down")
		refresher := new(MockRefresher)
		refresher.On("Refresh", mock.Anything).Return(cause).Once()

		job := batch.NewSnapshotRefreshJob(refresher, 0, logger)

		err := job.Run(context.Background())
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "scheduled snapshot refresh failed")
	})
}

func TestSnapshotRefreshJobSchedule(t *testing.T) {
	newJob := func() *batch.SnapshotRefreshJob {
		return batch.NewSnapshotRefreshJob(new(MockRefresher), time.Second, logger)
	}

	t.Run("uses configured schedule", func(t *testing.T) {
		c := cron.New()
		id, err := newJob().Schedule(c, "0 * * * *")
		require.NoError(t, err)

		entry := c.Entry(id)
		assert.True(t, entry.Valid())
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("falls back to default schedule", func(t *testing.T) {
		c := cron.New()
		_, err := newJob().Schedule(c, "")
		require.NoError(t, err)

		sched, err := cron.ParseStandard("*/5 * * * *")
		require.NoError(t, err)
		from := time.Date(2026, 3, 1, 8, 1, 0, 0, time.UTC)
		assert.Equal(t, sched.Next(from), c.Entries()[0].Schedule.Next(from))
	})

	t.Run("rejects invalid schedule", func(t *testing.T) {
		c := cron.New()
		_, err := newJob().Schedule(c, "every now and then")
		assert.Error(t, err)
		assert.Empty(t, c.Entries())
	})
}

func TestNewSnapshotRefreshJobPanicsOnNilDeps(t *testing.T) {
	assert.Panics(t, func() { batch.NewSnapshotRefreshJob(nil, time.Second, logger) })
	assert.Panics(t, func() { batch.NewSnapshotRefreshJob(new(MockRefresher), time.Second, nil) })
}
