package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalwatch/internal/domain"
)

type countingSweeper struct {
	runs atomic.Int32
	err  error
}

func (c *countingSweeper) Sweep(ctx context.Context) (*domain.SweepStats, error) {
	c.runs.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("sweep without deadline")
	}
	if c.err != nil {
		return nil, c.err
	}
	return &domain.SweepStats{Due: 1, Checked: 1}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_SweepsImmediatelyAndOnTick(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(sweeper, 20*time.Millisecond, time.Second, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, sweeper.runs.Load(), int32(2))
}

func TestScheduler_KeepsRunningAfterFailedSweep(t *testing.T) {
	sweeper := &countingSweeper{err: errors.New("datastore unavailable")}
	s := NewScheduler(sweeper, 10*time.Millisecond, time.Second, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_ = s.Start(ctx)

	assert.Greater(t, sweeper.runs.Load(), int32(1))
}
