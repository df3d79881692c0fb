package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep(context.Context) (model.SweepResult, error) {
	c.calls.Add(1)
	return model.SweepResult{Inserted: 1}, nil
}

type blockingSweeper struct {
	started  chan struct{}
	release  chan struct{}
	finished atomic.Bool
}

func (b *blockingSweeper) Sweep(context.Context) (model.SweepResult, error) {
	close(b.started)
	<-b.release
	b.finished.Store(true)
	return model.SweepResult{}, nil
}

func TestNew_InvalidSchedule(t *testing.T) {
	t.Parallel()
	_, err := New(Config{Spec: "every day"}, &countingSweeper{}, zap.NewNop())
	require.Error(t, err)
}

func TestScheduler_SweepOnStart(t *testing.T) {
	t.Parallel()
	sw := &countingSweeper{}
	s, err := New(Config{Spec: DefaultSpec, OnStart: true, Timeout: time.Second}, sw, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return sw.calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestScheduler_Schedule(t *testing.T) {
	t.Parallel()
	s, err := New(Config{Spec: "@every 1s"}, &countingSweeper{}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_StopWaitsForStartupSweep(t *testing.T) {
	t.Parallel()
	sw := &blockingSweeper{started: make(chan struct{}), release: make(chan struct{})}
	s, err := New(Config{Spec: DefaultSpec, OnStart: true}, sw, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	<-sw.started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded)
	require.False(t, sw.finished.Load())

	close(sw.release)
	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	require.NoError(t, s.Stop(ctx2))
	require.True(t, sw.finished.Load())
}
