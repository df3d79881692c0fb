// Package scheduler triggers the fine sweep on a cron schedule.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

const DefaultSpec = "5 0 * * *"

type Sweeper interface {
	Sweep(ctx context.Context) (model.SweepResult, error)
}

type Config struct {
	Spec    string        `envconfig:"SWEEP_CRON" default:"5 0 * * *"`
	OnStart bool          `envconfig:"SWEEP_ON_START"`
	Timeout time.Duration `envconfig:"SWEEP_TIMEOUT" default:"10m"`
	Workers int           `envconfig:"SWEEP_WORKERS" default:"4"`
}

type Scheduler struct {
	cron    *cron.Cron
	job     cron.Job
	sweeper Sweeper
	cfg     Config
	log     *zap.Logger
	wg      sync.WaitGroup
}

// New validates the schedule; times are interpreted in UTC like the loan dates.
func New(cfg Config, sweeper Sweeper, log *zap.Logger) (*Scheduler, error) {
	if cfg.Spec == "" {
		cfg.Spec = DefaultSpec
	}
	log = log.Named("scheduler")
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger{log}),
	)
	s := &Scheduler{cron: c, sweeper: sweeper, cfg: cfg, log: log}
	// one wrapped job for both triggers, so a startup sweep and a scheduled one never overlap
	s.job = cron.NewChain(cron.Recover(cronLogger{log}), cron.SkipIfStillRunning(cronLogger{log})).
		Then(cron.FuncJob(s.run))
	if _, err := c.AddJob(cfg.Spec, s.job); err != nil {
		return nil, errors.Wrapf(err, "schedule %q", cfg.Spec)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.log.Info("starting scheduler", zap.String("spec", s.cfg.Spec))
	if s.cfg.OnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.job.Run()
		}()
	}
	s.cron.Start()
}

// Stop waits for running sweeps, the startup one included, to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.log.Info("stopping scheduler")
	done := make(chan struct{})
	go func() {
		<-s.cron.Stop().Done()
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run() {
	ctx := context.Background()
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	start := time.Now()
	res, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.log.Error("sweep", zap.Error(err))
		return
	}
	s.log.Info("sweep done",
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Duration("took", time.Since(start)))
}

type cronLogger struct {
	log *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
