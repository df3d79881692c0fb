package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/events"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

type Service struct {
	log          *zap.Logger
	repo         repository.Repository
	pub          events.Publisher
	now          func() time.Time
	sweepWorkers int
}

type Option func(*Service)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPublisher(pub events.Publisher) Option {
	return func(s *Service) {
		if pub != nil {
			s.pub = pub
		}
	}
}

// WithSweepWorkers bounds how many fine updates a sweep runs in parallel.
func WithSweepWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sweepWorkers = n
		}
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:          log.Named("service"),
		repo:         repo,
		pub:          events.Nop(),
		now:          time.Now,
		sweepWorkers: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() time.Time {
	return model.Date(s.now())
}

func (s *Service) SearchItems(ctx context.Context, term string) ([]model.ItemSearchResult, error) {
	items, err := s.repo.SearchItems(ctx, term)
	if err != nil {
		s.logFailure("SearchItems", err)
		return nil, err
	}
	return items, nil
}

// publish is best effort: the state change is already committed.
func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.pub.Publish(ctx, e); err != nil {
		s.log.Warn("publish", zap.String("type", string(e.Type)), zap.Error(err))
	}
}

// logFailure keeps denials out of the error log.
func (s *Service) logFailure(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if errs.IsDenial(err) {
		s.log.Debug(op+" denied", fields...)
		return
	}
	s.log.Error(op, fields...)
}
