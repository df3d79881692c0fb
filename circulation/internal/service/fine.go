package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/events"
	"github.com/Astemirdum/library-circulation/circulation/internal/fine"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

// Sweep creates the missing fines of overdue loans and brings every unpaid fine
// in line with the current date. Each fine update commits on its own.
func (s *Service) Sweep(ctx context.Context) (model.SweepResult, error) {
	today := s.today()
	var res model.SweepResult

	err := s.repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		n, err := tx.InsertOverdueFines(ctx, today)
		if err != nil {
			return err
		}
		res.Inserted = n
		return nil
	})
	if err != nil {
		s.logFailure("Sweep", err)
		return res, err
	}

	unpaid, err := s.repo.ListUnpaidFines(ctx)
	if err != nil {
		s.logFailure("Sweep", err)
		return res, err
	}

	var updated atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.sweepWorkers)
	for _, f := range unpaid {
		if fine.Compute(f.Loan(), today).Equal(f.Amount) {
			continue
		}
		loanID := f.LoanID
		g.Go(func() error {
			ok, err := s.refreshFine(gctx, loanID, today)
			if err != nil {
				return errors.Wrapf(err, "loan %d", loanID)
			}
			if ok {
				updated.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()
	res.Updated = int(updated.Load())
	if err != nil {
		s.logFailure("Sweep", err, zap.Int("inserted", res.Inserted), zap.Int("updated", res.Updated))
		return res, err
	}

	s.log.Info("sweep", zap.Int("inserted", res.Inserted), zap.Int("updated", res.Updated))
	e := events.New(events.FinesSwept, s.now())
	e.Inserted, e.Updated = res.Inserted, res.Updated
	s.publish(ctx, e)
	return res, nil
}

// refreshFine recomputes one fine under its row lock, reporting whether it changed.
func (s *Service) refreshFine(ctx context.Context, loanID int, today time.Time) (bool, error) {
	var updated bool
	err := s.repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		updated = false
		stored, err := tx.GetFineLoan(ctx, loanID)
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if stored.Paid {
			return nil
		}
		amount := fine.Compute(stored.Loan(), today)
		if amount.Equal(stored.Amount) {
			return nil
		}
		updated, err = tx.UpdateFineAmount(ctx, loanID, amount)
		return err
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (s *Service) GetBorrowerFines(ctx context.Context, cardID string, includePaid bool) ([]model.BorrowerFine, error) {
	ok, err := s.repo.BorrowerExists(ctx, cardID)
	if err != nil {
		s.logFailure("GetBorrowerFines", err, zap.String("cardId", cardID))
		return nil, err
	}
	if !ok {
		return nil, errs.ErrBorrowerNotFound
	}
	fines, err := s.repo.GetBorrowerFines(ctx, cardID, includePaid)
	if err != nil {
		s.logFailure("GetBorrowerFines", err, zap.String("cardId", cardID))
		return nil, err
	}
	return fines, nil
}

// PayFines settles every unpaid fine of the borrower once all fined items are returned.
func (s *Service) PayFines(ctx context.Context, cardID string) (model.Payment, error) {
	var p model.Payment
	err := s.repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		if err := tx.LockBorrower(ctx, cardID); err != nil {
			return err
		}
		open, err := tx.CountOpenLoansWithUnpaidFines(ctx, cardID)
		if err != nil {
			return err
		}
		if open > 0 {
			return errs.ErrLoanStillOpen
		}
		p, err = tx.PayFines(ctx, cardID)
		return err
	})
	if err != nil {
		s.logFailure("PayFines", err, zap.String("cardId", cardID))
		return model.Payment{}, err
	}

	if p.Fines > 0 {
		e := events.New(events.FinesPaid, s.now())
		e.CardID = cardID
		e.Amount = &p.Amount
		s.publish(ctx, e)
	}
	return p, nil
}

func (s *Service) ListFineTotals(ctx context.Context, includePaid bool) ([]model.FineTotal, error) {
	totals, err := s.repo.ListFineTotals(ctx, includePaid)
	if err != nil {
		s.logFailure("ListFineTotals", err)
		return nil, err
	}
	return totals, nil
}
