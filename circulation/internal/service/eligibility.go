package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

// CanCheckOut reports nil when the borrower may take the item out now.
// The answer is advisory; CheckOut evaluates the same rules again in its own transaction.
func (s *Service) CanCheckOut(ctx context.Context, isbn, cardID string) error {
	err := s.repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		return checkEligibility(ctx, tx, isbn, cardID)
	})
	if err != nil {
		s.logFailure("CanCheckOut", err, zap.String("isbn", isbn), zap.String("cardId", cardID))
	}
	return err
}

// checkEligibility evaluates the checkout rules in order, the first failing rule wins.
// It locks the borrower row, so concurrent checkouts by one borrower are serialized.
func checkEligibility(ctx context.Context, tx repository.Tx, isbn, cardID string) error {
	ok, err := tx.ItemExists(ctx, isbn)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrItemNotFound
	}
	if err = tx.LockBorrower(ctx, cardID); err != nil {
		return err
	}

	out, err := tx.HasOpenLoan(ctx, isbn)
	if err != nil {
		return err
	}
	if out {
		return errs.ErrItemAlreadyOut
	}

	unpaid, err := tx.CountUnpaidFines(ctx, cardID)
	if err != nil {
		return err
	}
	if unpaid > 0 {
		return errs.ErrUnpaidFines
	}

	open, err := tx.CountOpenLoans(ctx, cardID)
	if err != nil {
		return err
	}
	if open >= model.MaxOpenLoans {
		return errs.ErrLoanLimitExceeded
	}
	return nil
}
