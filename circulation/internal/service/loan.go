package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/events"
	"github.com/Astemirdum/library-circulation/circulation/internal/fine"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

func (s *Service) CheckOut(ctx context.Context, isbn, cardID string) (model.Loan, error) {
	today := s.today()
	var loan model.Loan
	err := s.repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		if err := checkEligibility(ctx, tx, isbn, cardID); err != nil {
			return err
		}
		loan = model.Loan{
			ISBN:    isbn,
			CardID:  cardID,
			DateOut: today,
			DueDate: model.DueDate(today),
		}
		id, err := tx.InsertLoan(ctx, loan)
		if err != nil {
			return err
		}
		loan.ID = id
		return nil
	})
	if err != nil {
		s.logFailure("CheckOut", err, zap.String("isbn", isbn), zap.String("cardId", cardID))
		return model.Loan{}, err
	}

	e := events.New(events.LoanCheckedOut, s.now())
	e.ISBN, e.CardID, e.LoanID = loan.ISBN, loan.CardID, loan.ID
	s.publish(ctx, e)
	return loan, nil
}

// CheckIn closes the open loan of the item and settles its fine amount in the same transaction.
func (s *Service) CheckIn(ctx context.Context, isbn string) (model.CheckIn, error) {
	today := s.today()
	var res model.CheckIn
	err := s.repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		loan, err := tx.GetOpenLoan(ctx, isbn)
		if err != nil {
			return err
		}
		if err = tx.CloseLoan(ctx, loan.ID, today); err != nil {
			return err
		}
		dateIn := today
		loan.DateIn = &dateIn

		amount, err := recomputeLoanFine(ctx, tx, loan, today)
		if err != nil {
			return err
		}
		res = model.CheckIn{Loan: loan, Fine: amount}
		return nil
	})
	if err != nil {
		s.logFailure("CheckIn", err, zap.String("isbn", isbn))
		return model.CheckIn{}, err
	}

	e := events.New(events.LoanCheckedIn, s.now())
	e.ISBN, e.CardID, e.LoanID = res.Loan.ISBN, res.Loan.CardID, res.Loan.ID
	e.Amount = &res.Fine
	s.publish(ctx, e)
	return res, nil
}

// recomputeLoanFine brings the fine of loan in line with its dates. A late loan without
// a fine row gets one; a paid fine is frozen and its stored amount is returned.
func recomputeLoanFine(ctx context.Context, tx repository.Tx, loan model.Loan, today time.Time) (decimal.Decimal, error) {
	amount := fine.Compute(loan, today)

	stored, err := tx.GetFineLoan(ctx, loan.ID)
	if errors.Is(err, errs.ErrNotFound) {
		if !fine.Overdue(loan, today) {
			return amount, nil
		}
		return amount, tx.InsertFine(ctx, model.Fine{LoanID: loan.ID, Amount: amount})
	}
	if err != nil {
		return decimal.Zero, err
	}

	if stored.Paid {
		return stored.Amount, nil
	}
	if !amount.Equal(stored.Amount) {
		if _, err = tx.UpdateFineAmount(ctx, loan.ID, amount); err != nil {
			return decimal.Zero, err
		}
	}
	return amount, nil
}

func (s *Service) ListOpenLoans(ctx context.Context) ([]model.OpenLoan, error) {
	loans, err := s.repo.ListOpenLoans(ctx)
	if err != nil {
		s.logFailure("ListOpenLoans", err)
		return nil, err
	}
	return loans, nil
}

func (s *Service) SearchLoans(ctx context.Context, term string) ([]model.LoanView, error) {
	loans, err := s.repo.SearchLoans(ctx, term)
	if err != nil {
		s.logFailure("SearchLoans", err)
		return nil, err
	}
	return loans, nil
}
