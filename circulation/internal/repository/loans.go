package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func (s *txStore) ItemExists(ctx context.Context, isbn string) (bool, error) {
	q := fmt.Sprintf(`select exists(select 1 from %s where isbn13 = $1)`, bookTableName)
	var ok bool
	if err := s.q.QueryRow(ctx, q, isbn).Scan(&ok); err != nil {
		return false, errors.Wrap(err, "ItemExists")
	}
	return ok, nil
}

// LockBorrower takes the borrower row lock serializing that borrower's checkouts and payments.
func (s *txStore) LockBorrower(ctx context.Context, cardID string) error {
	q := fmt.Sprintf(`select card_id from %s where card_id = $1 for update`, borrowerTableName)
	var id string
	if err := s.q.QueryRow(ctx, q, cardID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrBorrowerNotFound
		}
		return errors.Wrap(err, "LockBorrower")
	}
	return nil
}

func (s *txStore) HasOpenLoan(ctx context.Context, isbn string) (bool, error) {
	q := fmt.Sprintf(`select exists(select 1 from %s where book_isbn13 = $1 and date_in is null)`, loansTableName)
	var ok bool
	if err := s.q.QueryRow(ctx, q, isbn).Scan(&ok); err != nil {
		return false, errors.Wrap(err, "HasOpenLoan")
	}
	return ok, nil
}

func (s *txStore) CountOpenLoans(ctx context.Context, cardID string) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s where borrower_card_id = $1 and date_in is null`, loansTableName)
	var n int
	if err := s.q.QueryRow(ctx, q, cardID).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "CountOpenLoans")
	}
	return n, nil
}

func (s *txStore) InsertLoan(ctx context.Context, loan model.Loan) (int, error) {
	q := fmt.Sprintf(`insert into %s (book_isbn13, borrower_card_id, date_out, due_date)
	values (@isbn, @card_id, @date_out, @due_date)
	returning id`, loansTableName)
	args := pgx.NamedArgs{
		"isbn":     loan.ISBN,
		"card_id":  loan.CardID,
		"date_out": loan.DateOut,
		"due_date": loan.DueDate,
	}
	var id int
	if err := s.q.QueryRow(ctx, q, args).Scan(&id); err != nil {
		switch {
		case uniqueViolation(err, openLoanIndex):
			return 0, errs.ErrItemAlreadyOut
		case foreignKeyViolation(err, loansItemFK):
			return 0, errs.ErrItemNotFound
		case foreignKeyViolation(err, loansBorrowerFK):
			return 0, errs.ErrBorrowerNotFound
		}
		return 0, errors.Wrap(err, "InsertLoan")
	}
	return id, nil
}

func (s *txStore) GetOpenLoan(ctx context.Context, isbn string) (model.Loan, error) {
	q := fmt.Sprintf(`select id, book_isbn13 as isbn, borrower_card_id as card_id, date_out, due_date, date_in
	from %s
	where book_isbn13 = $1 and date_in is null
	for update`, loansTableName)

	rows, err := s.q.Query(ctx, q, isbn)
	if err != nil {
		return model.Loan{}, errors.Wrap(err, "GetOpenLoan")
	}
	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, errs.ErrNoActiveLoan
		}
		return model.Loan{}, errors.Wrap(err, "GetOpenLoan")
	}
	return loan, nil
}

func (s *txStore) CloseLoan(ctx context.Context, loanID int, dateIn time.Time) error {
	q := fmt.Sprintf(`update %s set date_in = @date_in where id = @id and date_in is null`, loansTableName)
	tag, err := s.q.Exec(ctx, q, pgx.NamedArgs{"id": loanID, "date_in": dateIn})
	if err != nil {
		return errors.Wrap(err, "CloseLoan")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNoActiveLoan
	}
	return nil
}
