package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func (s *txStore) CountUnpaidFines(ctx context.Context, cardID string) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s f
	join %s l on l.id = f.loan_id
	where l.borrower_card_id = $1 and f.paid is not true`, finesTableName, loansTableName)
	var n int
	if err := s.q.QueryRow(ctx, q, cardID).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "CountUnpaidFines")
	}
	return n, nil
}

// GetFineLoan locks the fine row of loanID; errs.ErrNotFound when the loan has no fine yet.
func (s *txStore) GetFineLoan(ctx context.Context, loanID int) (model.FineLoan, error) {
	q := fmt.Sprintf(`select f.loan_id, f.amount, coalesce(f.paid, false) as paid, l.date_out, l.due_date, l.date_in
	from %s f
	join %s l on l.id = f.loan_id
	where f.loan_id = $1
	for update of f`, finesTableName, loansTableName)

	rows, err := s.q.Query(ctx, q, loanID)
	if err != nil {
		return model.FineLoan{}, errors.Wrap(err, "GetFineLoan")
	}
	fl, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FineLoan])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FineLoan{}, errs.ErrNotFound
		}
		return model.FineLoan{}, errors.Wrap(err, "GetFineLoan")
	}
	return fl, nil
}

func (s *txStore) InsertFine(ctx context.Context, fine model.Fine) error {
	q := fmt.Sprintf(`insert into %s (loan_id, amount, paid) values (@loan_id, @amount, @paid)
	on conflict (loan_id) do nothing`, finesTableName)
	_, err := s.q.Exec(ctx, q, pgx.NamedArgs{
		"loan_id": fine.LoanID,
		"amount":  fine.Amount,
		"paid":    fine.Paid,
	})
	return errors.Wrap(err, "InsertFine")
}

// UpdateFineAmount never touches a paid fine and reports whether the row changed.
func (s *txStore) UpdateFineAmount(ctx context.Context, loanID int, amount decimal.Decimal) (bool, error) {
	q := fmt.Sprintf(`update %s set amount = @amount
	where loan_id = @loan_id and paid is not true and amount <> @amount`, finesTableName)
	tag, err := s.q.Exec(ctx, q, pgx.NamedArgs{"loan_id": loanID, "amount": amount})
	if err != nil {
		return false, errors.Wrap(err, "UpdateFineAmount")
	}
	return tag.RowsAffected() > 0, nil
}

// InsertOverdueFines creates zero placeholder fines for loans that are open past due
// or were returned late and have no fine row yet.
func (s *txStore) InsertOverdueFines(ctx context.Context, today time.Time) (int, error) {
	q := fmt.Sprintf(`insert into %[1]s (loan_id, amount, paid)
	select l.id, 0.00, false
	from %[2]s l
	where not exists(select 1 from %[1]s f where f.loan_id = l.id)
	  and ((l.date_in is null and l.due_date < @today) or l.date_in > l.due_date)
	on conflict (loan_id) do nothing`, finesTableName, loansTableName)
	tag, err := s.q.Exec(ctx, q, pgx.NamedArgs{"today": today})
	if err != nil {
		return 0, errors.Wrap(err, "InsertOverdueFines")
	}
	return int(tag.RowsAffected()), nil
}

func (s *txStore) CountOpenLoansWithUnpaidFines(ctx context.Context, cardID string) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s f
	join %s l on l.id = f.loan_id
	where l.borrower_card_id = $1 and f.paid is not true and l.date_in is null`, finesTableName, loansTableName)
	var n int
	if err := s.q.QueryRow(ctx, q, cardID).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "CountOpenLoansWithUnpaidFines")
	}
	return n, nil
}

func (s *txStore) PayFines(ctx context.Context, cardID string) (model.Payment, error) {
	q := fmt.Sprintf(`update %s f set paid = true
	from %s l
	where l.id = f.loan_id and l.borrower_card_id = $1 and f.paid is not true
	returning f.amount`, finesTableName, loansTableName)

	rows, err := s.q.Query(ctx, q, cardID)
	if err != nil {
		return model.Payment{}, errors.Wrap(err, "PayFines")
	}
	amounts, err := pgx.CollectRows(rows, pgx.RowTo[decimal.Decimal])
	if err != nil {
		return model.Payment{}, errors.Wrap(err, "PayFines")
	}

	p := model.Payment{CardID: cardID, Fines: len(amounts), Amount: decimal.Zero}
	for _, a := range amounts {
		p.Amount = p.Amount.Add(a)
	}
	return p, nil
}
