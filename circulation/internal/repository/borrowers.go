package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/cardid"
	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func (s *txStore) SSNExists(ctx context.Context, ssn string) (bool, error) {
	q := fmt.Sprintf(`select exists(select 1 from %s where ssn = $1)`, borrowerTableName)
	var ok bool
	if err := s.q.QueryRow(ctx, q, ssn).Scan(&ok); err != nil {
		return false, errors.Wrap(err, "SSNExists")
	}
	return ok, nil
}

// NextCardNumber advances the prefix counter past both its last value and the highest
// id already present in borrower, so imported or manually inserted ids are never reissued.
// The counter row lock serializes concurrent allocations when run through InAllocTx.
func (s *txStore) NextCardNumber(ctx context.Context, prefix string) (int, error) {
	q := fmt.Sprintf(`update %s c
	set last_value = greatest(c.last_value, (
	    select coalesce(max(substring(card_id from 3 for %d)::int), 0)
	    from %s
	    where card_id ~ @pattern
	)) + 1
	where c.prefix = @prefix
	returning c.last_value`, cardCounterTableName, cardid.Digits, borrowerTableName)

	var n int
	err := s.q.QueryRow(ctx, q, pgx.NamedArgs{"prefix": prefix, "pattern": cardid.Pattern}).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.Errorf("no card id counter for prefix %q", prefix)
		}
		return 0, errors.Wrap(err, "NextCardNumber")
	}
	return n, nil
}

func (s *txStore) InsertBorrower(ctx context.Context, b model.Borrower) error {
	q := fmt.Sprintf(`insert into %s (card_id, ssn, name, address, phone_number)
	values (@card_id, @ssn, @name, @address, @phone)`, borrowerTableName)
	_, err := s.q.Exec(ctx, q, pgx.NamedArgs{
		"card_id": b.CardID,
		"ssn":     b.SSN,
		"name":    b.Name,
		"address": b.Address,
		"phone":   b.Phone,
	})
	if err != nil {
		switch {
		case uniqueViolation(err, borrowerSSNKey):
			return errs.ErrDuplicateIdentity
		case uniqueViolation(err, borrowerPrimeKey):
			return errors.Wrap(errCardTaken, b.CardID)
		}
		return errors.Wrap(err, "InsertBorrower")
	}
	return nil
}
