package repository_test

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-circulation/circulation/internal/cardid"
	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/circulation/migrations"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

const (
	testISBN = "9780195153446"
	isbnB    = "9780002005012"
	isbnC    = "9780060973292"
	isbnD    = "9780374157067"

	emma = "ID000001"
	ada  = "ID000002"
)

// newStore connects to CIRCULATION_TEST_DSN and empties every table; the tests share one database.
// The repository runs with its default retry settings.
func newStore(t *testing.T) (repository.Repository, *pgxpool.Pool) {
	t.Helper()
	dsn := os.Getenv("CIRCULATION_TEST_DSN")
	if dsn == "" {
		t.Skip("CIRCULATION_TEST_DSN is not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(pool, migrations.MigrationFiles))

	_, err = pool.Exec(ctx, `truncate fines, book_loans, book_authors, authors, book, borrower restart identity cascade`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `update card_id_counter set last_value = 0`)
	require.NoError(t, err)

	repo, err := repository.NewRepository(pool, zap.NewNop())
	require.NoError(t, err)

	_, err = repo.ImportCatalog(ctx, model.Catalog{
		Books: []model.Item{
			{ISBN: testISBN, Title: "Classical Mythology", Authors: []string{"Mark P. O. Morford"}},
			{ISBN: isbnB, Title: "Clara Callan", Authors: []string{"Richard Bruce Wright"}},
			{ISBN: isbnC, Title: "Decision in Normandy", Authors: []string{"Carlo D'Este"}},
			{ISBN: isbnD, Title: "Flu", Authors: []string{"Gina Bari Kolata"}},
		},
		Borrowers: []model.Borrower{
			{CardID: emma, SSN: "850-47-3740", Name: "Emma Nelson", Address: "Dallas, TX"},
			{CardID: ada, SSN: "478-59-4113", Name: "Ada Byron", Address: "Austin, TX"},
		},
	})
	require.NoError(t, err)
	return repo, pool
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// at returns a service whose clock is fixed to ts.
func at(repo repository.Repository, ts time.Time) *service.Service {
	return service.NewService(repo, zap.NewNop(), service.WithClock(func() time.Time { return ts }))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fineOf(t *testing.T, pool *pgxpool.Pool, loanID int) (decimal.Decimal, *bool) {
	t.Helper()
	var amount decimal.Decimal
	var paid *bool
	err := pool.QueryRow(context.Background(), `select amount, paid from fines where loan_id = $1`, loanID).Scan(&amount, &paid)
	require.NoError(t, err)
	return amount, paid
}

func TestStore_ConcurrentCheckOutSameItem(t *testing.T) {
	repo, _ := newStore(t)
	ctx := context.Background()
	svc := service.NewService(repo, zap.NewNop())

	const n = 8
	var won, lost atomic.Int32
	var g errgroup.Group
	for i := 0; i < n; i++ {
		card := emma
		if i%2 == 1 {
			card = ada
		}
		g.Go(func() error {
			_, err := svc.CheckOut(ctx, testISBN, card)
			switch {
			case err == nil:
				won.Add(1)
			case errors.Is(err, errs.ErrItemAlreadyOut):
				lost.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, int32(1), won.Load())
	require.Equal(t, int32(n-1), lost.Load())

	open, err := svc.ListOpenLoans(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
}

func TestStore_ConcurrentCardAllocation(t *testing.T) {
	repo, _ := newStore(t)
	ctx := context.Background()
	svc := service.NewService(repo, zap.NewNop())

	const n = 10
	ids := make([]string, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			b, err := svc.CreateBorrower(ctx, model.CreateBorrowerRequest{
				SSN:     fmt.Sprintf("900-00-%04d", i),
				Name:    fmt.Sprintf("Borrower %d", i),
				Address: "Plano, TX",
			})
			ids[i] = b.CardID
			return err
		})
	}
	require.NoError(t, g.Wait())

	seen := map[string]bool{}
	for _, id := range ids {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		num, ok := cardid.Parse(id)
		require.True(t, ok)
		// imported ID000001 and ID000002 are never reissued
		require.Greater(t, num, 2)
	}
}

func TestStore_DuplicateIdentity(t *testing.T) {
	repo, _ := newStore(t)
	svc := service.NewService(repo, zap.NewNop())

	_, err := svc.CreateBorrower(context.Background(), model.CreateBorrowerRequest{
		SSN: "850-47-3740", Name: "Copy", Address: "Dallas, TX",
	})
	require.ErrorIs(t, err, errs.ErrDuplicateIdentity)

	err = repo.InTx(context.Background(), func(ctx context.Context, tx repository.Tx) error {
		return tx.InsertBorrower(ctx, model.Borrower{CardID: "ID000100", SSN: "850-47-3740", Name: "Copy"})
	})
	require.ErrorIs(t, err, errs.ErrDuplicateIdentity)
}

func TestStore_LoanLimitAndOpenLoanOrder(t *testing.T) {
	repo, _ := newStore(t)
	ctx := context.Background()

	for _, c := range []struct {
		isbn string
		out  time.Time
	}{
		{isbnB, day(2024, 3, 5)},
		{testISBN, day(2024, 3, 3)},
		{isbnC, day(2024, 3, 4)},
	} {
		_, err := at(repo, c.out).CheckOut(ctx, c.isbn, emma)
		require.NoError(t, err)
	}

	svc := at(repo, day(2024, 3, 6))
	require.ErrorIs(t, svc.CanCheckOut(ctx, isbnD, emma), errs.ErrLoanLimitExceeded)
	_, err := svc.CheckOut(ctx, isbnD, emma)
	require.ErrorIs(t, err, errs.ErrLoanLimitExceeded)

	// another borrower is unaffected by Emma's limit
	_, err = svc.CheckOut(ctx, isbnD, ada)
	require.NoError(t, err)

	open, err := svc.ListOpenLoans(ctx)
	require.NoError(t, err)
	got := make([]string, 0, len(open))
	for _, l := range open {
		got = append(got, l.ISBN)
	}
	require.Equal(t, []string{testISBN, isbnC, isbnB, isbnD}, got)
	require.Equal(t, day(2024, 3, 3), open[0].DateOut.UTC())
	require.Equal(t, day(2024, 3, 17), open[0].DueDate.UTC())
}

func TestStore_FineLifecycle(t *testing.T) {
	repo, pool := newStore(t)
	ctx := context.Background()

	// both due 2024-01-15
	loanA, err := at(repo, day(2024, 1, 1)).CheckOut(ctx, testISBN, emma)
	require.NoError(t, err)
	loanB, err := at(repo, day(2024, 1, 1)).CheckOut(ctx, isbnB, emma)
	require.NoError(t, err)

	jan20 := at(repo, day(2024, 1, 20))
	in, err := jan20.CheckIn(ctx, testISBN)
	require.NoError(t, err)
	require.True(t, dec("1.25").Equal(in.Fine))

	res, err := jan20.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, model.SweepResult{Inserted: 1, Updated: 1}, res)
	amount, _ := fineOf(t, pool, loanB.ID)
	require.True(t, dec("1.25").Equal(amount))

	res, err = jan20.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, model.SweepResult{}, res)

	// the unpaid fine blocks checkout until it is settled
	require.ErrorIs(t, jan20.CanCheckOut(ctx, isbnC, emma), errs.ErrUnpaidFines)

	_, err = jan20.PayFines(ctx, emma)
	require.ErrorIs(t, err, errs.ErrLoanStillOpen)

	jan22 := at(repo, day(2024, 1, 22))
	in, err = jan22.CheckIn(ctx, isbnB)
	require.NoError(t, err)
	require.True(t, dec("1.75").Equal(in.Fine))

	fines, err := jan22.GetBorrowerFines(ctx, emma, false)
	require.NoError(t, err)
	require.Len(t, fines, 2)
	require.Equal(t, testISBN, fines[0].ISBN)
	require.Equal(t, "Classical Mythology", fines[0].Title)
	for _, f := range fines {
		require.True(t, dec("3.00").Equal(f.TotalOutstanding))
	}

	p, err := jan22.PayFines(ctx, emma)
	require.NoError(t, err)
	require.Equal(t, 2, p.Fines)
	require.True(t, dec("3.00").Equal(p.Amount))

	// paid fines are frozen
	var changed bool
	err = repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) (err error) {
		changed, err = tx.UpdateFineAmount(ctx, loanA.ID, dec("9.99"))
		return err
	})
	require.NoError(t, err)
	require.False(t, changed)

	res, err = at(repo, day(2024, 2, 20)).Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, model.SweepResult{}, res)
	amount, paid := fineOf(t, pool, loanA.ID)
	require.True(t, dec("1.25").Equal(amount))
	require.NotNil(t, paid)
	require.True(t, *paid)

	require.NoError(t, jan22.CanCheckOut(ctx, isbnC, emma))
}

func TestStore_FinesWithNullPaid(t *testing.T) {
	repo, pool := newStore(t)
	ctx := context.Background()
	out := at(repo, day(2024, 1, 1))

	// paid in full: due 2024-01-15, returned 2024-01-17
	_, err := out.CheckOut(ctx, isbnC, ada)
	require.NoError(t, err)
	_, err = at(repo, day(2024, 1, 17)).CheckIn(ctx, isbnC)
	require.NoError(t, err)
	p, err := at(repo, day(2024, 1, 17)).PayFines(ctx, ada)
	require.NoError(t, err)
	require.True(t, dec("0.50").Equal(p.Amount))

	// late by eight days, fine row left with a null paid marker
	loan, err := out.CheckOut(ctx, isbnD, ada)
	require.NoError(t, err)
	_, err = at(repo, day(2024, 1, 23)).CheckIn(ctx, isbnD)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `update fines set paid = null where loan_id = $1`, loan.ID)
	require.NoError(t, err)

	svc := at(repo, day(2024, 1, 24))
	require.ErrorIs(t, svc.CanCheckOut(ctx, testISBN, ada), errs.ErrUnpaidFines)

	all, err := svc.GetBorrowerFines(ctx, ada, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.True(t, all[0].Paid)
	require.False(t, all[1].Paid)
	require.Equal(t, isbnD, all[1].ISBN)
	for _, f := range all {
		require.True(t, dec("2.00").Equal(f.TotalOutstanding))
	}

	unpaid, err := svc.GetBorrowerFines(ctx, ada, false)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)

	totals, err := svc.ListFineTotals(ctx, false)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	require.Equal(t, ada, totals[0].CardID)
	require.True(t, dec("2.00").Equal(totals[0].Total))

	p, err = svc.PayFines(ctx, ada)
	require.NoError(t, err)
	require.Equal(t, 1, p.Fines)
	require.True(t, dec("2.00").Equal(p.Amount))
	_, paid := fineOf(t, pool, loan.ID)
	require.NotNil(t, paid)
	require.True(t, *paid)
}

func TestStore_CheckOutCheckInRoundTrip(t *testing.T) {
	repo, pool := newStore(t)
	ctx := context.Background()
	dateOut := model.Date(time.Now()).AddDate(0, 0, -20)
	dateIn := model.Date(time.Now())

	_, err := at(repo, dateOut).CheckOut(ctx, testISBN, emma)
	require.NoError(t, err)

	err = repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		loan, err := tx.GetOpenLoan(ctx, testISBN)
		if err != nil {
			return err
		}
		return tx.CloseLoan(ctx, loan.ID, dateIn)
	})
	require.NoError(t, err)

	open, err := repo.ListOpenLoans(ctx)
	require.NoError(t, err)
	require.Empty(t, open)

	var closed int
	require.NoError(t, pool.QueryRow(ctx, `select count(*) from book_loans where date_in is not null`).Scan(&closed))
	require.Equal(t, 1, closed)

	_, err = at(repo, dateIn).CheckIn(ctx, testISBN)
	require.ErrorIs(t, err, errs.ErrNoActiveLoan)

	// returned six days late without a fine row: the sweep placeholder is created once
	var inserted [2]int
	for i := range inserted {
		err = repo.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
			n, err := tx.InsertOverdueFines(ctx, dateIn)
			inserted[i] = n
			return err
		})
		require.NoError(t, err)
	}
	require.Equal(t, [2]int{1, 0}, inserted)
}
