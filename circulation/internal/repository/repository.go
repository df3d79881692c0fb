package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// TxFunc is run inside one transaction and may be invoked more than once.
type TxFunc func(ctx context.Context, tx Tx) error

type Repository interface {
	InTx(ctx context.Context, fn TxFunc) error
	InAllocTx(ctx context.Context, fn TxFunc) error

	SearchItems(ctx context.Context, term string) ([]model.ItemSearchResult, error)
	ListOpenLoans(ctx context.Context) ([]model.OpenLoan, error)
	SearchLoans(ctx context.Context, term string) ([]model.LoanView, error)
	BorrowerExists(ctx context.Context, cardID string) (bool, error)
	GetBorrowerFines(ctx context.Context, cardID string, includePaid bool) ([]model.BorrowerFine, error)
	ListFineTotals(ctx context.Context, includePaid bool) ([]model.FineTotal, error)
	ListUnpaidFines(ctx context.Context) ([]model.FineLoan, error)
	ImportCatalog(ctx context.Context, catalog model.Catalog) (model.ImportStats, error)
}

// Tx holds the named statements available inside a transaction.
type Tx interface {
	ItemExists(ctx context.Context, isbn string) (bool, error)
	LockBorrower(ctx context.Context, cardID string) error
	HasOpenLoan(ctx context.Context, isbn string) (bool, error)
	CountUnpaidFines(ctx context.Context, cardID string) (int, error)
	CountOpenLoans(ctx context.Context, cardID string) (int, error)

	InsertLoan(ctx context.Context, loan model.Loan) (int, error)
	GetOpenLoan(ctx context.Context, isbn string) (model.Loan, error)
	CloseLoan(ctx context.Context, loanID int, dateIn time.Time) error

	GetFineLoan(ctx context.Context, loanID int) (model.FineLoan, error)
	InsertFine(ctx context.Context, fine model.Fine) error
	UpdateFineAmount(ctx context.Context, loanID int, amount decimal.Decimal) (bool, error)
	InsertOverdueFines(ctx context.Context, today time.Time) (int, error)
	CountOpenLoansWithUnpaidFines(ctx context.Context, cardID string) (int, error)
	PayFines(ctx context.Context, cardID string) (model.Payment, error)

	SSNExists(ctx context.Context, ssn string) (bool, error)
	NextCardNumber(ctx context.Context, prefix string) (int, error)
	InsertBorrower(ctx context.Context, b model.Borrower) error
}

type repository struct {
	db   *pgxpool.Pool
	log  *zap.Logger
	opts options
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger, opts ...Option) (*repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &repository{
		db:   db,
		log:  log.Named("repo"),
		opts: o,
	}, nil
}

const (
	bookTableName        = `book`
	authorsTableName     = `authors`
	bookAuthorsTableName = `book_authors`
	borrowerTableName    = `borrower`
	loansTableName       = `book_loans`
	finesTableName       = `fines`
	cardCounterTableName = `card_id_counter`
)

// constraint names from the migrations
const (
	openLoanIndex    = `book_loans_one_open_per_item`
	borrowerSSNKey   = `borrower_ssn_key`
	borrowerPrimeKey = `borrower_pkey`
	loansItemFK      = `book_loans_book_isbn13_fkey`
	loansBorrowerFK  = `book_loans_borrower_card_id_fkey`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

func (r *repository) SearchItems(ctx context.Context, term string) ([]model.ItemSearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []model.ItemSearchResult{}, nil
	}
	pattern := likePattern(term)
	query, args, err := qb.Select(
		"b.isbn13 as isbn",
		"coalesce(b.title, '') as title",
		"coalesce(array_agg(distinct a.name) filter (where a.name is not null), '{}') as authors",
		fmt.Sprintf("exists(select 1 from %s l where l.book_isbn13 = b.isbn13 and l.date_in is null) as checked_out", loansTableName),
	).
		From(bookTableName + " b").
		LeftJoin(fmt.Sprintf("%s ba on ba.book_isbn13 = b.isbn13", bookAuthorsTableName)).
		LeftJoin(fmt.Sprintf("%s a on a.id = ba.author_id", authorsTableName)).
		Where(sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.isbn13": pattern},
			sq.Expr(fmt.Sprintf(`exists(select 1 from %s ba2 join %s a2 on a2.id = ba2.author_id
				where ba2.book_isbn13 = b.isbn13 and a2.name ilike ?)`, bookAuthorsTableName, authorsTableName), pattern),
		}).
		GroupBy("b.isbn13").
		OrderBy("title", "isbn").
		Limit(model.SearchLimit).
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("SearchItems", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "SearchItems")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ItemSearchResult])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return items, nil
}

func (r *repository) ListOpenLoans(ctx context.Context) ([]model.OpenLoan, error) {
	query, args, err := qb.Select(
		"l.id", "l.book_isbn13 as isbn", "coalesce(b.title, '') as title",
		"l.borrower_card_id as card_id", "l.date_out", "l.due_date").
		From(loansTableName + " l").
		Join(fmt.Sprintf("%s b on b.isbn13 = l.book_isbn13", bookTableName)).
		Where(sq.Eq{"l.date_in": nil}).
		OrderBy("l.date_out", "l.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListOpenLoans")
	}
	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.OpenLoan])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return loans, nil
}

func (r *repository) SearchLoans(ctx context.Context, term string) ([]model.LoanView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []model.LoanView{}, nil
	}
	pattern := likePattern(term)
	query, args, err := qb.Select(
		"l.id", "l.book_isbn13 as isbn", "coalesce(b.title, '') as title",
		"l.borrower_card_id as card_id", "coalesce(br.name, '') as borrower_name",
		"l.date_out", "l.due_date", "l.date_in").
		From(loansTableName + " l").
		LeftJoin(fmt.Sprintf("%s b on b.isbn13 = l.book_isbn13", bookTableName)).
		LeftJoin(fmt.Sprintf("%s br on br.card_id = l.borrower_card_id", borrowerTableName)).
		Where(sq.Or{
			sq.ILike{"l.book_isbn13": pattern},
			sq.ILike{"b.title": pattern},
			sq.ILike{"l.borrower_card_id": pattern},
			sq.ILike{"br.name": pattern},
		}).
		OrderBy("l.date_in desc nulls first", "l.date_out", "l.id").
		Limit(model.SearchLimit).
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("SearchLoans", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "SearchLoans")
	}
	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.LoanView])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return loans, nil
}

func (r *repository) BorrowerExists(ctx context.Context, cardID string) (bool, error) {
	q := fmt.Sprintf(`select exists(select 1 from %s where card_id = $1)`, borrowerTableName)
	var ok bool
	if err := r.db.QueryRow(ctx, q, cardID).Scan(&ok); err != nil {
		return false, errors.Wrap(err, "BorrowerExists")
	}
	return ok, nil
}

func (r *repository) GetBorrowerFines(ctx context.Context, cardID string, includePaid bool) ([]model.BorrowerFine, error) {
	q := qb.Select(
		"l.id as loan_id", "f.amount", "coalesce(f.paid, false) as paid",
		"l.book_isbn13 as isbn", "coalesce(b.title, '') as title", "l.date_out", "l.due_date", "l.date_in",
		"coalesce(sum(f.amount) filter (where f.paid is not true) over (), 0) as total_outstanding").
		From(loansTableName + " l").
		Join(fmt.Sprintf("%s f on f.loan_id = l.id", finesTableName)).
		Join(fmt.Sprintf("%s b on b.isbn13 = l.book_isbn13", bookTableName)).
		Where(sq.Eq{"l.borrower_card_id": cardID})
	if !includePaid {
		q = q.Where("f.paid is not true")
	}
	query, args, err := q.OrderBy("l.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "GetBorrowerFines")
	}
	fines, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.BorrowerFine])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return fines, nil
}

func (r *repository) ListFineTotals(ctx context.Context, includePaid bool) ([]model.FineTotal, error) {
	q := qb.Select("l.borrower_card_id as card_id", "coalesce(sum(f.amount), 0) as total").
		From(finesTableName + " f").
		Join(fmt.Sprintf("%s l on l.id = f.loan_id", loansTableName))
	if !includePaid {
		q = q.Where("f.paid is not true")
	}
	query, args, err := q.GroupBy("l.borrower_card_id").OrderBy("l.borrower_card_id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListFineTotals")
	}
	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.FineTotal])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return totals, nil
}

func (r *repository) ListUnpaidFines(ctx context.Context) ([]model.FineLoan, error) {
	query, args, err := qb.Select(
		"f.loan_id", "f.amount", "coalesce(f.paid, false) as paid",
		"l.date_out", "l.due_date", "l.date_in").
		From(finesTableName + " f").
		Join(fmt.Sprintf("%s l on l.id = f.loan_id", loansTableName)).
		Where("f.paid is not true").
		OrderBy("f.loan_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListUnpaidFines")
	}
	fines, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.FineLoan])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return fines, nil
}
