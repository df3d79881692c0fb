package repository

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type options struct {
	retries     int
	backoff     time.Duration
	lockTimeout time.Duration
}

func defaultOptions() options {
	return options{
		retries:     5,
		backoff:     20 * time.Millisecond,
		lockTimeout: 5 * time.Second,
	}
}

type Option func(*options)

// WithTxRetries bounds how many times a transaction losing a serialization race is run.
func WithTxRetries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.retries = n
		}
	}
}

func WithRetryBackoff(d time.Duration) Option {
	return func(o *options) { o.backoff = d }
}

func WithLockTimeout(d time.Duration) Option {
	return func(o *options) { o.lockTimeout = d }
}

// errCardTaken marks a lost card id race; the whole transaction is retried.
var errCardTaken = errors.New("card id already taken")

// InTx runs fn in a serializable transaction, rerunning it on serialization failures.
func (r *repository) InTx(ctx context.Context, fn TxFunc) error {
	return r.inTx(ctx, pgx.Serializable, func(ctx context.Context, s *txStore) error {
		return fn(ctx, s)
	})
}

// InAllocTx runs fn at read committed: a statement waiting on a row lock re-reads the row
// after the holder commits instead of failing. fn must rely on row locks and unique constraints.
func (r *repository) InAllocTx(ctx context.Context, fn TxFunc) error {
	return r.inTx(ctx, pgx.ReadCommitted, func(ctx context.Context, s *txStore) error {
		return fn(ctx, s)
	})
}

func (r *repository) inTx(ctx context.Context, iso pgx.TxIsoLevel, fn func(ctx context.Context, s *txStore) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = r.runTx(ctx, iso, fn)
		if err == nil || !retryable(err) || attempt >= r.opts.retries {
			break
		}
		r.log.Debug("tx retry", zap.Int("attempt", attempt), zap.Error(err))

		wait := r.opts.backoff * time.Duration(attempt)
		if r.opts.backoff > 0 {
			wait += time.Duration(rand.Int63n(int64(r.opts.backoff)))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return r.classify(ctx, err)
}

func (r *repository) runTx(ctx context.Context, iso pgx.TxIsoLevel, fn func(ctx context.Context, s *txStore) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: iso})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.log.Warn("rollback", zap.Error(rbErr))
			}
		}
	}()

	if r.opts.lockTimeout > 0 {
		q := fmt.Sprintf("set local lock_timeout = %d", r.opts.lockTimeout.Milliseconds())
		if _, err = tx.Exec(ctx, q); err != nil {
			return errors.Wrap(err, "set lock_timeout")
		}
	}

	if err = fn(ctx, &txStore{q: tx}); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(ctx), "commit")
}

func retryable(err error) bool {
	if errors.Is(err, errCardTaken) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
	}
	return false
}

func (r *repository) classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if retryable(err) {
		return errors.Wrap(errs.ErrConflict, err.Error())
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.LockNotAvailable, pgerrcode.QueryCanceled:
			return errors.Wrap(errs.ErrTimeout, pgErr.Message)
		}
	}
	return err
}

// txStore implements Tx on top of an open transaction.
type txStore struct {
	q querier
}

func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraint
}

func foreignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation && pgErr.ConstraintName == constraint
}
