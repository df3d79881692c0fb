package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// ImportCatalog loads books, authors and borrowers in one transaction.
// Rows already present are left untouched.
func (r *repository) ImportCatalog(ctx context.Context, catalog model.Catalog) (model.ImportStats, error) {
	var stats model.ImportStats
	err := r.inTx(ctx, pgx.Serializable, func(ctx context.Context, s *txStore) error {
		st, err := s.importCatalog(ctx, catalog)
		if err != nil {
			return err
		}
		stats = st
		return nil
	})
	if err != nil {
		return model.ImportStats{}, err
	}
	r.log.Info("catalog imported",
		zap.Int("books", stats.Books),
		zap.Int("authors", stats.Authors),
		zap.Int("bookAuthors", stats.BookAuthors),
		zap.Int("borrowers", stats.Borrowers))
	return stats, nil
}

func (s *txStore) importCatalog(ctx context.Context, catalog model.Catalog) (model.ImportStats, error) {
	var (
		stats model.ImportStats
		err   error
	)

	insertBook := fmt.Sprintf(`insert into %s (isbn13, title) values ($1, $2) on conflict (isbn13) do nothing`, bookTableName)
	insertAuthor := fmt.Sprintf(`insert into %s (name) values ($1) on conflict (name) do nothing`, authorsTableName)
	linkAuthor := fmt.Sprintf(`insert into %s (author_id, book_isbn13)
	select a.id, $2 from %s a where a.name = $1
	on conflict do nothing`, bookAuthorsTableName, authorsTableName)
	insertBorrower := fmt.Sprintf(`insert into %s (card_id, ssn, name, address, phone_number)
	values ($1, $2, $3, $4, $5) on conflict do nothing`, borrowerTableName)

	books := &pgx.Batch{}
	authors := &pgx.Batch{}
	links := &pgx.Batch{}
	for _, b := range catalog.Books {
		books.Queue(insertBook, b.ISBN, b.Title)
		for _, a := range b.Authors {
			authors.Queue(insertAuthor, a)
			links.Queue(linkAuthor, a, b.ISBN)
		}
	}
	borrowers := &pgx.Batch{}
	for _, b := range catalog.Borrowers {
		borrowers.Queue(insertBorrower, b.CardID, b.SSN, b.Name, b.Address, b.Phone)
	}

	// links resolve author ids, so authors must be flushed first
	if stats.Books, err = s.sendBatch(ctx, books); err != nil {
		return stats, errors.Wrap(err, "books")
	}
	if stats.Authors, err = s.sendBatch(ctx, authors); err != nil {
		return stats, errors.Wrap(err, "authors")
	}
	if stats.BookAuthors, err = s.sendBatch(ctx, links); err != nil {
		return stats, errors.Wrap(err, "book_authors")
	}
	if stats.Borrowers, err = s.sendBatch(ctx, borrowers); err != nil {
		return stats, errors.Wrap(err, "borrowers")
	}
	return stats, nil
}

// sendBatch runs b and returns the total number of affected rows.
func (s *txStore) sendBatch(ctx context.Context, b *pgx.Batch) (n int, err error) {
	if b.Len() == 0 {
		return 0, nil
	}
	br := s.q.SendBatch(ctx, b)
	defer func() {
		if cErr := br.Close(); err == nil {
			err = cErr
		}
	}()
	for i := 0; i < b.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			return n, err
		}
		n += int(tag.RowsAffected())
	}
	return n, nil
}
