package app

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/importer"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/migrations"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

// Import loads books.csv and borrowers.csv into the database in one transaction.
func Import(ctx context.Context, cfg *config.Config, booksPath, borrowersPath string) error {
	log := logger.NewLogger(cfg.Log, "importer")
	defer func() { _ = log.Sync() }()

	catalog, err := readCatalog(booksPath, borrowersPath, log)
	if err != nil {
		return errors.Wrap(err, "read catalog")
	}

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log, repository.WithLockTimeout(cfg.Tx.LockTimeout))
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	stats, err := repo.ImportCatalog(ctx, catalog)
	if err != nil {
		return errors.Wrap(err, "import")
	}
	log.Info("import finished",
		zap.Int("books", stats.Books),
		zap.Int("authors", stats.Authors),
		zap.Int("bookAuthors", stats.BookAuthors),
		zap.Int("borrowers", stats.Borrowers))
	return nil
}

func readCatalog(booksPath, borrowersPath string, log *zap.Logger) (model.Catalog, error) {
	bf, err := os.Open(booksPath)
	if err != nil {
		return model.Catalog{}, err
	}
	defer bf.Close()
	books, err := importer.ReadBooks(bf)
	if err != nil {
		return model.Catalog{}, err
	}

	rf, err := os.Open(borrowersPath)
	if err != nil {
		return model.Catalog{}, err
	}
	defer rf.Close()
	borrowers, skipped, err := importer.ReadBorrowers(rf)
	if err != nil {
		return model.Catalog{}, err
	}
	if skipped > 0 {
		log.Warn("borrowers with malformed card ids skipped", zap.Int("skipped", skipped))
	}
	return model.Catalog{Books: books, Borrowers: borrowers}, nil
}
