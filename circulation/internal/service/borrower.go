package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/cardid"
	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

// AllocateCardID reserves the next card id. The number is consumed even if no borrower is created with it.
func (s *Service) AllocateCardID(ctx context.Context) (string, error) {
	var id string
	err := s.repo.InAllocTx(ctx, func(ctx context.Context, tx repository.Tx) (err error) {
		id, err = allocateCardID(ctx, tx)
		return err
	})
	if err != nil {
		s.logFailure("AllocateCardID", err)
		return "", err
	}
	return id, nil
}

func allocateCardID(ctx context.Context, tx repository.Tx) (string, error) {
	n, err := tx.NextCardNumber(ctx, cardid.Prefix)
	if err != nil {
		return "", err
	}
	return cardid.Format(n)
}

func (s *Service) CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest) (model.Borrower, error) {
	var b model.Borrower
	err := s.repo.InAllocTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		exists, err := tx.SSNExists(ctx, req.SSN)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateIdentity
		}
		id, err := allocateCardID(ctx, tx)
		if err != nil {
			return err
		}
		b = model.Borrower{
			CardID:  id,
			SSN:     req.SSN,
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
		}
		return tx.InsertBorrower(ctx, b)
	})
	if err != nil {
		s.logFailure("CreateBorrower", err)
		return model.Borrower{}, err
	}
	s.log.Info("borrower created", zap.String("cardId", b.CardID))
	return b, nil
}
