package handler

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	SearchItems(ctx context.Context, term string) ([]model.ItemSearchResult, error)
	CheckOut(ctx context.Context, isbn, cardID string) (model.Loan, error)
	CheckIn(ctx context.Context, isbn string) (model.CheckIn, error)
	ListOpenLoans(ctx context.Context) ([]model.OpenLoan, error)
	SearchLoans(ctx context.Context, term string) ([]model.LoanView, error)
	CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest) (model.Borrower, error)
	GetBorrowerFines(ctx context.Context, cardID string, includePaid bool) ([]model.BorrowerFine, error)
	PayFines(ctx context.Context, cardID string) (model.Payment, error)
	ListFineTotals(ctx context.Context, includePaid bool) ([]model.FineTotal, error)
	Sweep(ctx context.Context) (model.SweepResult, error)
}

var _ CirculationService = (*service.Service)(nil)
