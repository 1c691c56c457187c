package ingest

import (
	"context"

	"ledgerload/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	Session(ctx context.Context, fn func(ctx context.Context) error) error
	SaveTransactions(ctx context.Context, transactions []repository.Transaction) (int64, error)
	SaveTraces(ctx context.Context, traces []repository.Trace) (int64, error)
	SaveContracts(ctx context.Context, contracts []repository.Contract) (int64, error)
}
