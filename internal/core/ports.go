package core

import (
	"context"

	"ledgerload/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetTransactionsByHash(ctx context.Context, hashes []string) ([]repository.Transaction, error)
	GetTransactionsByAddress(ctx context.Context, addresses []string) ([]repository.Transaction, error)
	GetTracesByTransactionHash(ctx context.Context, hashes []string) ([]repository.Trace, error)
	GetTracesByAddress(ctx context.Context, addresses []string) ([]repository.Trace, error)
	GetCreationTraces(ctx context.Context, addresses []string) ([]repository.Trace, error)
	GetContractsByAddress(ctx context.Context, addresses []string) ([]repository.Contract, error)
}

//counterfeiter:generate -o fake -fake-name Cache . Cache
type Cache interface {
	GetMany(ctx context.Context, namespace string, keys []string) (map[string]string, error)
	SetMany(ctx context.Context, namespace string, values map[string]string) error
}
