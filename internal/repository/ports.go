package repository

import (
	"context"

	"ledgerload/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(ctx context.Context, tbl ...any) error
	Exec(ctx context.Context, statement string, args ...any) error
	Session(ctx context.Context, fn func(ctx context.Context) error) error
	Insert(ctx context.Context, records any, batchSize int, ignoreConflicts bool) (int64, error)
	GetAllWhere(ctx context.Context, dest any, query db.Query) error
}
