package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"ledgerload/pkg/retry"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

type ctxKey string

const sessionKey ctxKey = "gorm_session"

// PoolConfig sizes the underlying database/sql pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Query describes a filtered read against the table of the destination model.
type Query struct {
	Where string
	Args  []any
	Order string
}

type PostgresDB struct {
	db *gorm.DB
}

// NewPostgresDB opens the store and pings it with backoff until it answers.
func NewPostgresDB(ctx context.Context, logs *zap.SugaredLogger, dsn string, pool PoolConfig) (*PostgresDB, error) {
	pgDB, err := Open(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}

	sqlDB, err := pgDB.db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}

	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	err = retry.WithBackoff(ctx, retry.DefaultConfig(), logs, "postgres_ping", nil, func() error {
		return sqlDB.PingContext(ctx)
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logs.Infow("database connection pool configured",
		"max_open_conns", pool.MaxOpenConns,
		"max_idle_conns", pool.MaxIdleConns)

	return pgDB, nil
}

// Open wraps any gorm dialector; tests pass a sqlmock backed postgres dialector.
func Open(dialector gorm.Dialector) (*PostgresDB, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: gormDB,
	}, nil
}

func (f *PostgresDB) MigrateTable(ctx context.Context, tbl ...any) error {
	err := f.conn(ctx).AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Exec(ctx context.Context, statement string, args ...any) error {
	if err := f.conn(ctx).Exec(statement, args...).Error; err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}

	return nil
}

// Session pins one pooled connection, opens a transaction on it and runs fn with a
// context that routes every call made through this PostgresDB onto that transaction.
// The transaction commits when fn returns nil and rolls back otherwise; the
// connection goes back to the pool on every path.
func (f *PostgresDB) Session(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			return fn(context.WithValue(ctx, sessionKey, tx))
		})
	})
}

// Insert writes records, a pointer to a slice of models, in multi-row statements of at
// most batchSize rows. With ignoreConflicts every unique violation is skipped.
// It returns the number of rows actually inserted.
func (f *PostgresDB) Insert(ctx context.Context, records any, batchSize int, ignoreConflicts bool) (int64, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return 0, fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	if v.Elem().Len() == 0 {
		return 0, nil
	}

	if batchSize <= 0 {
		batchSize = v.Elem().Len()
	}

	q := f.conn(ctx)
	if ignoreConflicts {
		q = q.Clauses(clause.OnConflict{DoNothing: true})
	}

	res := q.CreateInBatches(records, batchSize)
	if res.Error != nil {
		return 0, fmt.Errorf("insert to table: %w", res.Error)
	}

	return res.RowsAffected, nil
}

// GetAllWhere loads every row of dest's model matching query into dest.
func (f *PostgresDB) GetAllWhere(ctx context.Context, dest any, query Query) error {
	q := f.conn(ctx)
	if query.Where != "" {
		q = q.Where(query.Where, query.Args...)
	}
	if query.Order != "" {
		q = q.Order(query.Order)
	}

	if err := q.Find(dest).Error; err != nil {
		return fmt.Errorf("getting records where %q: %w", query.Where, err)
	}

	return nil
}

func (f *PostgresDB) Health(ctx context.Context) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	return sqlDB.PingContext(ctx)
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	return sqlDB.Close()
}

func (f *PostgresDB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(sessionKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return f.db.WithContext(ctx)
}

// IsRetryable reports whether err is a deadlock or serialization failure, after which
// the whole rolled back unit of work may simply run again.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == sqlStateDeadlockDetected || pgErr.Code == sqlStateSerializationFailure
}
