package ingest

import (
	"context"
	"fmt"
	"path/filepath"

	"ledgerload/internal/db"
	"ledgerload/pkg/retry"

	"go.uber.org/zap"
)

// WorkerFunc ingests one shard file and reports what happened to its lines.
type WorkerFunc func(ctx context.Context, path string) (FileStats, error)

// Ingester turns shard files into rows. Each file is loaded on its own
// connection inside one transaction, so a failed file leaves nothing behind
// and can be retried whole.
type Ingester struct {
	logs      *zap.SugaredLogger
	repo      Repository
	metrics   *Metrics
	batchSize int
	retry     retry.Config
}

func NewIngester(logs *zap.SugaredLogger, repo Repository, metrics *Metrics, batchSize int, retryCfg retry.Config) *Ingester {
	if batchSize < 1 {
		batchSize = 1
	}

	return &Ingester{
		logs:      logs,
		repo:      repo,
		metrics:   metrics,
		batchSize: batchSize,
		retry:     retryCfg,
	}
}

// Worker returns the file worker for kind.
func (i *Ingester) Worker(kind Kind) (WorkerFunc, error) {
	switch kind {
	case KindTransactions:
		return i.IngestTransactions, nil
	case KindTraces:
		return i.IngestTraces, nil
	case KindContracts:
		return i.IngestContracts, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (i *Ingester) IngestTransactions(ctx context.Context, path string) (FileStats, error) {
	return ingestFile(ctx, i, KindTransactions, path, NormalizeTransaction, i.repo.SaveTransactions)
}

// IngestTraces appends every trace in the file; re-ingesting a file duplicates its traces.
func (i *Ingester) IngestTraces(ctx context.Context, path string) (FileStats, error) {
	return ingestFile(ctx, i, KindTraces, path, NormalizeTrace, i.repo.SaveTraces)
}

func (i *Ingester) IngestContracts(ctx context.Context, path string) (FileStats, error) {
	return ingestFile(ctx, i, KindContracts, path, NormalizeContract, i.repo.SaveContracts)
}

func ingestFile[T any](
	ctx context.Context,
	in *Ingester,
	kind Kind,
	path string,
	normalize func(Record) (T, bool),
	save func(context.Context, []T) (int64, error),
) (FileStats, error) {
	var stats FileStats

	operation := fmt.Sprintf("ingest %s %s", kind, filepath.Base(path))
	err := retry.WithBackoff(ctx, in.retry, in.logs, operation, db.IsRetryable, func() error {
		return in.repo.Session(ctx, func(ctx context.Context) error {
			var err error
			stats, err = loadFile(ctx, path, in.batchSize, normalize, save)
			return err
		})
	})
	if err != nil {
		return stats, err
	}

	in.metrics.observeRecords(kind, stats)
	if stats.Malformed > 0 || stats.Rejected > 0 {
		in.logs.Warnw("shard lines skipped",
			"kind", kind,
			"file", filepath.Base(path),
			"malformed", stats.Malformed,
			"rejected", stats.Rejected)
	}

	return stats, nil
}

func loadFile[T any](
	ctx context.Context,
	path string,
	batchSize int,
	normalize func(Record) (T, bool),
	save func(context.Context, []T) (int64, error),
) (stats FileStats, err error) {
	reader, err := OpenReader(path)
	if err != nil {
		return FileStats{}, err
	}
	defer reader.Close()
	defer func() {
		rs := reader.Stats()
		stats.Lines = rs.Lines
		stats.Malformed = rs.Malformed
	}()

	batch := make([]T, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		inserted, err := save(ctx, batch)
		if err != nil {
			return err
		}
		stats.Inserted += inserted
		batch = make([]T, 0, batchSize)
		return nil
	}

	for reader.Next() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		row, ok := normalize(reader.Record())
		if !ok {
			stats.Rejected++
			continue
		}
		stats.Accepted++

		batch = append(batch, row)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := reader.Err(); err != nil {
		return stats, err
	}

	return stats, flush()
}
