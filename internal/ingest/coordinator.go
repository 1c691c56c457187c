package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

const shardSuffix = ".gz"

// Coordinator fans the shards of one directory out to a bounded worker pool.
type Coordinator struct {
	logs    *zap.SugaredLogger
	metrics *Metrics
	workers int
	timeout time.Duration
}

// NewCoordinator returns a coordinator running at most workers files at once.
// A zero timeout means no overall deadline.
func NewCoordinator(logs *zap.SugaredLogger, metrics *Metrics, workers int, timeout time.Duration) *Coordinator {
	if workers < 1 {
		workers = 1
	}

	return &Coordinator{
		logs:    logs,
		metrics: metrics,
		workers: workers,
		timeout: timeout,
	}
}

// Run ingests every shard in dir and waits for all of them. A failing file never
// stops the others; its error is recorded in the report. The returned error is
// reserved for failures to list dir.
func (c *Coordinator) Run(ctx context.Context, kind Kind, dir string, worker WorkerFunc) (Report, error) {
	files, err := ListShards(dir)
	if err != nil {
		return Report{}, err
	}

	report := Report{Kind: kind, Dir: dir, Files: len(files)}
	if len(files) == 0 {
		c.logs.Infow("no shard files found, skipping",
			"kind", kind,
			"dir", dir)
		report.Skipped = true
		return report, nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logs.Infow("ingestion started",
		"kind", kind,
		"dir", dir,
		"files", len(files),
		"workers", c.workers)

	var (
		mu        sync.Mutex
		completed atomic.Int64
		start     = time.Now()
	)

	pool := pond.NewPool(c.workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, path := range files {
		group.Submit(func() {
			fileStart := time.Now()
			stats, err := c.runFile(ctx, path, worker)
			elapsed := time.Since(fileStart)
			c.metrics.observeFile(kind, err, elapsed)

			n := completed.Add(1)
			progress := fmt.Sprintf("%d/%d", n, len(files))

			mu.Lock()
			if err != nil {
				report.Failed = append(report.Failed, FileError{Path: path, Err: err})
			} else {
				report.Succeeded++
				report.Stats.add(stats)
			}
			mu.Unlock()

			if err != nil {
				c.logs.Errorw("shard failed",
					"kind", kind,
					"file", filepath.Base(path),
					"progress", progress,
					"error", err)
				return
			}

			c.logs.Infow("shard ingested",
				"kind", kind,
				"file", filepath.Base(path),
				"progress", progress,
				"inserted", stats.Inserted,
				"duplicates", stats.Duplicates(),
				"duration", elapsed)
		})
	}
	_ = group.Wait()

	report.Duration = time.Since(start)

	c.logs.Infow("ingestion finished",
		"kind", kind,
		"files", report.Files,
		"succeeded", report.Succeeded,
		"failed", len(report.Failed),
		"inserted", report.Stats.Inserted,
		"duplicates", report.Stats.Duplicates(),
		"malformed", report.Stats.Malformed,
		"rejected", report.Stats.Rejected,
		"duration", report.Duration)

	return report, nil
}

func (c *Coordinator) runFile(ctx context.Context, path string, worker WorkerFunc) (stats FileStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return FileStats{}, fmt.Errorf("not started: %w", err)
	}

	return worker(ctx, path)
}

// ListShards returns the *.gz files directly inside dir in lexical order.
// A missing directory holds no shards.
func ListShards(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list shards: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, shardSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	return files, nil
}
