package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrUnknownKind = errors.New("unknown entity kind")

// Kind names one of the independently ingested record categories.
type Kind string

const (
	KindTransactions Kind = "transactions"
	KindTraces       Kind = "traces"
	KindContracts    Kind = "contracts"
)

// Record is one decoded shard line. Raw holds the line exactly as read.
type Record struct {
	Raw    json.RawMessage
	Fields map[string]any
}

// FileStats counts what happened to the lines of one shard.
type FileStats struct {
	Lines     int64
	Malformed int64
	Rejected  int64
	Accepted  int64
	Inserted  int64
}

// Duplicates are accepted rows the store already held.
func (s FileStats) Duplicates() int64 {
	return s.Accepted - s.Inserted
}

func (s *FileStats) add(o FileStats) {
	s.Lines += o.Lines
	s.Malformed += o.Malformed
	s.Rejected += o.Rejected
	s.Accepted += o.Accepted
	s.Inserted += o.Inserted
}

type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Report summarises one coordinator run. Stats only cover files that committed.
type Report struct {
	Kind      Kind
	Dir       string
	Files     int
	Succeeded int
	Failed    []FileError
	Skipped   bool
	Stats     FileStats
	Duration  time.Duration
}

// Err joins every file failure, or returns nil when all files committed.
func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}

	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		errs = append(errs, f)
	}

	return errors.Join(errs...)
}
