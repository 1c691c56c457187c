package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
)

type ReaderStats struct {
	Lines     int64
	Malformed int64
}

// Reader streams the JSON objects of a gzip compressed, line delimited shard.
// Lines that are not valid UTF-8 or not a single JSON object are counted and
// skipped. Iteration is lazy and cannot be restarted.
type Reader struct {
	file   *os.File
	gz     *gzip.Reader
	buf    *bufio.Reader
	record Record
	stats  ReaderStats
	err    error
	done   bool
}

func OpenReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shard: %w", err)
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}

	return &Reader{
		file: file,
		gz:   gz,
		buf:  bufio.NewReaderSize(gz, 1<<20),
	}, nil
}

// Next advances to the next decodable record. It returns false at the end of
// the stream or on a read error, which Err then reports.
func (r *Reader) Next() bool {
	for !r.done {
		line, err := r.buf.ReadBytes('\n')
		if err != nil {
			r.done = true
			if !errors.Is(err, io.EOF) {
				r.err = fmt.Errorf("read shard: %w", err)
				return false
			}
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		r.stats.Lines++
		record, ok := decodeLine(line)
		if !ok {
			r.stats.Malformed++
			continue
		}

		r.record = record
		return true
	}

	return false
}

func (r *Reader) Record() Record {
	return r.record
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) Stats() ReaderStats {
	return r.stats
}

func (r *Reader) Close() error {
	gzErr := r.gz.Close()
	fileErr := r.file.Close()

	return errors.Join(gzErr, fileErr)
}

func decodeLine(line []byte) (Record, bool) {
	if !utf8.Valid(line) || !json.Valid(line) {
		return Record{}, false
	}

	decoder := json.NewDecoder(bytes.NewReader(line))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil || fields == nil {
		return Record{}, false
	}

	return Record{
		Raw:    json.RawMessage(line),
		Fields: fields,
	}, true
}
