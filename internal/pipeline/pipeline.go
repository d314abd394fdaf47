// Package pipeline orchestrates one ingest invocation: fetch, validate,
// normalize, stage, merge, notify.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dwsmith1983/paddock/internal/metrics"
	"github.com/dwsmith1983/paddock/internal/schema"
	"github.com/dwsmith1983/paddock/internal/table"
	"github.com/dwsmith1983/paddock/pkg/types"
)

// Fetcher retrieves raw object bytes given a bucket and key.
type Fetcher interface {
	Fetch(ctx context.Context, bucket, key string) ([]byte, error)
}

// Merger stages a record set and merges it into the permanent table
// atomically, returning the number of newly inserted rows.
type Merger interface {
	LoadAndMerge(ctx context.Context, rs *table.RecordSet) (int64, error)
}

// Result is the outcome of a successful ingest invocation.
type Result struct {
	StatusCode   int    `json:"statusCode"`
	Message      string `json:"message"`
	RunID        string `json:"runId"`
	RowsStaged   int    `json:"rowsStaged"`
	RowsInserted int64  `json:"rowsInserted"`
}

// Pipeline runs the validate-stage-merge sequence for one uploaded file.
// It is stateless between invocations; the only shared mutable state is the
// database tables behind the Merger.
type Pipeline struct {
	fetcher  Fetcher
	store    Merger
	notifyFn func(types.Notification)
	columns  []string
	idColumn string
	logger   *slog.Logger
}

// New creates a Pipeline. The expected columns list is fixed for the process
// lifetime and defines both the validation contract and the staging order.
func New(fetcher Fetcher, store Merger, notifyFn func(types.Notification), columns []string, idColumn string, logger *slog.Logger) *Pipeline {
	if notifyFn == nil {
		notifyFn = func(types.Notification) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		fetcher:  fetcher,
		store:    store,
		notifyFn: notifyFn,
		columns:  columns,
		idColumn: idColumn,
		logger:   logger,
	}
}

// Run ingests one object. Every terminal outcome produces exactly one
// notification; on failure the original error is returned after the
// notification attempt so the caller's retry or dead-letter policy can act.
// No internal retries.
func (p *Pipeline) Run(ctx context.Context, bucket, key string) (Result, error) {
	runID := ulid.Make().String()
	logger := p.logger.With("runID", runID, "bucket", bucket, "key", key)
	logger.Info("ingest started")

	rs, inserted, err := p.ingest(ctx, bucket, key)
	if err != nil {
		metrics.FilesFailed.Add(1)
		kind := Classify(err)
		logger.Error("ingest failed", "kind", string(kind), "error", err)
		p.notifyFn(types.Notification{
			RunID:     runID,
			Outcome:   types.OutcomeFailure,
			Bucket:    bucket,
			Key:       key,
			Message:   fmt.Sprintf("%s: ingest of s3://%s/%s failed: %v", kind, bucket, key, err),
			Timestamp: time.Now(),
		})
		return Result{}, err
	}

	staged := len(rs.Rows)
	metrics.FilesProcessed.Add(1)
	metrics.RowsStaged.Add(int64(staged))
	metrics.RowsInserted.Add(inserted)
	metrics.DuplicatesSkipped.Add(int64(staged) - inserted)

	msg := fmt.Sprintf("loaded s3://%s/%s: %d rows staged, %d new", bucket, key, staged, inserted)
	logger.Info("ingest completed", "rowsStaged", staged, "rowsInserted", inserted)
	p.notifyFn(types.Notification{
		RunID:     runID,
		Outcome:   types.OutcomeSuccess,
		Bucket:    bucket,
		Key:       key,
		Message:   msg,
		Timestamp: time.Now(),
	})

	return Result{
		StatusCode:   200,
		Message:      msg,
		RunID:        runID,
		RowsStaged:   staged,
		RowsInserted: inserted,
	}, nil
}

func (p *Pipeline) ingest(ctx context.Context, bucket, key string) (*table.RecordSet, int64, error) {
	data, err := p.fetcher.Fetch(ctx, bucket, key)
	if err != nil {
		return nil, 0, err
	}

	rs, err := table.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}

	if err := schema.Validate(rs.Columns, p.columns); err != nil {
		return nil, 0, err
	}

	if err := schema.NormalizeID(rs, p.idColumn); err != nil {
		return nil, 0, err
	}

	inserted, err := p.store.LoadAndMerge(ctx, rs)
	if err != nil {
		return nil, 0, err
	}
	return rs, inserted, nil
}
