// Package lambda provides shared types and initialization for the ingest
// Lambda handler.
package lambda

import (
	"context"

	"github.com/dwsmith1983/paddock/internal/pipeline"
)

// Runner runs the ingest pipeline for one object.
type Runner interface {
	Run(ctx context.Context, bucket, key string) (pipeline.Result, error)
}

// IngestResponse is the output of the ingestor Lambda.
type IngestResponse struct {
	StatusCode   int    `json:"statusCode"`
	Message      string `json:"message"`
	RunID        string `json:"runId"`
	RowsStaged   int    `json:"rowsStaged"`
	RowsInserted int64  `json:"rowsInserted"`
}
