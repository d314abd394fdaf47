// ingestor Lambda loads one uploaded CSV file into the results table.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	intlambda "github.com/dwsmith1983/paddock/internal/lambda"
)

var (
	deps     *intlambda.Deps
	depsOnce sync.Once
	depsErr  error
)

func getDeps() (*intlambda.Deps, error) {
	depsOnce.Do(func() {
		deps, depsErr = intlambda.Init(context.Background())
	})
	return deps, depsErr
}

// handleIngest runs the pipeline for the first object in the S3 event.
// Uploads arrive one file per event; extra records are logged and skipped.
func handleIngest(ctx context.Context, d *intlambda.Deps, evt events.S3Event) (intlambda.IngestResponse, error) {
	if len(evt.Records) == 0 {
		return intlambda.IngestResponse{}, fmt.Errorf("s3 event contains no records")
	}
	if len(evt.Records) > 1 {
		d.Logger.Warn("s3 event has multiple records, processing first only",
			"records", len(evt.Records))
	}

	rec := evt.Records[0]
	bucket := rec.S3.Bucket.Name
	key, err := url.QueryUnescape(rec.S3.Object.Key)
	if err != nil {
		return intlambda.IngestResponse{}, fmt.Errorf("decoding object key %q: %w", rec.S3.Object.Key, err)
	}

	// Failure notification is dispatched inside the pipeline; the error is
	// returned so the platform's retry/DLQ policy can act on it.
	res, err := d.Pipeline.Run(ctx, bucket, key)
	if err != nil {
		return intlambda.IngestResponse{}, err
	}

	return intlambda.IngestResponse{
		StatusCode:   res.StatusCode,
		Message:      res.Message,
		RunID:        res.RunID,
		RowsStaged:   res.RowsStaged,
		RowsInserted: res.RowsInserted,
	}, nil
}

func handler(ctx context.Context, evt events.S3Event) (intlambda.IngestResponse, error) {
	d, err := getDeps()
	if err != nil {
		return intlambda.IngestResponse{}, err
	}
	return handleIngest(ctx, d, evt)
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	awslambda.Start(handler)
}
