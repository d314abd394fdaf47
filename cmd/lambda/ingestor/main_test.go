package main

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intlambda "github.com/dwsmith1983/paddock/internal/lambda"
	"github.com/dwsmith1983/paddock/internal/pipeline"
)

type stubRunner struct {
	bucket, key string
	result      pipeline.Result
	err         error
}

func (s *stubRunner) Run(_ context.Context, bucket, key string) (pipeline.Result, error) {
	s.bucket = bucket
	s.key = key
	return s.result, s.err
}

func testDeps(r *stubRunner) *intlambda.Deps {
	return &intlambda.Deps{Pipeline: r, Logger: slog.Default()}
}

func s3Event(bucket string, keys ...string) events.S3Event {
	var evt events.S3Event
	for _, key := range keys {
		evt.Records = append(evt.Records, events.S3EventRecord{
			S3: events.S3Entity{
				Bucket: events.S3Bucket{Name: bucket},
				Object: events.S3Object{Key: key},
			},
		})
	}
	return evt
}

func TestHandleIngest_Success(t *testing.T) {
	runner := &stubRunner{result: pipeline.Result{
		StatusCode:   200,
		Message:      "loaded s3://uploads/results.csv: 2 rows staged, 2 new",
		RunID:        "01JTEST",
		RowsStaged:   2,
		RowsInserted: 2,
	}}

	resp, err := handleIngest(context.Background(), testDeps(runner), s3Event("uploads", "results.csv"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, int64(2), resp.RowsInserted)
	assert.Equal(t, "uploads", runner.bucket)
	assert.Equal(t, "results.csv", runner.key)
}

func TestHandleIngest_DecodesObjectKey(t *testing.T) {
	runner := &stubRunner{result: pipeline.Result{StatusCode: 200}}

	_, err := handleIngest(context.Background(), testDeps(runner),
		s3Event("uploads", "2026-08-30/ascot+results.csv"))
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30/ascot results.csv", runner.key)
}

func TestHandleIngest_NoRecords(t *testing.T) {
	runner := &stubRunner{}

	_, err := handleIngest(context.Background(), testDeps(runner), events.S3Event{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records")
	assert.Empty(t, runner.bucket)
}

func TestHandleIngest_FirstRecordOnly(t *testing.T) {
	runner := &stubRunner{result: pipeline.Result{StatusCode: 200}}

	_, err := handleIngest(context.Background(), testDeps(runner),
		s3Event("uploads", "first.csv", "second.csv"))
	require.NoError(t, err)
	assert.Equal(t, "first.csv", runner.key)
}

func TestHandleIngest_PipelineErrorPropagates(t *testing.T) {
	runner := &stubRunner{err: errors.New("column mismatch")}

	_, err := handleIngest(context.Background(), testDeps(runner), s3Event("uploads", "bad.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column mismatch")
}
