// Package fetch retrieves raw uploaded objects from S3.
package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used by Fetcher.
type S3API interface {
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Fetcher reads whole objects from S3 given a bucket and key.
type Fetcher struct {
	client S3API
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets a custom S3 client (useful for testing).
func WithClient(c S3API) Option {
	return func(f *Fetcher) { f.client = c }
}

// New creates a Fetcher, building a default S3 client when none is supplied.
func New(ctx context.Context, opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, o := range opts {
		o(f)
	}
	if f.client == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		f.client = s3.NewFromConfig(cfg)
	}
	return f, nil
}

// Fetch returns the full byte content of one object.
func (f *Fetcher) Fetch(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getting s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}
