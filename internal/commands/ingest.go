package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dwsmith1983/paddock/internal/fetch"
	"github.com/dwsmith1983/paddock/internal/pipeline"
)

// localFetcher serves a single local file regardless of bucket/key, so the
// same pipeline path can be exercised without S3.
type localFetcher struct {
	path string
}

func (f *localFetcher) Fetch(_ context.Context, _, _ string) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	return data, nil
}

// NewIngestCmd creates the ingest command.
func NewIngestCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "ingest [s3://bucket/key | local-file.csv]",
		Short: "Run the validate-stage-merge pipeline for one CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd.Context(), configPath, args[0])
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "paddock.yaml", "config file path")
	return cmd
}

func runIngest(ctx context.Context, configPath, source string) error {
	logger := newLogger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	columns, err := resolveColumns(cfg)
	if err != nil {
		return err
	}

	st, err := buildStore(ctx, cfg, columns)
	if err != nil {
		return err
	}
	defer st.Close()

	notifyFn, err := buildNotifyFn(cfg, logger)
	if err != nil {
		return err
	}

	var fetcher pipeline.Fetcher
	var bucket, key string
	if strings.HasPrefix(source, "s3://") {
		bucket, key, err = parseS3URI(source)
		if err != nil {
			return err
		}
		fetcher, err = fetch.New(ctx)
		if err != nil {
			return err
		}
	} else {
		fetcher = &localFetcher{path: source}
		bucket, key = "local", filepath.Base(source)
	}

	p := pipeline.New(fetcher, st, notifyFn, columns, cfg.IDColumn, logger)
	res, err := p.Run(ctx, bucket, key)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", color.GreenString("done:"), res.Message)
	return nil
}
