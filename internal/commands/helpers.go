// Package commands implements the paddock CLI subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dwsmith1983/paddock/internal/config"
	"github.com/dwsmith1983/paddock/internal/notify"
	"github.com/dwsmith1983/paddock/internal/schema"
	"github.com/dwsmith1983/paddock/internal/store"
	"github.com/dwsmith1983/paddock/pkg/types"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func resolveColumns(cfg *config.Config) ([]string, error) {
	if cfg.ColumnsFile != "" {
		return schema.LoadColumns(cfg.ColumnsFile)
	}
	return schema.DefaultColumns()
}

func buildStore(ctx context.Context, cfg *config.Config, columns []string) (*store.Store, error) {
	return store.New(ctx, cfg.DSN(), store.Tables{
		Staging:  cfg.StagingTable,
		Results:  cfg.ResultsTable,
		IDColumn: cfg.IDColumn,
		Columns:  columns,
	})
}

// buildNotifyFn wires the configured sinks, defaulting to console output
// for interactive use.
func buildNotifyFn(cfg *config.Config, logger *slog.Logger) (func(types.Notification), error) {
	sinks := cfg.Sinks
	if len(sinks) == 0 {
		sinks = []types.SinkConfig{{Type: types.SinkConsole}}
	}
	dispatcher, err := notify.NewDispatcher(sinks, logger)
	if err != nil {
		return nil, fmt.Errorf("creating notification dispatcher: %w", err)
	}
	return dispatcher.NotifyFunc(), nil
}

// parseS3URI splits "s3://bucket/key" into its parts.
func parseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 URI: %s", uri)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 URI must be s3://bucket/key: %s", uri)
	}
	return bucket, key, nil
}
