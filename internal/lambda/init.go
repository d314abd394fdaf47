package lambda

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dwsmith1983/paddock/internal/config"
	"github.com/dwsmith1983/paddock/internal/fetch"
	"github.com/dwsmith1983/paddock/internal/notify"
	"github.com/dwsmith1983/paddock/internal/pipeline"
	"github.com/dwsmith1983/paddock/internal/schema"
	"github.com/dwsmith1983/paddock/internal/store"
	"github.com/dwsmith1983/paddock/pkg/types"
)

// Deps holds shared dependencies for the Lambda handler, built once per cold
// start and reused across warm invocations.
type Deps struct {
	Pipeline Runner
	Store    *store.Store
	Logger   *slog.Logger
}

// Init creates shared dependencies from environment variables.
// Reads: DB_HOST, DB_NAME, DB_USER, DB_PASSWORD, DB_PORT, SNS_TOPIC_ARN,
// STAGING_TABLE, RESULTS_TABLE, ID_COLUMN, COLUMNS_FILE.
func Init(ctx context.Context) (*Deps, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	columns, err := loadColumns(cfg)
	if err != nil {
		return nil, err
	}

	st, err := store.New(ctx, cfg.DSN(), store.Tables{
		Staging:  cfg.StagingTable,
		Results:  cfg.ResultsTable,
		IDColumn: cfg.IDColumn,
		Columns:  columns,
	})
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	fetcher, err := fetch.New(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating fetcher: %w", err)
	}

	notifyFn, err := buildNotifyFn(cfg, logger)
	if err != nil {
		st.Close()
		return nil, err
	}

	p := pipeline.New(fetcher, st, notifyFn, columns, cfg.IDColumn, logger)

	return &Deps{
		Pipeline: p,
		Store:    st,
		Logger:   logger,
	}, nil
}

func loadColumns(cfg *config.Config) ([]string, error) {
	if cfg.ColumnsFile != "" {
		return schema.LoadColumns(cfg.ColumnsFile)
	}
	return schema.DefaultColumns()
}

func buildNotifyFn(cfg *config.Config, logger *slog.Logger) (func(types.Notification), error) {
	if len(cfg.Sinks) == 0 {
		return func(n types.Notification) {
			logger.Info("outcome", "outcome", n.Outcome, "key", n.Key, "message", n.Message)
		}, nil
	}
	dispatcher, err := notify.NewDispatcher(cfg.Sinks, logger)
	if err != nil {
		return nil, fmt.Errorf("creating notification dispatcher: %w", err)
	}
	return dispatcher.NotifyFunc(), nil
}
