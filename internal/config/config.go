// Package config resolves database, table, and notification settings.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dwsmith1983/paddock/pkg/types"
)

// Defaults for optional settings.
const (
	DefaultPort         = 5432
	DefaultStagingTable = "staging_results"
	DefaultResultsTable = "race_results"
	DefaultIDColumn     = "id"
)

// Config holds resolved settings for one loader process. Values are
// resolved once before the first invocation and immutable afterwards.
type Config struct {
	DBHost     string `yaml:"dbHost"`
	DBName     string `yaml:"dbName"`
	DBUser     string `yaml:"dbUser"`
	DBPassword string `yaml:"dbPassword"`
	DBPort     int    `yaml:"dbPort,omitempty"`

	StagingTable string `yaml:"stagingTable,omitempty"`
	ResultsTable string `yaml:"resultsTable,omitempty"`
	IDColumn     string `yaml:"idColumn,omitempty"`
	ColumnsFile  string `yaml:"columnsFile,omitempty"` // empty: bundled artifact

	Sinks []types.SinkConfig `yaml:"sinks,omitempty"`
}

// FromEnv builds a Config from environment variables. Required: DB_HOST,
// DB_NAME, DB_USER, DB_PASSWORD. DB_PORT defaults to 5432.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBHost:       os.Getenv("DB_HOST"),
		DBName:       os.Getenv("DB_NAME"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		StagingTable: os.Getenv("STAGING_TABLE"),
		ResultsTable: os.Getenv("RESULTS_TABLE"),
		IDColumn:     os.Getenv("ID_COLUMN"),
		ColumnsFile:  os.Getenv("COLUMNS_FILE"),
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("parsing DB_PORT %q: %w", port, err)
		}
		cfg.DBPort = n
	}
	if arn := os.Getenv("SNS_TOPIC_ARN"); arn != "" {
		cfg.Sinks = append(cfg.Sinks, types.SinkConfig{Type: types.SinkSNS, TopicARN: arn})
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a paddock.yaml config file, used by the CLI.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DBPort == 0 {
		c.DBPort = DefaultPort
	}
	if c.StagingTable == "" {
		c.StagingTable = DefaultStagingTable
	}
	if c.ResultsTable == "" {
		c.ResultsTable = DefaultResultsTable
	}
	if c.IDColumn == "" {
		c.IDColumn = DefaultIDColumn
	}
}

func (c *Config) validate() error {
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	return u.String()
}
