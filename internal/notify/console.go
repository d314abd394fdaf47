package notify

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dwsmith1983/paddock/pkg/types"
)

// ConsoleSink writes notifications to the terminal with color.
type ConsoleSink struct{}

// NewConsoleSink creates a new console notification sink.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{}
}

// Name returns the sink identifier.
func (s *ConsoleSink) Name() string { return "console" }

// Send writes a notification to the terminal, color-coded by outcome.
func (s *ConsoleSink) Send(n types.Notification) error {
	prefix := color.GreenString("[OK]")
	if n.Outcome == types.OutcomeFailure {
		prefix = color.RedString("[FAIL]")
	}
	fmt.Printf("%s s3://%s/%s %s\n", prefix, n.Bucket, n.Key, n.Message)
	return nil
}
