// Package types defines the public domain types for the paddock results loader.
package types

import "time"

// Outcome is the terminal result of one ingest invocation.
type Outcome string

// Outcome values for a completed invocation.
const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)

// SinkType defines the notification sink type.
type SinkType string

// SinkType values enumerate the supported notification sink backends.
const (
	SinkConsole SinkType = "console"
	SinkFile    SinkType = "file"
	SinkSNS     SinkType = "sns"
)

// SinkConfig configures one notification sink.
type SinkConfig struct {
	Type     SinkType `yaml:"type" json:"type"`
	Path     string   `yaml:"path,omitempty" json:"path,omitempty"`         // file sink
	TopicARN string   `yaml:"topicArn,omitempty" json:"topicArn,omitempty"` // sns sink
}

// Notification describes the outcome of one ingest invocation. It is
// fire-and-forget: sinks receive it after the pipeline result is already
// decided, and delivery failures never change that result.
type Notification struct {
	RunID     string    `json:"runId"`
	Outcome   Outcome   `json:"outcome"`
	Bucket    string    `json:"bucket"`
	Key       string    `json:"key"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Subject renders the short subject line used by sinks that carry one.
func (n Notification) Subject() string {
	return "[" + string(n.Outcome) + "] " + n.Key
}
