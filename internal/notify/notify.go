// Package notify implements outcome notification dispatching to multiple sinks.
package notify

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/dwsmith1983/paddock/internal/metrics"
	"github.com/dwsmith1983/paddock/pkg/types"
)

// Sink is a notification destination.
type Sink interface {
	Send(n types.Notification) error
	Name() string
}

// Dispatcher routes outcome notifications to configured sinks. Delivery is
// best-effort: a sink failure is logged and counted, never returned, so a
// notification outage cannot mask the pipeline's own result. Each sink sits
// behind a circuit breaker so a dead endpoint fails fast across warm
// invocations instead of stalling every run.
type Dispatcher struct {
	sinks    []Sink
	breakers map[string]*gobreaker.CircuitBreaker
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher from sink configs.
func NewDispatcher(configs []types.SinkConfig, logger *slog.Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{breakers: make(map[string]*gobreaker.CircuitBreaker), logger: logger}
	for _, cfg := range configs {
		sink, err := newSink(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating %s sink: %w", cfg.Type, err)
		}
		d.AddSink(sink)
	}
	return d, nil
}

// AddSink registers an additional sink.
func (d *Dispatcher) AddSink(s Sink) {
	d.sinks = append(d.sinks, s)
	d.breakers[s.Name()] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    s.Name(),
		Timeout: 30 * time.Second,
	})
}

// Dispatch sends a notification to all configured sinks.
func (d *Dispatcher) Dispatch(n types.Notification) {
	for _, sink := range d.sinks {
		_, err := d.breakers[sink.Name()].Execute(func() (interface{}, error) {
			return nil, sink.Send(n)
		})
		if err != nil {
			metrics.NotificationsFailed.Add(1)
			d.logger.Error("notification send failed",
				"sink", sink.Name(), "runID", n.RunID, "key", n.Key, "error", err)
			continue
		}
		metrics.NotificationsSent.Add(1)
	}
}

// NotifyFunc returns a function suitable for use as the pipeline's
// notification callback.
func (d *Dispatcher) NotifyFunc() func(types.Notification) {
	return d.Dispatch
}

func newSink(cfg types.SinkConfig) (Sink, error) {
	switch cfg.Type {
	case types.SinkConsole:
		return NewConsoleSink(), nil
	case types.SinkFile:
		if cfg.Path == "" {
			return nil, fmt.Errorf("file path required")
		}
		return NewFileSink(cfg.Path)
	case types.SinkSNS:
		if cfg.TopicARN == "" {
			return nil, fmt.Errorf("SNS topic ARN required")
		}
		return NewSNSSink(cfg.TopicARN)
	default:
		return nil, fmt.Errorf("unknown sink type %q", cfg.Type)
	}
}
