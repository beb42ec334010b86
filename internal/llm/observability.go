package llm

import (
	"log/slog"
)

// CallEvent records metadata about a single LLM invocation.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// SlogObserver logs LLM call events through a structured logger.
type SlogObserver struct {
	log *slog.Logger
}

// NewSlogObserver creates an Observer that logs events via logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{log: logger}
}

func (o *SlogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		slog.String("task", string(event.Task)),
		slog.String("model", event.Model),
		slog.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success {
		o.log.Info("llm.call", attrs...)
		return
	}
	attrs = append(attrs, slog.String("error_code", event.ErrorCode))
	o.log.Error("llm.call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
