package telemetry

import (
	"context"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

// NoopTracer is a ports.Tracer that records nothing.
type NoopTracer struct{}

// NewNoop creates a tracer that does nothing.
func NewNoop() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context untouched and a span that ignores everything.
func (NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// Shutdown does nothing.
func (NoopTracer) Shutdown(context.Context) error {
	return nil
}

type noopSpan struct{}

func (noopSpan) End() {}

func (noopSpan) RecordError(error) {}

func (noopSpan) SetAttribute(string, any) {}
