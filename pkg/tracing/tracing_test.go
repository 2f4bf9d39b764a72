package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	tp := NewProvider(nil, Sampler(1))
	tp.RegisterSpanProcessor(rec)
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return rec
}

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpan_ChildInheritsTraceID(t *testing.T) {
	rec := withRecorder(t)

	ctx, root := StartSpan(context.Background(), "test", "Root")
	childCtx, child := StartSpan(ctx, "test", "Child")

	assert.Equal(t, ExtractTraceID(ctx), ExtractTraceID(childCtx))
	assert.NotEqual(t, ExtractSpanID(ctx), ExtractSpanID(childCtx))

	child.End()
	root.End()

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "Child", ended[0].Name())
	assert.Equal(t, "Root", ended[1].Name())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestExtractIDs_NoSpan(t *testing.T) {
	assert.Empty(t, ExtractTraceID(context.Background()))
	assert.Empty(t, ExtractSpanID(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", Sampler(0).Description())
	assert.Equal(t, "AlwaysOnSampler", Sampler(1).Description())
	assert.Contains(t, Sampler(0.5).Description(), "TraceIDRatioBased")
}
