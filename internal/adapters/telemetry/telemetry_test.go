package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"go.trai.ch/cssinjs/internal/adapters/telemetry"
	"go.trai.ch/cssinjs/internal/core/ports"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *trace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestOTelTracer_Start(t *testing.T) {
	sr, _ := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	ctx, root := tracer.Start(context.Background(), "build", ports.WithAttribute("stylefile", "cssinjs.yaml"))
	_, child := tracer.Start(ctx, "register", ports.WithAttribute("components", 3))
	child.SetAttribute("hashed", true)
	child.SetAttribute("paths", []string{"button"})
	child.SetAttribute("order", struct{ N int }{N: 1})
	n, err := child.Write([]byte("generated"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	child.RecordError(errors.New("malformed style"))
	child.RecordError(nil)
	child.End()
	root.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)

	reg := spans[0]
	assert.Equal(t, "register", reg.Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), reg.Parent().SpanID())
	assert.Contains(t, reg.Attributes(), attribute.Int("components", 3))
	assert.Contains(t, reg.Attributes(), attribute.Bool("hashed", true))
	assert.Contains(t, reg.Attributes(), attribute.StringSlice("paths", []string{"button"}))
	assert.Contains(t, reg.Attributes(), attribute.String("order", "{1}"))
	assert.Equal(t, codes.Error, reg.Status().Code)
	assert.Equal(t, "malformed style", reg.Status().Description)

	var names []string
	for _, ev := range reg.Events() {
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{"log", "exception"}, names)

	assert.Contains(t, spans[1].Attributes(), attribute.String("stylefile", "cssinjs.yaml"))
}

func TestOTelTracer_EmitComponents(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	tracer.EmitComponents(context.Background(), []string{"button"})
	assert.Empty(t, sr.Ended(), "no span in context")

	ctx, span := tp.Tracer("test").Start(context.Background(), "root")
	tracer.EmitComponents(ctx, []string{"reset", "button"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "components_planned", events[0].Name)
	assert.Equal(t, []attribute.KeyValue{attribute.StringSlice("components", []string{"reset", "button"})}, events[0].Attributes)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "noop")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	span.End()
}
