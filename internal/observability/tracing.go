// Package observability provides structured logging and OpenTelemetry
// tracing for the graphtraversal command.
package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the instrumentation scope of every graphtraversal span.
	TracerName = "github.com/katalvlaran/graphtraversal"
)

// Span names.
const (
	SpanGenerate     = "graph.generate"
	SpanShortestPath = "graph.shortest_path"
	SpanMetrics      = "graph.metrics"
)

// TracingConfig configures the OpenTelemetry tracing.
type TracingConfig struct {
	// ServiceName is the name of the service (default: "graphtraversal")
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// OTLPEndpoint is the OTLP gRPC endpoint (e.g., "localhost:4317").
	// If empty, tracing is disabled.
	OTLPEndpoint string

	// SampleRate is the trace sampling rate (0.0 to 1.0, default: 1.0)
	SampleRate float64
}

// DefaultTracingConfig returns a default tracing configuration.
func DefaultTracingConfig() *TracingConfig {
	return &TracingConfig{
		ServiceName:    "graphtraversal",
		ServiceVersion: "0.1.0",
		SampleRate:     1.0,
	}
}

// TracerProvider wraps the OpenTelemetry tracer provider.
type TracerProvider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// InitTracing initializes OpenTelemetry tracing.
// Returns the global (no-op unless installed elsewhere) tracer if
// OTLPEndpoint is empty.
func InitTracing(ctx context.Context, cfg *TracingConfig) (*TracerProvider, error) {
	if cfg == nil {
		cfg = DefaultTracingConfig()
	}

	if cfg.OTLPEndpoint == "" {
		return &TracerProvider{
			tracer: otel.Tracer(TracerName),
		}, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(cfg.SampleRate)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &TracerProvider{
		provider: provider,
		tracer:   provider.Tracer(TracerName),
	}, nil
}

// Sampler maps a rate to AlwaysSample (>= 1), NeverSample (<= 0) or a
// trace-id ratio in between.
func Sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// Shutdown flushes and stops the exporter, if any.
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp.provider != nil {
		return tp.provider.Shutdown(ctx)
	}
	return nil
}

// Tracer returns the underlying tracer.
func (tp *TracerProvider) Tracer() trace.Tracer {
	return tp.tracer
}

// StartGenerateSpan starts a span around graph generation.
func StartGenerateSpan(ctx context.Context, nodes, edges int, seed int64) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, SpanGenerate,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.Int("graph.nodes", nodes),
			attribute.Int("graph.edges", edges),
			attribute.Int64("graph.seed", seed),
		),
	)
}

// StartShortestPathSpan starts a span around one source-target query.
func StartShortestPathSpan(ctx context.Context, from, to int) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, SpanShortestPath,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.Int("path.from", from),
			attribute.Int("path.to", to),
		),
	)
}

// RecordPath records the outcome of a shortest-path query.
func RecordPath(span trace.Span, hops int, distance int64, reachable bool) {
	span.SetAttributes(
		attribute.Bool("path.reachable", reachable),
		attribute.Int("path.hops", hops),
	)
	if reachable {
		span.SetAttributes(attribute.Int64("path.distance", distance))
	}
}

// StartMetricsSpan starts a span around radius/diameter computation.
func StartMetricsSpan(ctx context.Context, nodes int) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, SpanMetrics,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int("graph.nodes", nodes)),
	)
}

// RecordMetrics records radius and diameter on a span.
func RecordMetrics(span trace.Span, radius, diameter int64) {
	span.SetAttributes(
		attribute.Int64("graph.radius", radius),
		attribute.Int64("graph.diameter", diameter),
	)
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
