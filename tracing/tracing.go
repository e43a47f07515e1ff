// Package tracing wires OpenTelemetry around the NCBI tool calls.
// Disabled by default; enabling it exports spans to stdout or, when an
// OTLP endpoint is configured, over OTLP/HTTP.
package tracing

import (
	"context"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	TracerName = "ncbi-mcp-server"
)

// Config holds tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	OTLPEndpoint   string // If set, uses OTLP exporter; otherwise stdout
	SampleRate     float64
}

// DefaultConfig builds the configuration from OTEL_* environment
// variables. Setting OTEL_EXPORTER_OTLP_ENDPOINT implies enablement so
// pointing at a collector is a one-variable change.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "ncbi-mcp-server",
		ServiceVersion: "1.0.0",
		Environment:    getEnvOrDefault("OTEL_ENVIRONMENT", "development"),
		Enabled:        os.Getenv("OTEL_ENABLED") == "true" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SampleRate:     parseSampleRate(os.Getenv("OTEL_SAMPLE_RATE")),
	}
}

// Setup installs the global tracer provider and returns its shutdown
// function. When tracing is disabled both are no-ops.
func Setup(ctx context.Context, config Config) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	exporter, err := newExporter(ctx, config)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(config.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// newExporter picks the span exporter: OTLP/HTTP when an endpoint is
// configured, pretty-printed stdout otherwise.
func newExporter(ctx context.Context, config Config) (sdktrace.SpanExporter, error) {
	if config.OTLPEndpoint != "" {
		return otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(config.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	}
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

// sampler maps a rate to an SDK sampler, clamping to always at >= 1
// and never at <= 0.
func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// parseSampleRate reads a sample rate string, defaulting to 1.0 when
// unset or malformed.
func parseSampleRate(s string) float64 {
	if s == "" {
		return 1.0
	}
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1.0
	}
	return rate
}

// Tracer returns the named tracer for the server
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartSpan starts a new span with the given name and returns the context and span
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}

// AddToolAttributes tags a span with the tool's registry metadata.
func AddToolAttributes(span trace.Span, toolName, category, service string, readonly bool) {
	span.SetAttributes(
		attribute.String("mcp.tool.name", toolName),
		attribute.String("mcp.tool.category", category),
		attribute.String("mcp.tool.service", service),
		attribute.Bool("mcp.tool.readonly", readonly),
	)
}

// AddEutilsAttributes tags a span with the E-utilities endpoint and,
// when known, the database queried.
func AddEutilsAttributes(span trace.Span, endpoint, database string) {
	span.SetAttributes(
		attribute.String("ncbi.eutils.endpoint", endpoint),
	)
	if database != "" {
		span.SetAttributes(attribute.String("ncbi.database", database))
	}
}

// AddBlastAttributes tags a span with the BLAST search parameters and,
// once assigned, the request ID.
func AddBlastAttributes(span trace.Span, program, database, rid string) {
	span.SetAttributes(
		attribute.String("ncbi.blast.program", program),
		attribute.String("ncbi.blast.database", database),
	)
	if rid != "" {
		span.SetAttributes(attribute.String("ncbi.blast.rid", rid))
	}
}

// RecordError records a non-nil error on the span.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
