// Package trace sets up OpenTelemetry tracing for TraceTutor.
//
// Export is opt-in: spans only leave the process when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Otherwise a no-op tracer is handed out
// so instrumented code never has to check.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer used by the tutor session.
const InstrumentationName = "tracetutor/tutor"

// Config selects the OTLP endpoint. Zero value disables export.
type Config struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// ConfigFromEnv reads the standard OTEL_* variables.
func ConfigFromEnv() Config {
	return Config{
		Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName: os.Getenv("OTEL_SERVICE_NAME"),
		Insecure:    os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") != "false",
	}
}

// Provider owns the tracer provider for the lifetime of the program.
type Provider struct {
	provider *sdktrace.TracerProvider // nil when export is disabled
	tracer   oteltrace.Tracer
}

// NewProvider creates an OTLP/HTTP exporting provider if cfg.Endpoint is set,
// and a no-op provider otherwise.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.Endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "tracetutor"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: tp,
		tracer:   tp.Tracer(InstrumentationName),
	}, nil
}

// NewProviderFrom wraps an existing SDK provider, e.g. one backed by a span
// recorder in tests.
func NewProviderFrom(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{provider: tp, tracer: tp.Tracer(InstrumentationName)}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the tutor tracer. Safe on a nil Provider.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil || p.tracer == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
