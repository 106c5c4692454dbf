// Package otel wires OpenTelemetry tracing for the club commands.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceNamespace groups every club process in trace backends.
const ServiceNamespace = "gamesmiths"

// Config controls trace export. An empty Endpoint disables tracing.
type Config struct {
	Endpoint    string  `env:"GAMESMITHS_OTEL_ENDPOINT"`
	Enabled     string  `env:"GAMESMITHS_OTEL_ENABLED"`
	SampleRatio float64 `env:"GAMESMITHS_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("otel config: %w", err)
	}
	return cfg, nil
}

// Active reports whether spans should be exported.
func (c Config) Active() bool {
	if strings.EqualFold(strings.TrimSpace(c.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(c.Endpoint) != ""
}

// Sampler maps SampleRatio onto a parent-respecting sampler. Ratios at or
// above one sample everything; at or below zero nothing.
func (c Config) Sampler() sdktrace.Sampler {
	switch {
	case c.SampleRatio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case c.SampleRatio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
	}
}

// ServiceName is the resource name reported for a club command.
func ServiceName(service string) string {
	return ServiceNamespace + "-" + strings.TrimSpace(service)
}

// Setup reads Config from the environment and installs the global tracer
// provider for service. When tracing is inactive it registers nothing and the
// returned shutdown is a no-op.
func Setup(ctx context.Context, service string) (shutdown func(context.Context) error, err error) {
	cfg, err := LoadConfig()
	if err != nil {
		return noop, err
	}
	return SetupWithConfig(ctx, service, cfg)
}

// SetupWithConfig is Setup with an explicit Config.
func SetupWithConfig(ctx context.Context, service string, cfg Config) (func(context.Context) error, error) {
	if !cfg.Active() {
		return noop, nil
	}
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName(service)),
			semconv.ServiceNamespace(ServiceNamespace),
		),
		resource.WithProcessRuntimeVersion(),
	)
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(cfg.Sampler()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
