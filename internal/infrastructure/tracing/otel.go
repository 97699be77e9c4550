package tracing

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mm01rahman/LandlordBD/internal/config"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
)

// Init installs the global tracer provider and propagators. When tracing is
// disabled it returns a no-op shutdown and leaves the global provider alone.
func Init(ctx context.Context, log *logger.Logger, flags config.TracingFlags, version string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !flags.Enabled {
		return noop, nil
	}
	log = logger.OrNop(log)

	serviceName := strings.TrimSpace(flags.ServiceName)
	if serviceName == "" {
		serviceName = "landlord-billing"
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	))
	if err != nil {
		log.Warn("otel resource init failed (continuing)", "error", err)
	}

	exporter, err := buildExporter(ctx, flags)
	if err != nil {
		return noop, err
	}
	if flags.Endpoint == "" {
		log.Warn("otel using stdout exporter (no OTLP endpoint configured)")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(flags.SampleRatio))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	log.Info("otel tracing initialized", "service", serviceName, "endpoint", flags.Endpoint)
	return tp.Shutdown, nil
}

func buildExporter(ctx context.Context, flags config.TracingFlags) (sdktrace.SpanExporter, error) {
	if flags.Endpoint == "" {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(flags.Endpoint)}
	if flags.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}
