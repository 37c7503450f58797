// Package telemetry provides OpenTelemetry tracing for generation runs.
package telemetry

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-logr/stdr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "dungeongen"
	serviceVersion = "0.1.0"

	// EnvToggle turns exporting off when set to "off", "false" or "0".
	EnvToggle = "DUNGEONGEN_TELEMETRY"
)

// Enabled reports whether exporting is switched on in the environment.
func Enabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvToggle))) {
	case "off", "false", "0":
		return false
	}
	return true
}

// Setup initializes OpenTelemetry with the OTLP HTTP exporter, configured
// from the standard OTEL_* environment variables. The SDK's own diagnostics
// are routed to logger.
//
// Returns a shutdown function that should be called on exit.
func Setup(ctx context.Context, logger *log.Logger) (shutdown func(context.Context) error, err error) {
	if logger != nil {
		otel.SetLogger(stdr.New(logger.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel})))
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Built by hand rather than merged with resource.Default() to avoid
	// schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component. When telemetry is
// switched off the tracer records nothing, whatever provider is installed.
func Tracer(name string) trace.Tracer {
	if !Enabled() {
		return noop.NewTracerProvider().Tracer(serviceName + "/" + name)
	}
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
