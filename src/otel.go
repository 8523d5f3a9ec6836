package src

import (
	"context"
	"os"

	"tvguide/src/tracing"
)

var otelShutdown func(context.Context) error

// InitOtel : Starts the OpenTelemetry pipeline from the loaded settings.
// Must run after loadSettings.
func InitOtel(ctx context.Context) (err error) {
	var exporter = tracing.ExporterType(Settings.OtelExporter)

	switch exporter {
	case tracing.ExporterTypeStdout, tracing.ExporterTypeOTLP, tracing.ExporterTypeOTLPHTTP, tracing.ExporterTypeNone:
	default:
		showWarning(1011)
		exporter = tracing.ExporterTypeNone
	}

	if len(Settings.OtelEndpoint) != 0 {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", Settings.OtelEndpoint)
	}

	var serviceName = Settings.OtelServiceName
	if len(serviceName) == 0 {
		serviceName = System.AppName
	}

	otelShutdown, err = tracing.SetupOTelSDK(ctx, serviceName, exporter)
	if err != nil {
		ShowError(err, 0)
		return
	}

	showInfo("Telemetry:" + string(exporter) + " exporter active")
	return
}

// ShutdownOtel : Flushes and stops the telemetry pipeline
func ShutdownOtel(ctx context.Context) error {
	if otelShutdown == nil {
		return nil
	}
	return otelShutdown(ctx)
}
