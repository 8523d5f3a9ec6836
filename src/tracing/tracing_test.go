package tracing

import (
	"context"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	coltracepb "go.opentelemetry.io/proto/otlp/collector/trace/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type mockTraceServer struct {
	coltracepb.UnimplementedTraceServiceServer
	headers metadata.MD
}

func (s *mockTraceServer) Export(ctx context.Context, req *coltracepb.ExportTraceServiceRequest) (*coltracepb.ExportTraceServiceResponse, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		s.headers = md
	}
	return &coltracepb.ExportTraceServiceResponse{}, nil
}

func TestExporterSelection(t *testing.T) {
	t.Run("otlp", func(t *testing.T) {
		exporter, err := newSpanExporter(context.Background(), ExporterTypeOTLP)
		assert.NoError(t, err)
		assert.NotNil(t, exporter)
		assert.IsType(t, &otlptrace.Exporter{}, exporter)
	})

	t.Run("otlp-http", func(t *testing.T) {
		exporter, err := newSpanExporter(context.Background(), ExporterTypeOTLPHTTP)
		assert.NoError(t, err)
		assert.NotNil(t, exporter)
		assert.IsType(t, &otlptrace.Exporter{}, exporter)
	})

	t.Run("stdout", func(t *testing.T) {
		exporter, err := newSpanExporter(context.Background(), ExporterTypeStdout)
		assert.NoError(t, err)
		assert.NotNil(t, exporter)
		assert.IsType(t, &stdouttrace.Exporter{}, exporter)
	})

	t.Run("none", func(t *testing.T) {
		exporter, err := newSpanExporter(context.Background(), ExporterTypeNone)
		assert.NoError(t, err)
		assert.Nil(t, exporter)
	})
}

func TestSetupOTelSDKNone(t *testing.T) {
	ctx := context.Background()

	shutdown, err := SetupOTelSDK(ctx, "tvguide-test", ExporterTypeNone)
	assert.NoError(t, err)
	if assert.NotNil(t, shutdown) {
		assert.NoError(t, shutdown(ctx))
	}
}

func TestOTLPHeadersParsing(t *testing.T) {
	// Start a mock gRPC collector
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	s := grpc.NewServer()
	mockServer := &mockTraceServer{}
	coltracepb.RegisterTraceServiceServer(s, mockServer)
	go func() {
		if err := s.Serve(lis); err != nil {
			t.Logf("Server exited: %v", err)
		}
	}()
	defer s.Stop()

	// Note: Endpoint needs a scheme (http://) to be parsed correctly by the SDK,
	// even for gRPC, or it triggers "first path segment in URL cannot contain colon".
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://"+lis.Addr().String())
	os.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "key1=value1,key2=value2")
	defer func() {
		os.Unsetenv("OTEL_EXPORTER_OTLP_ENDPOINT")
		os.Unsetenv("OTEL_EXPORTER_OTLP_INSECURE")
		os.Unsetenv("OTEL_EXPORTER_OTLP_HEADERS")
	}()

	ctx := context.Background()
	exporter, err := newSpanExporter(ctx, ExporterTypeOTLP)
	assert.NoError(t, err)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)

	tracer := tp.Tracer("test-tracer")
	_, span := tracer.Start(ctx, "test-span")
	span.End()

	err = tp.ForceFlush(ctx)
	assert.NoError(t, err)

	// gRPC metadata keys are lowercased
	if assert.Contains(t, mockServer.headers, "key1") {
		assert.Equal(t, "value1", mockServer.headers["key1"][0])
	}
	if assert.Contains(t, mockServer.headers, "key2") {
		assert.Equal(t, "value2", mockServer.headers["key2"][0])
	}

	err = tp.Shutdown(ctx)
	assert.NoError(t, err)
}
