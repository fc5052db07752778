package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/tasker"

var (
	mux       sync.Mutex
	installed bool
)

// Init exports spans as JSON to outputFile, or to stdout when outputFile is empty.
// Only the first successful setup takes effect; later calls neither replace the
// provider nor touch outputFile.
func Init(serviceName, serviceVersion, outputFile string) error {
	mux.Lock()
	defer mux.Unlock()
	if installed {
		return nil
	}
	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create trace file %v: %w", outputFile, err)
		}
		w = f
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		if f, ok := w.(*os.File); ok && f != os.Stdout {
			_ = f.Close()
		}
		return err
	}
	install(serviceName, serviceVersion, exporter)
	return nil
}

// InitWithExporter sends spans to exporter, unless tracing was already set up.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return fmt.Errorf("tracing: exporter was nil")
	}
	mux.Lock()
	defer mux.Unlock()
	if !installed {
		install(serviceName, serviceVersion, exporter)
	}
	return nil
}

// Installed reports whether spans are being exported
func Installed() bool {
	mux.Lock()
	defer mux.Unlock()
	return installed
}

func install(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) {
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	)
	otel.SetTracerProvider(sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	))
	installed = true
}

// Span is a started span; methods on a nil Span do nothing.
type Span struct {
	span trace.Span
}

// Start opens an internal span named name
func Start(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// Set records a string attribute
func (s *Span) Set(key, value string) *Span {
	if s != nil {
		s.span.SetAttributes(attribute.String(key, value))
	}
	return s
}

// SetInt records an integer attribute
func (s *Span) SetInt(key string, value int) *Span {
	if s != nil {
		s.span.SetAttributes(attribute.Int(key, value))
	}
	return s
}

// End closes the span, marking it failed when err is not nil
func (s *Span) End(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
