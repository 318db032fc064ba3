package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordingProvider hands out tracers that remember started spans.
type recordingProvider struct {
	noop.TracerProvider

	mu     sync.Mutex
	tracer string
	spans  []startedSpan
}

type startedSpan struct {
	name  string
	kind  trace.SpanKind
	attrs []attribute.KeyValue
}

func (p *recordingProvider) Tracer(name string, _ ...trace.TracerOption) trace.Tracer {
	p.mu.Lock()
	p.tracer = name
	p.mu.Unlock()
	return &recordingTracer{p: p}
}

type recordingTracer struct {
	noop.Tracer
	p *recordingProvider
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	t.p.mu.Lock()
	t.p.spans = append(t.p.spans, startedSpan{name: name, kind: cfg.SpanKind(), attrs: cfg.Attributes()})
	t.p.mu.Unlock()
	return t.Tracer.Start(ctx, name, opts...)
}

func TestTracingStartsServerSpan(t *testing.T) {
	tp := &recordingProvider{}
	r := chi.NewRouter()
	r.Use(Tracing(
		WithTracerProvider(tp),
		WithTracerName("preview"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))
	var spanSeen bool
	r.Get("/api/toolbar", func(w http.ResponseWriter, r *http.Request) {
		spanSeen = trace.SpanFromContext(r.Context()) != nil
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/toolbar", nil))

	if tp.tracer != "preview" {
		t.Errorf("tracer name = %q", tp.tracer)
	}
	if len(tp.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(tp.spans))
	}
	span := tp.spans[0]
	if span.name != "GET /api/toolbar" || span.kind != trace.SpanKindServer {
		t.Errorf("span = %+v", span)
	}
	hasAttr := false
	for _, a := range span.attrs {
		if a.Key == "test.attr" && a.Value.AsString() == "ok" {
			hasAttr = true
		}
	}
	if !hasAttr {
		t.Errorf("custom attribute missing: %v", span.attrs)
	}
	if !spanSeen {
		t.Error("handler should see a span in its context")
	}
}

func TestTracingFilter(t *testing.T) {
	tp := &recordingProvider{}
	h := Tracing(
		WithTracerProvider(tp),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/metrics" }),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(tp.spans) != 1 || tp.spans[0].name != "GET /" {
		t.Errorf("spans = %+v", tp.spans)
	}
}
