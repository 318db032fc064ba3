// Package middleware provides net/http middleware for the preview server.
//
// This package includes:
//   - Prometheus metrics, through a Recorder that also observes toolbar
//     grouping and layer creation
//   - OpenTelemetry tracing
//   - Request logging and panic recovery with log/slog
//
// # Prometheus Metrics
//
//	rec := middleware.NewRecorder(middleware.WithNamespace("docs"))
//	reg := toolbar.NewRegistry(toolbar.WithObserver(rec))
//	layers := layer.NewFactory(layer.WithObserver(rec))
//
//	r := chi.NewRouter()
//	r.Use(rec.Middleware)
//	r.Handle("/metrics", promhttp.Handler())
//
// Requests are labelled by chi route pattern, not raw path.
//
// # OpenTelemetry Middleware
//
//	r.Use(middleware.Tracing(
//	    middleware.WithTracerName("editorui-preview"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/metrics"
//	    }),
//	))
//
// Without WithTracerProvider the global provider is used, which is a
// no-op until otel.SetTracerProvider is called.
package middleware
