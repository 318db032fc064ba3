package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus recorder.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "editorui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus recorder.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "editorui",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Recorder holds the preview server metrics. It also observes toolbar
// composition and layer creation, so it can be passed to
// toolbar.WithObserver and layer.WithObserver.
type Recorder struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	groupsBuilt     prometheus.Counter
	unknownItems    prometheus.Counter
	layersCreated   *prometheus.CounterVec
	wsMessages      *prometheus.CounterVec
}

// NewRecorder creates and registers the metrics.
//
// Metrics collected:
//   - editorui_requests_total: requests by method, route and status
//   - editorui_request_duration_seconds: request duration by route
//   - editorui_toolbar_groups_built_total: groups produced by grouping passes
//   - editorui_toolbar_unknown_items_total: identifiers skipped as unknown
//   - editorui_layers_created_total: layer descriptors by kind
//   - editorui_websocket_messages_total: live toolbar messages by type
func NewRecorder(opts ...MetricsOption) *Recorder {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Recorder{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: config.ConstLabels,
		}, []string{"method", "route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		groupsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toolbar_groups_built_total",
			Help:        "Total number of toolbar groups produced",
			ConstLabels: config.ConstLabels,
		}),

		unknownItems: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toolbar_unknown_items_total",
			Help:        "Total number of unknown toolbar identifiers skipped",
			ConstLabels: config.ConstLabels,
		}),

		layersCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "layers_created_total",
			Help:        "Total number of layer descriptors created",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		wsMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_messages_total",
			Help:        "Total live toolbar messages by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// GroupsBuilt implements toolbar.Observer.
func (r *Recorder) GroupsBuilt(n int) {
	r.groupsBuilt.Add(float64(n))
}

// UnknownItem implements toolbar.Observer. The name is not used as a
// label to keep cardinality bounded.
func (r *Recorder) UnknownItem(string) {
	r.unknownItems.Inc()
}

// LayerCreated implements layer.Observer.
func (r *Recorder) LayerCreated(kind string) {
	r.layersCreated.WithLabelValues(kind).Inc()
}

// WebSocketMessage counts a live toolbar message.
func (r *Recorder) WebSocketMessage(typ string) {
	r.wsMessages.WithLabelValues(typ).Inc()
}

// Middleware records request count and duration. The route label is the
// chi route pattern, so path parameters do not create new series.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		sw := wrapResponseWriter(w)

		next.ServeHTTP(sw, req)

		route := routePattern(req)
		r.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		r.requestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(sw.Status())).Inc()
	})
}
