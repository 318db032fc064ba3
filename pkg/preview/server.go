package preview

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/layer"
	"github.com/vango-dev/editorui/pkg/middleware"
	"github.com/vango-dev/editorui/pkg/render"
	"github.com/vango-dev/editorui/pkg/toolbar"
)

// Config configures the preview server.
type Config struct {
	// Address is the listen address, e.g. "localhost:7070".
	Address string

	// Specs is the toolbar layout. Default: toolbar.DefaultSpecs().
	Specs []toolbar.Spec

	// HideScrollSync is the initial scroll-sync visibility.
	HideScrollSync bool

	// Language is written to the page's lang attribute.
	Language string

	// ShutdownTimeout bounds graceful shutdown. Default: 5s.
	ShutdownTimeout time.Duration

	// MaxMessageSize limits websocket messages. Default: 64KB.
	MaxMessageSize int64
}

func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = "localhost:7070"
	}
	if c.Specs == nil {
		c.Specs = toolbar.DefaultSpecs()
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = 64 * 1024
	}
}

// Option configures a Server.
type Option func(*Server)

// WithRegistry sets the toolbar registry.
func WithRegistry(r *toolbar.Registry) Option {
	return func(s *Server) { s.registry = r }
}

// WithLayers sets the layer factory.
func WithLayers(f *layer.Factory) Option {
	return func(s *Server) { s.layers = f }
}

// WithRecorder enables request metrics and the /metrics endpoint. The
// gatherer must be the registry the recorder was registered with.
func WithRecorder(rec *middleware.Recorder, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.recorder = rec
		s.gatherer = gatherer
	}
}

// WithTracing adds the OpenTelemetry middleware.
func WithTracing(opts ...middleware.OTelOption) Option {
	return func(s *Server) {
		s.tracing = middleware.Tracing(opts...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Server is the preview HTTP server.
type Server struct {
	config   Config
	registry *toolbar.Registry
	layers   *layer.Factory
	renderer *render.Renderer
	recorder *middleware.Recorder
	gatherer prometheus.Gatherer
	tracing  func(http.Handler) http.Handler
	upgrader websocket.Upgrader
	router   chi.Router
	logger   *slog.Logger

	mu         sync.Mutex
	httpServer *http.Server
	conns      map[*websocket.Conn]struct{}
}

// New creates a preview server. The registry and layer factory default
// to fresh instances.
func New(config Config, opts ...Option) *Server {
	config.applyDefaults()

	s := &Server{
		config:   config,
		renderer: render.NewRenderer(render.RendererConfig{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		logger: slog.Default().With("component", "preview"),
		conns:  make(map[*websocket.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		topts := []toolbar.Option{toolbar.WithLogger(s.logger)}
		if s.recorder != nil {
			topts = append(topts, toolbar.WithObserver(s.recorder))
		}
		s.registry = toolbar.NewRegistry(topts...)
	}
	if s.layers == nil {
		lopts := []layer.Option{layer.WithLogger(s.logger)}
		if s.recorder != nil {
			lopts = append(lopts, layer.WithObserver(s.recorder))
		}
		s.layers = layer.NewFactory(lopts...)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recover(s.logger))
	if s.recorder != nil {
		r.Use(s.recorder.Middleware)
	}
	if s.tracing != nil {
		r.Use(s.tracing)
	}
	r.Use(middleware.Logger(s.logger))

	r.Get("/", s.handlePage)
	r.Get("/api/toolbar", s.handleToolbar)
	r.Get("/api/layers/{kind}", s.handleLayer)
	r.Get("/ws", s.handleWebSocket)
	if s.recorder != nil && s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return errors.New("E141").WithDetail("listen on " + s.config.Address).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server starting", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.New("E141").Wrap(err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes live connections and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	srv := s.httpServer
	for conn := range s.conns {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
			time.Now().Add(time.Second))
		conn.Close()
	}
	s.conns = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// groups builds a fresh toolbar.
func (s *Server) groups(hideScrollSync bool) []toolbar.Group {
	return s.registry.Group(s.config.Specs, hideScrollSync)
}

// toolbarHTML renders groups to HTML.
func (s *Server) toolbarHTML(groups []toolbar.Group) (string, error) {
	return s.renderer.RenderToString(toolbar.Render(groups, toolbar.RenderOptions{}))
}
