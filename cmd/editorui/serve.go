package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/editorui/pkg/layer"
	"github.com/vango-dev/editorui/pkg/middleware"
	"github.com/vango-dev/editorui/pkg/preview"
	"github.com/vango-dev/editorui/pkg/toolbar"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live toolbar preview",
		Long: `Start an HTTP server that renders the toolbar and keeps it live
over a WebSocket.

Examples:
  editorui serve
  editorui serve --port=8080
  editorui serve --config editor/editorui.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, flags, host, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, flags *globalFlags, host string, port int) error {
	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}

	specs, err := cfg.ToolbarSpecs()
	if err != nil {
		return err
	}
	tr, err := cfg.Translator()
	if err != nil {
		return err
	}

	var opts []preview.Option
	topts := []toolbar.Option{toolbar.WithTranslator(tr)}
	lopts := []layer.Option{layer.WithTranslator(tr)}
	if !cfg.Metrics.Disabled {
		reg := prometheus.NewRegistry()
		rec := middleware.NewRecorder(
			middleware.WithRegistry(reg),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		)
		opts = append(opts, preview.WithRecorder(rec, reg))
		topts = append(topts, toolbar.WithObserver(rec))
		lopts = append(lopts, layer.WithObserver(rec))
	}
	opts = append(opts,
		preview.WithRegistry(toolbar.NewRegistry(topts...)),
		preview.WithLayers(layer.NewFactory(lopts...)),
		preview.WithTracing(),
	)

	srv := preview.New(preview.Config{
		Address:         cfg.PreviewAddress(),
		Specs:           specs,
		HideScrollSync:  cfg.HideScrollSync,
		Language:        cfg.Language,
		ShutdownTimeout: cfg.ShutdownTimeout(),
	}, opts...)

	success(cmd, "Preview at %s", cfg.PreviewURL())
	return srv.Run(ctx)
}
