package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/catalog"
	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/internal/preview"
	"github.com/vango-dev/vangoui/pkg/middleware"
)

func serveCmd(configPath *string) *cobra.Command {
	var (
		addr    string
		port    int
		host    string
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the component preview server",
		Long: `Start the preview server.

Every component has a live page at /c/<name>. Metrics are served at
/metrics unless disabled in vangoui.json.

Examples:
  vangoui serve
  vangoui serve --port=8080
  vangoui serve --addr=:8080
  vangoui serve --host=0.0.0.0 --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				h, p, err := net.SplitHostPort(addr)
				if err != nil {
					return errors.New("E122").WithDetailf("--addr = %q", addr).Wrap(err)
				}
				n, err := strconv.Atoi(p)
				if err != nil {
					return errors.New("E122").WithDetailf("--addr = %q", addr).Wrap(err)
				}
				cfg.Server.Host, cfg.Server.Port = h, n
			}
			if addr == "" && port > 0 {
				cfg.Server.Port = port
			}
			if addr == "" && host != "" {
				cfg.Server.Host = host
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, tracing)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address as host:port (overrides --host and --port)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from vangoui.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vangoui.json)")
	cmd.Flags().BoolVar(&tracing, "trace", false, "Record OpenTelemetry spans with the global provider")

	return cmd
}

// newPreviewServer assembles the preview server from the configuration.
func newPreviewServer(cfg *config.Config, tracing bool) (*preview.Server, error) {
	liveCfg, err := cfg.LiveConfig()
	if err != nil {
		return nil, err
	}
	shutdown, err := cfg.ShutdownTimeout()
	if err != nil {
		return nil, err
	}

	var metrics *middleware.Metrics
	if !cfg.Metrics.Disabled {
		metrics = middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithConstLabels(map[string]string{"version": version}),
		)
	}

	return preview.NewServer(preview.Config{
		Catalog:         catalog.New(catalog.WithToastOptions(cfg.ToastOptions()...)),
		Live:            liveCfg,
		Addr:            cfg.Address(),
		ShutdownTimeout: shutdown,
		Logger:          cfg.Logger(os.Stderr),
		Metrics:         metrics,
		Tracing:         tracing,
	}), nil
}

func runServe(ctx context.Context, cfg *config.Config, tracing bool) error {
	srv, err := newPreviewServer(cfg, tracing)
	if err != nil {
		return err
	}

	success("Serving components at http://%s", cfg.Address())
	if !cfg.Metrics.Disabled {
		info("Metrics at http://%s/metrics", cfg.Address())
	}
	if err := srv.Serve(ctx); err != nil {
		return err
	}
	info("Shut down")
	return nil
}
