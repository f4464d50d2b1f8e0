package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/vangoui/internal/catalog"
	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/live"
	"github.com/vango-dev/vangoui/pkg/middleware"
	"github.com/vango-dev/vangoui/pkg/render"
)

// DefaultViewport sizes the detached host used for the first paint,
// before the browser reports real geometry.
var DefaultViewport = dom.Size{Width: 1280, Height: 800}

// Config holds configuration for the preview server.
type Config struct {
	// Catalog supplies the previews. Required.
	Catalog *catalog.Catalog

	// Live configures sessions. Hooks already set are kept; metrics,
	// tracing and logging hooks are appended.
	Live live.Config

	// Addr is the listen address for Serve.
	Addr string

	// ShutdownTimeout bounds graceful shutdown. Default: 5 seconds.
	ShutdownTimeout time.Duration

	// Logger receives request and session logs. Default: slog.Default().
	Logger *slog.Logger

	// Metrics enables the collectors and /metrics when non-nil.
	Metrics *middleware.Metrics

	// Tracing adds OpenTelemetry spans for requests and live events using
	// the global tracer provider.
	Tracing bool
}

// Server serves the component catalog and its live sessions.
type Server struct {
	cfg    Config
	logger *slog.Logger
	live   *live.Server
	router chi.Router
}

// NewServer creates a preview server and mounts its routes.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	lc := cfg.Live
	lc.Logger = cfg.Logger
	lc.Middleware = append([]live.Middleware(nil), lc.Middleware...)
	if cfg.Tracing {
		lc.Middleware = append(lc.Middleware, middleware.OpenTelemetry())
	}
	if m := cfg.Metrics; m != nil {
		lc.Middleware = append(lc.Middleware, m.Middleware())
		lc.Observer = m
		lc.ToastObserver = m
	}
	lc.Middleware = append(lc.Middleware, middleware.LogEvents(cfg.Logger))

	s := &Server{
		cfg:    cfg,
		logger: cfg.Logger,
		live:   live.NewServer(cfg.Catalog.Mount, lc),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewMux()
	r.Use(chimw.RequestID, chimw.RealIP)
	if s.cfg.Tracing {
		r.Use(middleware.TraceHTTP())
	}
	if m := s.cfg.Metrics; m != nil {
		r.Use(m.HTTP)
	}
	r.Use(middleware.RequestLogger(s.logger), chimw.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(chimw.Compress(5))
		r.Get("/", s.handleIndex)
		r.Get("/c/{name}", s.handlePreview)
	})
	r.Get("/_live/{name}", s.handleLive)
	r.Handle(catalog.ClientPath, live.ClientHandler())
	r.Get("/healthz", s.handleHealth)
	if m := s.cfg.Metrics; m != nil {
		r.Handle("/metrics", m.Handler())
	}
	return r
}

// Handler returns the HTTP handler with all routes.
func (s *Server) Handler() http.Handler { return s.router }

// SessionCount returns the number of open live sessions.
func (s *Server) SessionCount() int { return s.live.SessionCount() }

// Serve listens on cfg.Addr and blocks until ctx is cancelled, then shuts
// down the HTTP server and closes all live sessions.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting preview server", "addr", "http://"+ln.Addr().String())

	eg, egctx := errgroup.WithContext(ctx)
	srv := &http.Server{
		Handler: s.router,
		BaseContext: func(net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down preview server", "sessions", s.live.SessionCount())
		err := srv.Shutdown(shutdownCtx)
		// Upgraded connections are hijacked; Shutdown does not wait for them.
		s.live.Close()
		return err
	})

	return eg.Wait()
}

// Close ends every live session.
func (s *Server) Close() { s.live.Close() }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	body := s.cfg.Catalog.Index(func(name string) string { return "/c/" + name })
	s.writePage(w, render.PageData{
		Title:   "vangoui components",
		Body:    body,
		Scripts: []render.ScriptTag{{Src: catalog.TailwindScript}},
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := s.cfg.Catalog.Get(name)
	if !ok {
		http.Error(w, errors.New("E010").WithDetail(name).FormatCompact(), http.StatusNotFound)
		return
	}

	root, _ := s.cfg.Catalog.Static(name, DefaultViewport)
	body := root.Render()
	if d, ok := root.(interface{ Dispose() }); ok {
		d.Dispose()
	}
	s.writePage(w, s.cfg.Catalog.Page(p, body, "/_live/"+name))
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	s.live.ServeComponent(w, r, chi.URLParam(r, "name"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.live.SessionCount(),
	})
}

// writePage renders into a buffer first so a render error can still
// produce a 500.
func (s *Server) writePage(w http.ResponseWriter, page render.PageData) {
	var buf bytes.Buffer
	r := render.NewRenderer(render.RendererConfig{OmitHIDs: true})
	if err := r.RenderPage(&buf, page); err != nil {
		s.logger.Error("page render failed", "title", page.Title, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
