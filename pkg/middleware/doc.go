// Package middleware provides observability for vangoui servers.
//
// It covers both HTTP handlers and live sessions:
//   - Prometheus collectors for events, sessions, HTML pushes and toasts
//   - OpenTelemetry tracing of live events and HTTP requests
//   - structured request and event logging with log/slog
//
// # Prometheus Metrics
//
// A Metrics value is wired into every hook at once:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//
//	cfg := live.DefaultConfig()
//	cfg.Middleware = append(cfg.Middleware, m.Middleware())
//	cfg.Observer = m
//	cfg.ToastObserver = m
//
//	r := chi.NewRouter()
//	r.Use(m.HTTP)
//	r.Handle("/metrics", m.Handler())
//
// # OpenTelemetry
//
// Event spans are named after the live event ("vangoui.event.click",
// "vangoui.dispatch") and carry the session ID, component, and target
// HID. The global tracer provider is used unless one is passed:
//
//	cfg.Middleware = append(cfg.Middleware, middleware.OpenTelemetry(
//	    middleware.WithEventFilter(func(ev live.EventInfo) bool {
//	        return ev.Kind != "measure"
//	    }),
//	))
//	r.Use(middleware.TraceHTTP())
//
// # Logging
//
//	r.Use(middleware.RequestLogger(logger))
//	cfg.Middleware = append(cfg.Middleware, middleware.LogEvents(logger))
package middleware
