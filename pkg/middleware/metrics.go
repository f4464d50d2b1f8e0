package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/live"
	"github.com/vango-dev/vangoui/pkg/toast"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vangoui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event and request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
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

// WithBuckets sets the duration histogram buckets.
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
		Namespace: "vangoui",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for a vangoui server. It plugs
// into live.Config as both Middleware and Observer, into toast providers
// as a toast.Observer, and wraps HTTP handlers.
//
// Metrics collected (default namespace):
//   - vangoui_events_total: events by component, event and status
//   - vangoui_event_duration_seconds: event processing duration
//   - vangoui_event_errors_total: failed events by component and error code
//   - vangoui_sessions_active: open live sessions by component
//   - vangoui_session_duration_seconds: session lifetime
//   - vangoui_html_pushes_total: HTML frames pushed to browsers
//   - vangoui_html_push_bytes: size of pushed HTML frames
//   - vangoui_toasts_added_total: toasts shown
//   - vangoui_toasts_removed_total: toasts removed by reason
//   - vangoui_http_requests_total: HTTP requests by route and status
//   - vangoui_http_request_duration_seconds: HTTP request duration by route
type Metrics struct {
	registry prometheus.Registerer

	eventsTotal     *prometheus.CounterVec
	eventDuration   *prometheus.HistogramVec
	eventErrors     *prometheus.CounterVec
	activeSessions  *prometheus.GaugeVec
	sessionDuration *prometheus.HistogramVec
	htmlPushes      *prometheus.CounterVec
	htmlBytes       *prometheus.HistogramVec
	toastsAdded     prometheus.Counter
	toastsRemoved   *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

var (
	_ live.Observer  = (*Metrics)(nil)
	_ toast.Observer = (*Metrics)(nil)
)

// NewMetrics registers the collectors. Registering twice on the same
// registry panics, as with any promauto factory.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}, labels)
	}
	histogram := func(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
		return factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
			Buckets:     buckets,
		}, labels)
	}

	return &Metrics{
		registry: config.Registry,

		eventsTotal:   counter("events_total", "Total number of live events processed", "component", "event", "status"),
		eventDuration: histogram("event_duration_seconds", "Live event processing duration in seconds", config.Buckets, "component", "event"),
		eventErrors:   counter("event_errors_total", "Total number of failed live events", "component", "code"),

		activeSessions: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sessions_active",
			Help:        "Number of open live sessions",
			ConstLabels: config.ConstLabels,
		}, []string{"component"}),
		sessionDuration: histogram("session_duration_seconds", "Live session lifetime in seconds",
			[]float64{1, 10, 60, 300, 1800, 3600}, "component"),

		htmlPushes: counter("html_pushes_total", "Total number of HTML frames pushed to browsers", "component"),
		htmlBytes: histogram("html_push_bytes", "Size of pushed HTML frames in bytes",
			prometheus.ExponentialBuckets(256, 4, 7), "component"), // 256B to 1MB

		toastsAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_added_total",
			Help:        "Total number of toasts shown",
			ConstLabels: config.ConstLabels,
		}),
		toastsRemoved: counter("toasts_removed_total", "Total number of toasts removed", "reason"),

		httpRequests: counter("http_requests_total", "Total number of HTTP requests", "route", "status"),
		httpDuration: histogram("http_request_duration_seconds", "HTTP request duration in seconds", config.Buckets, "route"),
	}
}

// Middleware returns a live.Middleware recording event counts, durations
// and error codes. Mount and dispatch work is counted like browser events.
func (m *Metrics) Middleware() live.Middleware {
	return func(ctx context.Context, ev live.EventInfo, next func(context.Context) error) error {
		start := time.Now()
		err := next(ctx)
		name := ev.Name()
		m.eventDuration.WithLabelValues(ev.Component, name).Observe(time.Since(start).Seconds())

		status := "success"
		if err != nil {
			status = "error"
			m.eventErrors.WithLabelValues(ev.Component, errorCode(err)).Inc()
		}
		m.eventsTotal.WithLabelValues(ev.Component, name, status).Inc()
		return err
	}
}

// errorCode keeps the label bounded to registry codes.
func errorCode(err error) string {
	if code := errors.Code(err); code != "" {
		return code
	}
	return "unknown"
}

// SessionOpened implements live.Observer.
func (m *Metrics) SessionOpened(component string) {
	m.activeSessions.WithLabelValues(component).Inc()
}

// SessionClosed implements live.Observer.
func (m *Metrics) SessionClosed(component string, lifetime time.Duration) {
	m.activeSessions.WithLabelValues(component).Dec()
	m.sessionDuration.WithLabelValues(component).Observe(lifetime.Seconds())
}

// HTMLPushed implements live.Observer.
func (m *Metrics) HTMLPushed(component string, bytes int) {
	m.htmlPushes.WithLabelValues(component).Inc()
	m.htmlBytes.WithLabelValues(component).Observe(float64(bytes))
}

// ToastAdded implements toast.Observer.
func (m *Metrics) ToastAdded(toast.Toast) {
	m.toastsAdded.Inc()
}

// ToastRemoved implements toast.Observer.
func (m *Metrics) ToastRemoved(_ toast.Toast, reason toast.Reason) {
	m.toastsRemoved.WithLabelValues(string(reason)).Inc()
}

// HTTP wraps next, recording requests by chi route pattern so path
// parameters don't explode label cardinality. Unrouted requests are
// labelled "unmatched".
func (m *Metrics) HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if g, ok := m.registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
