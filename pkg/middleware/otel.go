package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vangoui/pkg/live"
)

// Default tracer name for vangoui servers.
const defaultTracerName = "vangoui"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "vangoui").
	TracerName string

	// TracerProvider overrides the global provider.
	TracerProvider trace.TracerProvider

	// Filter determines which live events to trace. Return true to
	// trace the event. If nil, all events are traced.
	Filter func(ev live.EventInfo) bool

	// AttributeExtractor adds custom attributes to each event span.
	AttributeExtractor func(ev live.EventInfo) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider used instead of the global
// one.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithEventFilter sets a filter function for live events.
func WithEventFilter(filter func(ev live.EventInfo) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ev live.EventInfo) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{TracerName: defaultTracerName}
}

func (c OTelConfig) tracer() trace.Tracer {
	if c.TracerProvider != nil {
		return c.TracerProvider.Tracer(c.TracerName)
	}
	return otel.Tracer(c.TracerName)
}

// OpenTelemetry returns a live.Middleware that traces every session
// event. Spans are named "vangoui.<kind>[.<type>]" and carry the session
// ID, component, and target HID. The span context is passed to the next
// middleware.
//
//	cfg := live.DefaultConfig()
//	cfg.Middleware = append(cfg.Middleware, middleware.OpenTelemetry())
//
// Without a configured provider the global no-op tracer is used.
func OpenTelemetry(opts ...OTelOption) live.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	tracer := config.tracer()

	return func(ctx context.Context, ev live.EventInfo, next func(context.Context) error) error {
		if config.Filter != nil && !config.Filter(ev) {
			return next(ctx)
		}

		attrs := []attribute.KeyValue{
			attribute.String("vangoui.session_id", ev.SessionID),
			attribute.String("vangoui.component", ev.Component),
			attribute.String("vangoui.event_kind", ev.Kind),
		}
		if ev.Type != "" {
			attrs = append(attrs, attribute.String("vangoui.event_type", ev.Type))
		}
		if ev.HID != "" {
			attrs = append(attrs, attribute.String("vangoui.event_target", ev.HID))
		}
		if config.AttributeExtractor != nil {
			attrs = append(attrs, config.AttributeExtractor(ev)...)
		}

		spanCtx, span := tracer.Start(ctx, "vangoui."+ev.Name(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		err := next(spanCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("vangoui.error_code", errorCode(err)))
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return err
	}
}

// TraceHTTP returns HTTP middleware that opens a server span per request.
// The span is renamed to the chi route pattern once routing finished.
func TraceHTTP(opts ...OTelOption) func(http.Handler) http.Handler {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	tracer := config.tracer()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			route := routePattern(r)
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.status_code", ww.Status()),
			)
			if ww.Status() >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(ww.Status()))
			}
		})
	}
}
