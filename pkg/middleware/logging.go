package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/vangoui/pkg/live"
)

// RequestLogger logs one line per HTTP request at info level, or warn
// for 5xx responses. The chi request ID is included when present.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"route", routePattern(r),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			}
			if id := chimw.GetReqID(r.Context()); id != "" {
				attrs = append(attrs, "request_id", id)
			}
			logger.Log(r.Context(), level, "http request", attrs...)
		})
	}
}

// LogEvents returns a live.Middleware that logs every session event at
// debug level and failures at warn.
func LogEvents(logger *slog.Logger) live.Middleware {
	return func(ctx context.Context, ev live.EventInfo, next func(context.Context) error) error {
		start := time.Now()
		err := next(ctx)
		attrs := []any{
			"session_id", ev.SessionID,
			"component", ev.Component,
			"event", ev.Name(),
			"duration", time.Since(start),
		}
		if ev.HID != "" {
			attrs = append(attrs, "hid", ev.HID)
		}
		if err != nil {
			logger.Warn("live event failed", append(attrs, "code", errorCode(err), "error", err)...)
			return err
		}
		logger.Debug("live event", attrs...)
		return nil
	}
}
