package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/live"
)

func bufferLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestRequestLogger(t *testing.T) {
	logger, buf := bufferLogger(slog.LevelInfo)

	r := chi.NewRouter()
	r.Use(chimw.RequestID, RequestLogger(logger))
	r.Get("/c/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/c/tabs", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"level=INFO", "route=/c/{name}", "path=/c/tabs", "status=200", "bytes=5", "request_id="} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first line missing %q: %s", want, lines[0])
		}
	}
	if !strings.Contains(lines[1], "level=WARN") || !strings.Contains(lines[1], "status=502") {
		t.Errorf("5xx should log at warn: %s", lines[1])
	}
}

func TestLogEvents(t *testing.T) {
	logger, buf := bufferLogger(slog.LevelDebug)
	mw := LogEvents(logger)

	mw(context.Background(), live.EventInfo{SessionID: "s1", Component: "slider", Kind: "event", Type: "pointerdown", HID: "h2"},
		func(context.Context) error { return nil })
	mw(context.Background(), live.EventInfo{SessionID: "s1", Component: "slider", Kind: "event", Type: "click", HID: "h9"},
		func(context.Context) error { return errors.New("E009") })

	out := buf.String()
	for _, want := range []string{
		`level=DEBUG msg="live event"`, "event=event.pointerdown", "hid=h2",
		`level=WARN msg="live event failed"`, "code=E009",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
