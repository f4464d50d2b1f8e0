package live

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vango-dev/vangoui/pkg/toast"
)

// Config holds configuration for live sessions.
type Config struct {
	// ReadTimeout is the maximum time to wait for a message or pong from
	// the client.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// HeartbeatInterval is the time between pings. Must be shorter than
	// ReadTimeout.
	// Default: 30 seconds.
	HeartbeatInterval time.Duration

	// MaxMessageSize is the maximum size of an incoming WebSocket message.
	// Default: 64KB.
	MaxMessageSize int64

	// MaxEventQueue is the buffer size of the event and dispatch queues.
	// Default: 256.
	MaxEventQueue int

	// CheckOrigin validates the Origin header during upgrade. Nil accepts
	// same-origin requests only.
	CheckOrigin func(r *http.Request) bool

	// Logger receives session diagnostics. Default: slog.Default().
	Logger *slog.Logger

	// Middleware wraps every event, in order, outermost first.
	Middleware []Middleware

	// Observer is told about session lifecycle and pushes.
	Observer Observer

	// ToastObserver is attached to providers created through
	// Session.ToastOptions.
	ToastObserver toast.Observer
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    64 * 1024,
		MaxEventQueue:     256,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = d.HeartbeatInterval
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.MaxEventQueue <= 0 {
		c.MaxEventQueue = d.MaxEventQueue
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
