package live

import (
	"context"
	"time"
)

// EventInfo describes one unit of work run on a session loop.
type EventInfo struct {
	SessionID string
	Component string

	// Kind is the message type: "event", "doc", "win", "measure",
	// "dispatch" for functions queued with Session.Dispatch, or "mount"
	// for building the root.
	Kind string

	// Type is the browser event type (click, pointermove, ...). Empty for
	// dispatch and measure.
	Type string

	// HID is the hydration ID of the target element for "event".
	HID string
}

// Name returns a short label such as "event.click" or "dispatch".
func (e EventInfo) Name() string {
	if e.Type == "" {
		return e.Kind
	}
	return e.Kind + "." + e.Type
}

// Middleware wraps the processing of an event. It must call next exactly
// once unless it decides to drop the event.
type Middleware func(ctx context.Context, ev EventInfo, next func(context.Context) error) error

// Observer is notified of session lifecycle and HTML pushes. Methods are
// called from session goroutines and must be safe for concurrent use.
type Observer interface {
	SessionOpened(component string)
	SessionClosed(component string, lifetime time.Duration)
	HTMLPushed(component string, bytes int)
}

// chain composes middleware around final, outermost first.
func chain(mws []Middleware, ev EventInfo, final func(context.Context) error) func(context.Context) error {
	next := final
	for i := len(mws) - 1; i >= 0; i-- {
		mw, inner := mws[i], next
		next = func(ctx context.Context) error {
			return mw(ctx, ev, inner)
		}
	}
	return next
}
