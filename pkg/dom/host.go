package dom

import (
	"strconv"
	"sync"
)

// Host mirrors the browser environment of one live session: the viewport,
// the last measured rect of every element carrying a data-measure id, and
// the document and window listeners registered by components.
//
// Listeners run synchronously on the goroutine that calls Dispatch,
// outside the host lock, in registration order.
type Host struct {
	mu        sync.Mutex
	viewport  Size
	rects     map[string]Rect
	listeners []*listenerEntry
	nextSub   uint64
	nextID    uint64
	locks     int
	onLock    func(locked bool)
}

type listenerEntry struct {
	id     uint64
	target Target
	kind   EventKind
	fn     Listener
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithViewport sets the initial viewport size.
func WithViewport(size Size) HostOption {
	return func(h *Host) {
		h.viewport = size
	}
}

// WithScrollLockFunc registers a callback invoked when the page scroll
// lock transitions between locked and unlocked.
func WithScrollLockFunc(fn func(locked bool)) HostOption {
	return func(h *Host) {
		h.onLock = fn
	}
}

// NewHost creates a host with no measurements and no listeners.
func NewHost(opts ...HostOption) *Host {
	h := &Host{rects: make(map[string]Rect)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewID returns a measure id unique within this host.
func (h *Host) NewID(prefix string) string {
	h.mu.Lock()
	h.nextID++
	n := h.nextID
	h.mu.Unlock()
	return prefix + "-" + strconv.FormatUint(n, 10)
}

// Viewport returns the last known viewport size.
func (h *Host) Viewport() Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewport
}

// SetViewport records a new viewport size without notifying listeners.
func (h *Host) SetViewport(size Size) {
	h.mu.Lock()
	h.viewport = size
	h.mu.Unlock()
}

// Rect returns the last measured rect for id.
func (h *Host) Rect(id string) (Rect, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rects[id]
	return r, ok
}

// UpdateGeometry replaces the viewport and the measured rects with a new
// snapshot. When anything changed, a Measure event is dispatched to window
// listeners and true is returned.
func (h *Host) UpdateGeometry(viewport Size, rects map[string]Rect) bool {
	h.mu.Lock()
	changed := viewport != h.viewport || len(rects) != len(h.rects)
	if !changed {
		for id, r := range rects {
			if prev, ok := h.rects[id]; !ok || prev != r {
				changed = true
				break
			}
		}
	}
	if changed {
		h.viewport = viewport
		h.rects = make(map[string]Rect, len(rects))
		for id, r := range rects {
			h.rects[id] = r
		}
	}
	h.mu.Unlock()

	if changed {
		h.Dispatch(Window, Event{Kind: Measure})
	}
	return changed
}

// Listen registers fn for events of kind on target. The returned
// subscription must be released when the listener is no longer needed.
func (h *Host) Listen(target Target, kind EventKind, fn Listener) *Subscription {
	h.mu.Lock()
	h.nextSub++
	id := h.nextSub
	h.listeners = append(h.listeners, &listenerEntry{id: id, target: target, kind: kind, fn: fn})
	h.mu.Unlock()

	return newSubscription(func() { h.unlisten(id) })
}

func (h *Host) unlisten(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, l := range h.listeners {
		if l.id == id {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to the listeners of target registered for ev.Kind.
// A zero Viewport on the event is filled with the host viewport.
func (h *Host) Dispatch(target Target, ev Event) {
	h.mu.Lock()
	if ev.Viewport == (Size{}) {
		ev.Viewport = h.viewport
	}
	var fns []Listener
	for _, l := range h.listeners {
		if l.target == target && l.kind == ev.Kind {
			fns = append(fns, l.fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// ListenerCount returns the number of active listeners for target and kind.
func (h *Host) ListenerCount(target Target, kind EventKind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, l := range h.listeners {
		if l.target == target && l.kind == kind {
			n++
		}
	}
	return n
}

// Listeners returns the total number of active listeners.
func (h *Host) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// LockScroll suspends page scrolling until the returned subscription is
// released. Locks nest; the page scrolls again once every lock is gone.
func (h *Host) LockScroll() *Subscription {
	h.mu.Lock()
	h.locks++
	notify := h.locks == 1
	fn := h.onLock
	h.mu.Unlock()

	if notify && fn != nil {
		fn(true)
	}
	return newSubscription(h.unlockScroll)
}

func (h *Host) unlockScroll() {
	h.mu.Lock()
	h.locks--
	notify := h.locks == 0
	fn := h.onLock
	h.mu.Unlock()

	if notify && fn != nil {
		fn(false)
	}
}

// ScrollLocked reports whether any scroll lock is held.
func (h *Host) ScrollLocked() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.locks > 0
}
