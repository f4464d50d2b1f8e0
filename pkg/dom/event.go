package dom

// EventKind names a browser event the host can deliver.
type EventKind string

const (
	PointerDown EventKind = "pointerdown"
	PointerMove EventKind = "pointermove"
	PointerUp   EventKind = "pointerup"
	KeyDown     EventKind = "keydown"
	Scroll      EventKind = "scroll"
	Resize      EventKind = "resize"

	// Measure is emitted on the window target after UpdateGeometry
	// observed a change in the viewport or any measured rect.
	Measure EventKind = "measure"
)

// Target selects which global event source a listener attaches to.
type Target int

const (
	Document Target = iota
	Window
)

func (t Target) String() string {
	switch t {
	case Document:
		return "document"
	case Window:
		return "window"
	default:
		return "unknown"
	}
}

// Event is a browser event as seen by server-side listeners and handlers.
type Event struct {
	Kind    EventKind `json:"type"`
	Key     string    `json:"key,omitempty"`
	ClientX float64   `json:"x,omitempty"`
	ClientY float64   `json:"y,omitempty"`

	// Path lists the data-measure ids of the event target and its
	// ancestors, innermost first.
	Path []string `json:"path,omitempty"`

	// Viewport is the window size at the time of the event.
	Viewport Size `json:"-"`
}

// Within reports whether the event target is the element with the given
// measure id or one of its descendants.
func (e Event) Within(id string) bool {
	if id == "" {
		return false
	}
	for _, p := range e.Path {
		if p == id {
			return true
		}
	}
	return false
}

// Listener receives events from a Host.
type Listener func(Event)
