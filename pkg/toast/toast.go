package toast

import "time"

// DefaultDuration applies to toasts added without a Duration.
const DefaultDuration = 5 * time.Second

// DefaultExitDelay is the time between marking a toast dismissing and
// removing it, matching the exit animation.
const DefaultExitDelay = 150 * time.Millisecond

// DefaultMaxToasts caps the number of toasts on screen.
const DefaultMaxToasts = 5

// Variant is the severity style of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantDestructive Variant = "destructive"
	VariantInfo        Variant = "info"
)

// Variants lists every variant in display order.
var Variants = []Variant{VariantDefault, VariantSuccess, VariantWarning, VariantDestructive, VariantInfo}

// Position is the screen corner or edge the toast stack is anchored to.
type Position string

const (
	TopRight     Position = "top-right"
	TopLeft      Position = "top-left"
	BottomRight  Position = "bottom-right"
	BottomLeft   Position = "bottom-left"
	TopCenter    Position = "top-center"
	BottomCenter Position = "bottom-center"
)

// Positions lists every position.
var Positions = []Position{TopRight, TopLeft, BottomRight, BottomLeft, TopCenter, BottomCenter}

// ParsePosition returns the Position named s, or false.
func ParsePosition(s string) (Position, bool) {
	for _, p := range Positions {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// State is the lifecycle state of a queued toast.
type State int

const (
	// Visible toasts are on screen.
	Visible State = iota
	// Dismissing toasts are playing their exit animation and are removed
	// once the exit delay elapses.
	Dismissing
)

func (s State) String() string {
	if s == Dismissing {
		return "dismissing"
	}
	return "visible"
}

// Action is an optional button rendered inside a toast.
type Action struct {
	Label   string
	OnClick func()
}

// Toast describes one notification.
type Toast struct {
	// ID is assigned by Provider.Add.
	ID string

	Title       string
	Description string
	Variant     Variant

	// Duration before the toast dismisses itself. Zero takes the
	// provider default; negative keeps it on screen until dismissed.
	Duration time.Duration

	// Sticky keeps the toast on screen until dismissed, whatever Duration
	// says.
	Sticky bool

	Action *Action

	// HideIcon suppresses the variant icon.
	HideIcon bool

	// OnClose is called once when the toast leaves the queue, whatever
	// the reason.
	OnClose func()

	// State is maintained by the provider.
	State State
}

// Reason records why a toast left the queue.
type Reason string

const (
	ReasonDismissed Reason = "dismissed"
	ReasonRemoved   Reason = "removed"
	ReasonEvicted   Reason = "evicted"
	ReasonCleared   Reason = "cleared"
)

// Observer is notified of queue activity. Implementations must not call
// back into the provider.
type Observer interface {
	ToastAdded(t Toast)
	ToastRemoved(t Toast, reason Reason)
}
