package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Provider owns the toast queue of one page. It is safe for concurrent
// use; callbacks (OnClose, observers, change listeners) run outside the
// provider lock.
type Provider struct {
	mu      sync.Mutex
	entries []*entry // newest first

	maxToasts int
	position  Position
	exitDelay time.Duration
	duration  time.Duration
	scheduler Scheduler
	observer  Observer
	onChange  func()
	logger    *slog.Logger
}

type entry struct {
	toast Toast
	timer Timer
}

func (e *entry) stop() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Option configures a Provider.
type Option func(*Provider)

// WithMaxToasts caps the queue length. Values below 1 are ignored.
func WithMaxToasts(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.maxToasts = n
		}
	}
}

// WithPosition sets where the toast stack is rendered.
func WithPosition(pos Position) Option {
	return func(p *Provider) {
		p.position = pos
	}
}

// WithScheduler replaces the timer source. Live sessions pass a scheduler
// that runs callbacks on the session loop.
func WithScheduler(s Scheduler) Option {
	return func(p *Provider) {
		p.scheduler = s
	}
}

// WithExitDelay sets the time between dismissal and removal.
func WithExitDelay(d time.Duration) Option {
	return func(p *Provider) {
		p.exitDelay = d
	}
}

// WithDefaultDuration sets the duration of toasts added with a zero
// Duration. Zero or negative makes such toasts sticky.
func WithDefaultDuration(d time.Duration) Option {
	return func(p *Provider) {
		p.duration = d
	}
}

// WithObserver registers an observer for queue activity.
func WithObserver(o Observer) Option {
	return func(p *Provider) {
		p.observer = o
	}
}

// WithOnChange registers a function called after every queue mutation.
func WithOnChange(fn func()) Option {
	return func(p *Provider) {
		p.onChange = fn
	}
}

// WithLogger sets the logger used for queue diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = l
	}
}

// NewProvider creates an empty queue.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		maxToasts: DefaultMaxToasts,
		position:  TopRight,
		exitDelay: DefaultExitDelay,
		duration:  DefaultDuration,
		scheduler: SystemScheduler{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Add queues t as the newest toast and returns its ID. Toasts beyond the
// cap are evicted oldest first. Unless the toast is sticky, a dismissal
// timer is started for its Duration, or the provider default when zero.
func (p *Provider) Add(t Toast) string {
	if t.Variant == "" {
		t.Variant = VariantDefault
	}
	if t.Duration == 0 {
		t.Duration = p.duration
	}
	if t.Sticky || t.Duration < 0 {
		t.Sticky, t.Duration = true, 0
	}
	t.ID = uuid.NewString()
	t.State = Visible
	e := &entry{toast: t}

	p.mu.Lock()
	p.entries = append([]*entry{e}, p.entries...)
	var evicted []*entry
	if len(p.entries) > p.maxToasts {
		evicted = append(evicted, p.entries[p.maxToasts:]...)
		p.entries = p.entries[:p.maxToasts:p.maxToasts]
	}
	for _, old := range evicted {
		old.stop()
	}
	if t.Duration > 0 {
		id := t.ID
		e.timer = p.scheduler.AfterFunc(t.Duration, func() { p.Dismiss(id) })
	}
	p.mu.Unlock()

	p.logger.Debug("toast added", "id", t.ID, "variant", t.Variant, "duration", t.Duration)
	if p.observer != nil {
		p.observer.ToastAdded(t)
	}
	for _, old := range evicted {
		p.logger.Debug("toast evicted", "id", old.toast.ID)
		p.closed(old.toast, ReasonEvicted)
	}
	p.changed()
	return t.ID
}

// Dismiss starts the exit animation of the toast with id and removes it
// after the exit delay. Unknown or already dismissing IDs are ignored.
func (p *Provider) Dismiss(id string) {
	p.mu.Lock()
	e := p.find(id)
	if e == nil || e.toast.State == Dismissing {
		p.mu.Unlock()
		return
	}
	e.stop()
	e.toast.State = Dismissing
	if p.exitDelay > 0 {
		e.timer = p.scheduler.AfterFunc(p.exitDelay, func() { p.remove(id, ReasonDismissed) })
	}
	p.mu.Unlock()

	if p.exitDelay <= 0 {
		p.remove(id, ReasonDismissed)
		return
	}
	p.changed()
}

// Remove takes the toast with id off the queue immediately, cancelling
// any pending timer. Unknown IDs are ignored.
func (p *Provider) Remove(id string) {
	p.remove(id, ReasonRemoved)
}

func (p *Provider) remove(id string, reason Reason) {
	p.mu.Lock()
	var removed *entry
	for i, e := range p.entries {
		if e.toast.ID == id {
			removed = e
			p.entries = append(p.entries[:i:i], p.entries[i+1:]...)
			break
		}
	}
	if removed != nil {
		removed.stop()
	}
	p.mu.Unlock()

	if removed == nil {
		return
	}
	p.logger.Debug("toast removed", "id", id, "reason", reason)
	p.closed(removed.toast, reason)
	p.changed()
}

// Clear removes every toast, cancelling their timers.
func (p *Provider) Clear() {
	p.mu.Lock()
	all := p.entries
	p.entries = nil
	for _, e := range all {
		e.stop()
	}
	p.mu.Unlock()

	if len(all) == 0 {
		return
	}
	for _, e := range all {
		p.closed(e.toast, ReasonCleared)
	}
	p.changed()
}

// Toasts returns a snapshot of the queue, newest first.
func (p *Provider) Toasts() []Toast {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Toast, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.toast
	}
	return out
}

// Get returns the queued toast with id.
func (p *Provider) Get(id string) (Toast, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e := p.find(id); e != nil {
		return e.toast, true
	}
	return Toast{}, false
}

// Len returns the number of queued toasts.
func (p *Provider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// Position returns the configured stack position.
func (p *Provider) Position() Position { return p.position }

// MaxToasts returns the queue cap.
func (p *Provider) MaxToasts() int { return p.maxToasts }

// find must be called with p.mu held.
func (p *Provider) find(id string) *entry {
	for _, e := range p.entries {
		if e.toast.ID == id {
			return e
		}
	}
	return nil
}

func (p *Provider) closed(t Toast, reason Reason) {
	if t.OnClose != nil {
		t.OnClose()
	}
	if p.observer != nil {
		p.observer.ToastRemoved(t, reason)
	}
}

func (p *Provider) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}
