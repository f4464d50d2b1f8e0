package ui

import (
	"time"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// ModalExitDelay is the time between closing a modal and removing it,
// matching the exit animation. Page scroll stays locked until then.
const ModalExitDelay = 150 * time.Millisecond

// ModalOption configures a Modal.
type ModalOption func(*modalConfig)

type modalConfig struct {
	open                *bool
	defaultOpen         bool
	onOpenChange        func(bool)
	title               string
	description         string
	size                Size
	showCloseButton     bool
	closeOnOverlayClick bool
	closeOnEscape       bool
	scheduler           toast.Scheduler
	id                  string
	body                []any
	className           string
	overlayClass        string
	contentClass        string
}

func defaultModalConfig() modalConfig {
	return modalConfig{
		size:                SizeMd,
		showCloseButton:     true,
		closeOnOverlayClick: true,
		closeOnEscape:       true,
	}
}

// ModalOpen makes the modal controlled. User actions only reach
// ModalOnOpenChange; the parent applies them with SetOpen.
func ModalOpen(open bool) ModalOption {
	return func(c *modalConfig) {
		c.open = &open
	}
}

// ModalDefaultOpen opens an uncontrolled modal on creation.
func ModalDefaultOpen(open bool) ModalOption {
	return func(c *modalConfig) {
		c.defaultOpen = open
	}
}

// ModalOnOpenChange sets the open state change handler.
func ModalOnOpenChange(handler func(bool)) ModalOption {
	return func(c *modalConfig) {
		c.onOpenChange = handler
	}
}

// ModalTitle sets the dialog heading.
func ModalTitle(title string) ModalOption {
	return func(c *modalConfig) {
		c.title = title
	}
}

// ModalDescription sets the text under the heading.
func ModalDescription(description string) ModalOption {
	return func(c *modalConfig) {
		c.description = description
	}
}

// ModalSize sets the maximum dialog width (sm, md, lg, xl, or SizeFull).
func ModalSize(s Size) ModalOption {
	return func(c *modalConfig) {
		c.size = s
	}
}

// ModalShowCloseButton controls the close button in the header. Defaults
// to true.
func ModalShowCloseButton(show bool) ModalOption {
	return func(c *modalConfig) {
		c.showCloseButton = show
	}
}

// ModalCloseOnOverlayClick controls closing on a click on the backdrop.
// Defaults to true.
func ModalCloseOnOverlayClick(enabled bool) ModalOption {
	return func(c *modalConfig) {
		c.closeOnOverlayClick = enabled
	}
}

// ModalCloseOnEscape controls closing on the Escape key. Defaults to true.
func ModalCloseOnEscape(enabled bool) ModalOption {
	return func(c *modalConfig) {
		c.closeOnEscape = enabled
	}
}

// ModalScheduler sets the timer source for the exit animation. Without
// one, a closed modal is removed at once.
func ModalScheduler(s toast.Scheduler) ModalOption {
	return func(c *modalConfig) {
		c.scheduler = s
	}
}

// ModalID sets the id prefix of the title and description.
func ModalID(id string) ModalOption {
	return func(c *modalConfig) {
		c.id = id
	}
}

// ModalBody sets the dialog content.
func ModalBody(children ...any) ModalOption {
	return func(c *modalConfig) {
		c.body = children
	}
}

// ModalClass adds classes to the outer container.
func ModalClass(className string) ModalOption {
	return func(c *modalConfig) {
		c.className = className
	}
}

// ModalOverlayClass adds classes to the backdrop.
func ModalOverlayClass(className string) ModalOption {
	return func(c *modalConfig) {
		c.overlayClass = className
	}
}

// ModalContentClass adds classes to the dialog panel.
func ModalContentClass(className string) ModalOption {
	return func(c *modalConfig) {
		c.contentClass = className
	}
}

// SizeFull stretches a modal to the viewport width.
const SizeFull Size = "full"

var modalSizeClasses = map[Size]string{
	SizeSm:   "max-w-sm",
	SizeMd:   "max-w-md",
	SizeLg:   "max-w-lg",
	SizeXL:   "max-w-xl",
	SizeFull: "max-w-full mx-4",
}

// Modal is a centered dialog over a backdrop. It implements
// vdom.Component.
//
// While open it listens for Escape on the document. From opening until
// its exit animation ends it holds a scroll lock.
type Modal struct {
	host *dom.Host
	cfg  modalConfig
	open controllable[bool]

	titleID string
	descID  string

	applied   bool
	visible   bool
	listeners *dom.Scope
	lock      *dom.Subscription
	exit      toast.Timer
}

// NewModal creates a modal bound to host.
func NewModal(host *dom.Host, opts ...ModalOption) *Modal {
	cfg := defaultModalConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	prefix := cfg.id
	if prefix == "" {
		prefix = host.NewID("modal")
	}
	m := &Modal{
		host:    host,
		cfg:     cfg,
		titleID: prefix + "-title",
		descID:  prefix + "-description",
	}
	m.open.onChange = cfg.onOpenChange
	initial := cfg.defaultOpen
	if cfg.open != nil {
		m.open.controlled = true
		initial = *cfg.open
	}
	m.open.value = initial
	m.sync()
	return m
}

// IsOpen reports the open state.
func (m *Modal) IsOpen() bool { return m.open.value }

// IsVisible reports whether the modal is rendered, which includes the
// exit animation after closing.
func (m *Modal) IsVisible() bool { return m.visible }

// SetOpen applies an open state from the parent. It does not call the
// open change handler.
func (m *Modal) SetOpen(open bool) {
	m.open.set(open)
	m.sync()
}

// Open requests the open state as a user action would.
func (m *Modal) Open() { m.request(true) }

// Close requests the closed state as a user action would.
func (m *Modal) Close() { m.request(false) }

// Dispose releases the listeners and the scroll lock and cancels the
// exit animation.
func (m *Modal) Dispose() {
	m.open.value = false
	m.sync()
	m.finishExit()
}

func (m *Modal) request(open bool) {
	if open == m.open.value {
		return
	}
	m.open.request(open)
	m.sync()
}

func (m *Modal) sync() {
	open := m.open.value
	if open == m.applied {
		return
	}
	m.applied = open

	if !open {
		m.listeners.Release()
		m.listeners = nil
		if m.cfg.scheduler == nil {
			m.finishExit()
			return
		}
		m.exit = m.cfg.scheduler.AfterFunc(ModalExitDelay, func() {
			m.exit = nil
			m.finishExit()
		})
		return
	}

	stopTimer(&m.exit)
	m.visible = true
	if m.lock == nil {
		m.lock = m.host.LockScroll()
	}
	scope := dom.NewScope(m.host)
	if m.cfg.closeOnEscape {
		scope.Listen(dom.Document, dom.KeyDown, func(ev dom.Event) {
			if ev.Key == "Escape" {
				m.request(false)
			}
		})
	}
	m.listeners = scope
}

func (m *Modal) finishExit() {
	stopTimer(&m.exit)
	m.visible = false
	m.lock.Release()
	m.lock = nil
}

// Render implements vdom.Component.
func (m *Modal) Render() *vdom.VNode {
	if !m.visible {
		return nil
	}
	cfg := m.cfg
	open := m.open.value

	overlayState, contentState := "opacity-0", "scale-95 opacity-0"
	if open {
		overlayState, contentState = "opacity-100", "scale-100 opacity-100"
	}

	var overlayClick any
	if cfg.closeOnOverlayClick {
		overlayClick = vdom.OnClick(m.Close)
	}
	overlay := vdom.Div(
		vdom.Class("fixed inset-0 bg-black/50 transition-opacity duration-150", overlayState, cfg.overlayClass),
		vdom.AriaHidden(true),
		overlayClick,
	)

	hasHeader := cfg.title != "" || cfg.description != "" || cfg.showCloseButton
	var header *vdom.VNode
	if hasHeader {
		var title, desc, closeBtn *vdom.VNode
		if cfg.title != "" {
			title = vdom.H2(vdom.ID(m.titleID), vdom.Class("text-lg font-semibold text-foreground"), vdom.Text(cfg.title))
		}
		if cfg.description != "" {
			desc = vdom.P(vdom.ID(m.descID), vdom.Class("text-sm text-muted-foreground mt-1"), vdom.Text(cfg.description))
		}
		if cfg.showCloseButton {
			closeBtn = vdom.Button(
				vdom.Type("button"),
				vdom.Class("rounded-sm opacity-70 ring-offset-background transition-opacity hover:opacity-100 focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2"),
				vdom.AriaLabel("Close modal"),
				vdom.OnClick(m.Close),
				iconX("h-4 w-4"),
			)
		}
		header = vdom.Div(
			vdom.Class("flex items-start justify-between p-6 pb-4"),
			vdom.Div(vdom.Class("flex-1"), title, desc),
			closeBtn,
		)
	}

	bodyPad := "py-6"
	if hasHeader {
		bodyPad = "pb-6"
	}

	var labelledBy, describedBy vdom.Attr
	if cfg.title != "" {
		labelledBy = vdom.AriaLabelledBy(m.titleID)
	}
	if cfg.description != "" {
		describedBy = vdom.Attribute("aria-describedby", m.descID)
	}
	state := "closed"
	if open {
		state = "open"
	}

	content := vdom.Div(
		vdom.Role("dialog"),
		vdom.AriaModal(true),
		labelledBy,
		describedBy,
		vdom.Data("state", state),
		vdom.Class(
			"relative w-full bg-background rounded-lg shadow-lg transition-all duration-150 transform",
			contentState,
			lookup(modalSizeClasses, cfg.size, SizeMd),
			cfg.contentClass,
		),
		header,
		vdom.Div(vdom.Class("px-6", bodyPad), cfg.body),
	)

	return vdom.Div(
		vdom.Class("fixed inset-0 z-50 flex items-center justify-center", cfg.className),
		overlay,
		content,
	)
}

// ModalHeader stacks a title block.
func ModalHeader(children ...any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Class("flex flex-col space-y-1.5 text-center sm:text-left")}, children...)...)
}

// ModalHeading renders a heading inside ModalHeader.
func ModalHeading(children ...any) *vdom.VNode {
	return vdom.H3(append([]any{vdom.Class("text-lg font-semibold leading-none tracking-tight")}, children...)...)
}

// ModalText renders secondary text inside ModalHeader.
func ModalText(children ...any) *vdom.VNode {
	return vdom.P(append([]any{vdom.Class("text-sm text-muted-foreground")}, children...)...)
}

// ModalFooter aligns actions at the end of the dialog.
func ModalFooter(children ...any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Class("flex flex-col-reverse sm:flex-row sm:justify-end sm:space-x-2")}, children...)...)
}
