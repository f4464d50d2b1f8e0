package ui

import (
	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/floating"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// PopoverOption configures a Popover.
type PopoverOption func(*popoverConfig)

type popoverConfig struct {
	open                *bool
	defaultOpen         bool
	onOpenChange        func(bool)
	placement           floating.Options
	closeOnClickOutside bool
	closeOnEscape       bool
	modal               bool
	id                  string
	trigger             []any
	body                []any
	className           string
	contentClass        string
	arrowClass          string
	triggerClass        string

	// Set by components built on Popover.
	role           string
	triggerKeyDown func(dom.Event)
}

func defaultPopoverConfig() popoverConfig {
	return popoverConfig{
		placement:           floating.DefaultOptions(),
		closeOnClickOutside: true,
		closeOnEscape:       true,
		role:                "dialog",
	}
}

// PopoverOpen makes the popover controlled. User actions only reach
// PopoverOnOpenChange; the parent applies them with SetOpen.
func PopoverOpen(open bool) PopoverOption {
	return func(c *popoverConfig) {
		c.open = &open
	}
}

// PopoverDefaultOpen opens an uncontrolled popover on creation.
func PopoverDefaultOpen(open bool) PopoverOption {
	return func(c *popoverConfig) {
		c.defaultOpen = open
	}
}

// PopoverOnOpenChange sets the open state change handler.
func PopoverOnOpenChange(handler func(bool)) PopoverOption {
	return func(c *popoverConfig) {
		c.onOpenChange = handler
	}
}

// PopoverSide sets which side of the trigger the panel opens on.
func PopoverSide(side floating.Side) PopoverOption {
	return func(c *popoverConfig) {
		c.placement.Side = side
	}
}

// PopoverAlign sets the alignment along the trigger edge.
func PopoverAlign(align floating.Align) PopoverOption {
	return func(c *popoverConfig) {
		c.placement.Align = align
	}
}

// PopoverSideOffset sets the gap between trigger and panel in pixels.
// Zero keeps floating.DefaultSideOffset.
func PopoverSideOffset(px float64) PopoverOption {
	return func(c *popoverConfig) {
		c.placement.SideOffset = px
	}
}

// PopoverAlignOffset shifts the panel along the aligned edge.
func PopoverAlignOffset(px float64) PopoverOption {
	return func(c *popoverConfig) {
		c.placement.AlignOffset = px
	}
}

// PopoverCloseOnClickOutside controls closing on pointer-down outside
// both trigger and panel. Defaults to true.
func PopoverCloseOnClickOutside(enabled bool) PopoverOption {
	return func(c *popoverConfig) {
		c.closeOnClickOutside = enabled
	}
}

// PopoverCloseOnEscape controls closing on the Escape key. Defaults to true.
func PopoverCloseOnEscape(enabled bool) PopoverOption {
	return func(c *popoverConfig) {
		c.closeOnEscape = enabled
	}
}

// PopoverModal adds a backdrop and locks page scroll while open.
func PopoverModal(modal bool) PopoverOption {
	return func(c *popoverConfig) {
		c.modal = modal
	}
}

// PopoverID sets the id prefix of the trigger and panel.
func PopoverID(id string) PopoverOption {
	return func(c *popoverConfig) {
		c.id = id
	}
}

// PopoverTrigger sets the element that toggles the popover.
func PopoverTrigger(children ...any) PopoverOption {
	return func(c *popoverConfig) {
		c.trigger = children
	}
}

// PopoverBody sets the panel content.
func PopoverBody(children ...any) PopoverOption {
	return func(c *popoverConfig) {
		c.body = children
	}
}

// PopoverClass adds classes to the wrapper.
func PopoverClass(className string) PopoverOption {
	return func(c *popoverConfig) {
		c.className = className
	}
}

// PopoverContentClass adds classes to the panel.
func PopoverContentClass(className string) PopoverOption {
	return func(c *popoverConfig) {
		c.contentClass = className
	}
}

// PopoverArrowClass adds classes to the arrow.
func PopoverArrowClass(className string) PopoverOption {
	return func(c *popoverConfig) {
		c.arrowClass = className
	}
}

// PopoverTriggerClass adds classes to the trigger wrapper.
func PopoverTriggerClass(className string) PopoverOption {
	return func(c *popoverConfig) {
		c.triggerClass = className
	}
}

const popoverArrowBase = "absolute w-2 h-2 bg-popover border rotate-45"

var popoverArrowClasses = map[floating.Side]string{
	floating.Top:    "bottom-[-4px] left-1/2 transform -translate-x-1/2 border-t-0 border-l-0",
	floating.Bottom: "top-[-4px] left-1/2 transform -translate-x-1/2 border-b-0 border-r-0",
	floating.Left:   "right-[-4px] top-1/2 transform -translate-y-1/2 border-l-0 border-b-0",
	floating.Right:  "left-[-4px] top-1/2 transform -translate-y-1/2 border-r-0 border-t-0",
}

// Popover is a floating panel anchored to a trigger. It implements
// vdom.Component.
//
// While open it holds a dom.Scope with the listeners it needs: window
// scroll, resize and measure to reposition, document pointer-down and
// keydown to close, and a scroll lock when modal. Closing or disposing
// releases the scope.
type Popover struct {
	host *dom.Host
	cfg  popoverConfig
	open controllable[bool]

	triggerID string
	contentID string

	// applied is the open state the scope was last synced to.
	applied  bool
	scope    *dom.Scope
	pos      floating.Point
	measured bool
}

// NewPopover creates a popover bound to host.
func NewPopover(host *dom.Host, opts ...PopoverOption) *Popover {
	cfg := defaultPopoverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	prefix := cfg.id
	if prefix == "" {
		prefix = host.NewID("popover")
	}
	p := &Popover{
		host:      host,
		cfg:       cfg,
		triggerID: prefix + "-trigger",
		contentID: prefix + "-content",
	}
	p.open.onChange = cfg.onOpenChange
	initial := cfg.defaultOpen
	if cfg.open != nil {
		p.open.controlled = true
		initial = *cfg.open
	}
	p.open.value = initial
	p.sync()
	return p
}

// IsOpen reports whether the panel is shown.
func (p *Popover) IsOpen() bool { return p.open.value }

// Position returns the last computed panel coordinate and whether the
// trigger and panel have been measured.
func (p *Popover) Position() (floating.Point, bool) { return p.pos, p.measured }

// TriggerID is the measure id of the trigger wrapper.
func (p *Popover) TriggerID() string { return p.triggerID }

// ContentID is the measure id of the panel.
func (p *Popover) ContentID() string { return p.contentID }

// SetOpen applies an open state from the parent. It does not call
// the open change handler.
func (p *Popover) SetOpen(open bool) {
	p.open.set(open)
	p.sync()
}

// Open requests the open state as a user action would.
func (p *Popover) Open() { p.request(true) }

// Close requests the closed state as a user action would.
func (p *Popover) Close() { p.request(false) }

// Toggle flips the open state as a trigger click would.
func (p *Popover) Toggle() { p.request(!p.open.value) }

// Dispose releases everything held while open. The popover is left
// closed.
func (p *Popover) Dispose() {
	p.open.value = false
	p.sync()
}

func (p *Popover) request(open bool) {
	if open == p.open.value {
		return
	}
	p.open.request(open)
	p.sync()
}

// sync acquires or releases the open scope to match the current state.
func (p *Popover) sync() {
	open := p.open.value
	if open == p.applied {
		return
	}
	p.applied = open
	if !open {
		p.scope.Release()
		p.scope = nil
		// Hidden again until the next open is measured.
		p.measured = false
		return
	}

	scope := dom.NewScope(p.host)
	reposition := func(dom.Event) { p.Reposition() }
	scope.Listen(dom.Window, dom.Scroll, reposition)
	scope.Listen(dom.Window, dom.Resize, reposition)
	scope.Listen(dom.Window, dom.Measure, reposition)
	if p.cfg.closeOnClickOutside {
		scope.Listen(dom.Document, dom.PointerDown, func(ev dom.Event) {
			if !ev.Within(p.triggerID) && !ev.Within(p.contentID) {
				p.request(false)
			}
		})
	}
	if p.cfg.closeOnEscape {
		scope.Listen(dom.Document, dom.KeyDown, func(ev dom.Event) {
			if ev.Key == "Escape" {
				p.request(false)
			}
		})
	}
	if p.cfg.modal {
		scope.LockScroll()
	}
	p.scope = scope
	p.Reposition()
}

// Reposition recomputes the panel coordinate from the measured trigger
// and panel rects. It does nothing until both have been measured.
func (p *Popover) Reposition() {
	trigger, ok := p.host.Rect(p.triggerID)
	if !ok {
		return
	}
	panel, ok := p.host.Rect(p.contentID)
	if !ok {
		return
	}
	p.pos = floating.Compute(trigger, panel.Size(), p.host.Viewport(), p.cfg.placement)
	p.measured = true
}

// Render implements vdom.Component.
func (p *Popover) Render() *vdom.VNode {
	cfg := p.cfg
	open := p.open.value

	var keyboard []any
	if cfg.triggerKeyDown != nil {
		keyboard = []any{vdom.TabIndex(0), vdom.OnKeyDown(cfg.triggerKeyDown)}
	}
	trigger := vdom.Div(
		vdom.Data("measure", p.triggerID),
		vdom.Class("inline-block cursor-pointer", cfg.triggerClass),
		vdom.Attribute("aria-haspopup", cfg.role),
		vdom.AriaExpanded(open),
		vdom.AriaControls(p.contentID),
		vdom.OnClick(p.Toggle),
		keyboard,
		cfg.trigger,
	)

	if !open {
		return vdom.Div(vdom.Class("contents", cfg.className), trigger)
	}

	var backdrop *vdom.VNode
	if cfg.modal {
		backdrop = vdom.Div(vdom.Class("fixed inset-0 z-40 bg-black/20"), vdom.AriaHidden(true))
	}

	style := map[string]string{
		"left": vdom.Px(p.pos.X),
		"top":  vdom.Px(p.pos.Y),
	}
	if !p.measured {
		style["visibility"] = "hidden"
	}

	side := floating.ParseSide(string(cfg.placement.Side))
	content := vdom.Div(
		vdom.ID(p.contentID),
		vdom.Data("measure", p.contentID),
		vdom.Data("side", string(side)),
		vdom.Data("state", "open"),
		vdom.Role(cfg.role),
		vdom.AriaModal(cfg.modal),
		vdom.Class(
			"fixed z-50 bg-popover text-popover-foreground border rounded-md shadow-lg",
			"animate-in fade-in-0 zoom-in-95",
			cfg.contentClass,
		),
		vdom.Style(style),
		cfg.body,
		vdom.Div(vdom.Class(popoverArrowBase, popoverArrowClasses[side], cfg.arrowClass)),
	)

	return vdom.Div(vdom.Class("contents", cfg.className), trigger, backdrop, content)
}

// PopoverContent pads the panel body.
func PopoverContent(children ...any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Class("p-4")}, children...)...)
}

// PopoverHeader separates a title block from the body.
func PopoverHeader(children ...any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Class("pb-3 border-b border-border")}, children...)...)
}

// PopoverTitle renders the panel heading.
func PopoverTitle(children ...any) *vdom.VNode {
	return vdom.H4(append([]any{vdom.Class("font-medium leading-none")}, children...)...)
}

// PopoverDescription renders secondary text under the title.
func PopoverDescription(children ...any) *vdom.VNode {
	return vdom.P(append([]any{vdom.Class("text-sm text-muted-foreground mt-1")}, children...)...)
}

// PopoverFooter aligns actions at the end of the panel.
func PopoverFooter(children ...any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Class("pt-3 border-t border-border flex justify-end space-x-2")}, children...)...)
}
