package ui

import (
	"time"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/floating"
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

const (
	// DefaultTooltipDelay is the hover time before a tooltip shows.
	DefaultTooltipDelay = 700 * time.Millisecond

	// DefaultTooltipSkipDelay is how long after hiding a tooltip the next
	// one shows without delay.
	DefaultTooltipSkipDelay = 300 * time.Millisecond

	tooltipExitDelay = 150 * time.Millisecond
)

// TooltipOption configures a Tooltip.
type TooltipOption func(*tooltipConfig)

type tooltipConfig struct {
	side         floating.Side
	align        floating.Align
	delay        time.Duration
	skipDelay    time.Duration
	disabled     bool
	scheduler    toast.Scheduler
	id           string
	trigger      []any
	content      []any
	className    string
	contentClass string
	arrowClass   string
}

func defaultTooltipConfig() tooltipConfig {
	return tooltipConfig{
		side:      floating.Top,
		align:     floating.Center,
		delay:     DefaultTooltipDelay,
		skipDelay: DefaultTooltipSkipDelay,
	}
}

// TooltipTrigger sets the element that shows the tooltip on hover or
// focus.
func TooltipTrigger(children ...any) TooltipOption {
	return func(c *tooltipConfig) {
		c.trigger = children
	}
}

// TooltipContent sets the tooltip text or content.
func TooltipContent(children ...any) TooltipOption {
	return func(c *tooltipConfig) {
		c.content = children
	}
}

// TooltipSide sets which side of the trigger the tooltip appears on.
// Defaults to top.
func TooltipSide(side floating.Side) TooltipOption {
	return func(c *tooltipConfig) {
		c.side = side
	}
}

// TooltipAlign sets the alignment along the trigger edge.
func TooltipAlign(align floating.Align) TooltipOption {
	return func(c *tooltipConfig) {
		c.align = align
	}
}

// TooltipDelay sets the hover time before showing.
func TooltipDelay(d time.Duration) TooltipOption {
	return func(c *tooltipConfig) {
		c.delay = d
	}
}

// TooltipSkipDelay sets the window after a hide in which the tooltip
// reappears immediately.
func TooltipSkipDelay(d time.Duration) TooltipOption {
	return func(c *tooltipConfig) {
		c.skipDelay = d
	}
}

// TooltipDisabled stops the tooltip from showing.
func TooltipDisabled(disabled bool) TooltipOption {
	return func(c *tooltipConfig) {
		c.disabled = disabled
	}
}

// TooltipScheduler sets the timer source for the show and hide delays.
// Live sessions pass their loop scheduler. Without one, the tooltip shows
// and hides immediately.
func TooltipScheduler(s toast.Scheduler) TooltipOption {
	return func(c *tooltipConfig) {
		c.scheduler = s
	}
}

// TooltipID sets the id prefix of the trigger and content.
func TooltipID(id string) TooltipOption {
	return func(c *tooltipConfig) {
		c.id = id
	}
}

// TooltipClass adds classes to the trigger wrapper.
func TooltipClass(className string) TooltipOption {
	return func(c *tooltipConfig) {
		c.className = className
	}
}

// TooltipContentClass adds classes to the tooltip bubble.
func TooltipContentClass(className string) TooltipOption {
	return func(c *tooltipConfig) {
		c.contentClass = className
	}
}

// TooltipArrowClass adds classes to the arrow.
func TooltipArrowClass(className string) TooltipOption {
	return func(c *tooltipConfig) {
		c.arrowClass = className
	}
}

// Tooltip shows a short label next to its trigger after a hover or focus
// delay. It implements vdom.Component.
//
// While visible it holds window scroll, resize and measure listeners to
// keep the bubble placed. Hiding plays a short exit animation; a tooltip
// shown again within the skip delay appears without waiting.
type Tooltip struct {
	host *dom.Host
	cfg  tooltipConfig

	triggerID string
	contentID string

	visible   bool
	animating bool
	warm      bool
	scope     *dom.Scope
	pos       floating.Point
	measured  bool

	showTimer toast.Timer
	hideTimer toast.Timer
	coolTimer toast.Timer
}

// NewTooltip creates a tooltip bound to host.
func NewTooltip(host *dom.Host, opts ...TooltipOption) *Tooltip {
	cfg := defaultTooltipConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	prefix := cfg.id
	if prefix == "" {
		prefix = host.NewID("tooltip")
	}
	return &Tooltip{
		host:      host,
		cfg:       cfg,
		triggerID: prefix + "-trigger",
		contentID: prefix + "-content",
	}
}

// IsVisible reports whether the bubble is rendered.
func (t *Tooltip) IsVisible() bool { return t.visible }

// Position returns the last computed bubble coordinate and whether it
// has been measured since the tooltip was shown.
func (t *Tooltip) Position() (floating.Point, bool) { return t.pos, t.measured }

// TriggerID is the measure id of the trigger wrapper.
func (t *Tooltip) TriggerID() string { return t.triggerID }

// ContentID is the measure id of the bubble.
func (t *Tooltip) ContentID() string { return t.contentID }

// Show starts the show delay, or shows at once when a tooltip was hidden
// within the skip delay.
func (t *Tooltip) Show() {
	if t.cfg.disabled {
		return
	}
	stopTimer(&t.showTimer)
	if t.visible {
		// Cancels a pending hide.
		stopTimer(&t.hideTimer)
		t.animating = true
		return
	}
	delay := t.cfg.delay
	if t.warm {
		delay = 0
	}
	if delay <= 0 || t.cfg.scheduler == nil {
		t.reveal()
		return
	}
	t.showTimer = t.cfg.scheduler.AfterFunc(delay, func() {
		t.showTimer = nil
		t.reveal()
	})
}

// Hide cancels a pending show and plays the exit animation.
func (t *Tooltip) Hide() {
	stopTimer(&t.showTimer)
	if !t.visible || t.hideTimer != nil {
		return
	}
	t.animating = false
	if t.cfg.scheduler == nil {
		t.conceal()
		return
	}
	t.hideTimer = t.cfg.scheduler.AfterFunc(tooltipExitDelay, func() {
		t.hideTimer = nil
		t.conceal()
	})
}

// Dispose cancels every timer and releases the listeners.
func (t *Tooltip) Dispose() {
	stopTimer(&t.showTimer)
	stopTimer(&t.hideTimer)
	stopTimer(&t.coolTimer)
	t.scope.Release()
	t.scope = nil
	t.visible, t.animating, t.warm, t.measured = false, false, false, false
}

func (t *Tooltip) reveal() {
	stopTimer(&t.coolTimer)
	t.visible, t.animating = true, true

	scope := dom.NewScope(t.host)
	reposition := func(dom.Event) { t.Reposition() }
	scope.Listen(dom.Window, dom.Scroll, reposition)
	scope.Listen(dom.Window, dom.Resize, reposition)
	scope.Listen(dom.Window, dom.Measure, reposition)
	t.scope = scope
	t.Reposition()
}

func (t *Tooltip) conceal() {
	t.visible, t.measured = false, false
	t.scope.Release()
	t.scope = nil

	t.warm = true
	if t.cfg.scheduler == nil {
		return
	}
	t.coolTimer = t.cfg.scheduler.AfterFunc(t.cfg.skipDelay, func() {
		t.coolTimer = nil
		t.warm = false
	})
}

// Reposition recomputes the bubble coordinate. It does nothing until the
// trigger and the bubble have been measured.
func (t *Tooltip) Reposition() {
	trigger, ok := t.host.Rect(t.triggerID)
	if !ok {
		return
	}
	content, ok := t.host.Rect(t.contentID)
	if !ok {
		return
	}
	t.pos = floating.Compute(trigger, content.Size(), t.host.Viewport(), floating.Options{
		Side:  t.cfg.side,
		Align: t.cfg.align,
	})
	t.measured = true
}

// Render implements vdom.Component.
func (t *Tooltip) Render() *vdom.VNode {
	cfg := t.cfg

	var describedBy vdom.Attr
	if t.visible {
		describedBy = vdom.Attribute("aria-describedby", t.contentID)
	}
	trigger := vdom.Div(
		vdom.Data("measure", t.triggerID),
		vdom.Class("inline-block", cfg.className),
		describedBy,
		vdom.OnMouseEnter(t.Show),
		vdom.OnMouseLeave(t.Hide),
		vdom.OnFocus(t.Show),
		vdom.OnBlur(t.Hide),
		cfg.trigger,
	)
	if !t.visible {
		return trigger
	}

	style := map[string]string{
		"left": vdom.Px(t.pos.X),
		"top":  vdom.Px(t.pos.Y),
	}
	if !t.measured {
		style["visibility"] = "hidden"
	}
	state := "opacity-0 scale-95"
	if t.animating {
		state = "opacity-100 scale-100"
	}

	side := floating.ParseSide(string(cfg.side))
	content := vdom.Div(
		vdom.ID(t.contentID),
		vdom.Data("measure", t.contentID),
		vdom.Data("side", string(side)),
		vdom.Role("tooltip"),
		vdom.Class(
			"fixed z-50 px-3 py-1.5 text-sm bg-popover text-popover-foreground border rounded-md shadow-md transition-all duration-150",
			"pointer-events-none select-none",
			state,
			cfg.contentClass,
		),
		vdom.Style(style),
		cfg.content,
		vdom.Div(vdom.Class(popoverArrowBase, popoverArrowClasses[side], cfg.arrowClass)),
	)
	return vdom.Div(vdom.Class("contents"), trigger, content)
}

// stopTimer cancels *timer if it is set and clears it.
func stopTimer(timer *toast.Timer) {
	if *timer != nil {
		(*timer).Stop()
		*timer = nil
	}
}
