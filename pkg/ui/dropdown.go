package ui

import (
	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/floating"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// MenuEntryKind selects how a MenuEntry renders and behaves.
type MenuEntryKind int

const (
	MenuAction MenuEntryKind = iota
	MenuCheckbox
	MenuRadio
	MenuLabel
	MenuSeparator
)

// MenuEntry is one row of a DropdownMenu.
type MenuEntry struct {
	Kind     MenuEntryKind
	Label    string
	Shortcut string

	Disabled    bool
	Destructive bool

	// Checked marks checkbox and radio entries.
	Checked bool

	// OnSelect runs when the entry is chosen. Checkbox entries receive
	// the toggled state through OnCheckedChange instead.
	OnSelect        func()
	OnCheckedChange func(bool)
}

// MenuItem is a plain action.
func MenuItem(label string, onSelect func()) MenuEntry {
	return MenuEntry{Kind: MenuAction, Label: label, OnSelect: onSelect}
}

// MenuCheckboxItem toggles a boolean.
func MenuCheckboxItem(label string, checked bool, onChange func(bool)) MenuEntry {
	return MenuEntry{Kind: MenuCheckbox, Label: label, Checked: checked, OnCheckedChange: onChange}
}

// MenuRadioGroup returns one radio entry per option; the entry whose
// option equals value is checked.
func MenuRadioGroup(value string, onValueChange func(string), options ...string) []MenuEntry {
	entries := make([]MenuEntry, len(options))
	for i, opt := range options {
		entries[i] = MenuEntry{
			Kind:     MenuRadio,
			Label:    opt,
			Checked:  opt == value,
			OnSelect: func() {
				if onValueChange != nil {
					onValueChange(opt)
				}
			},
		}
	}
	return entries
}

// MenuHeading is a non-interactive section label.
func MenuHeading(label string) MenuEntry {
	return MenuEntry{Kind: MenuLabel, Label: label}
}

// MenuDivider separates groups of entries.
func MenuDivider() MenuEntry {
	return MenuEntry{Kind: MenuSeparator}
}

// DropdownOption configures a DropdownMenu.
type DropdownOption func(*dropdownConfig)

type dropdownConfig struct {
	popover      []PopoverOption
	entries      []MenuEntry
	trigger      []any
	contentClass string
}

// DropdownOpen makes the menu controlled. See PopoverOpen.
func DropdownOpen(open bool) DropdownOption {
	return func(c *dropdownConfig) {
		c.popover = append(c.popover, PopoverOpen(open))
	}
}

// DropdownDefaultOpen opens an uncontrolled menu on creation.
func DropdownDefaultOpen(open bool) DropdownOption {
	return func(c *dropdownConfig) {
		c.popover = append(c.popover, PopoverDefaultOpen(open))
	}
}

// DropdownOnOpenChange sets the open state change handler.
func DropdownOnOpenChange(handler func(bool)) DropdownOption {
	return func(c *dropdownConfig) {
		c.popover = append(c.popover, PopoverOnOpenChange(handler))
	}
}

// DropdownSide sets which side of the trigger the menu opens on.
func DropdownSide(side floating.Side) DropdownOption {
	return func(c *dropdownConfig) {
		c.popover = append(c.popover, PopoverSide(side))
	}
}

// DropdownAlign sets the alignment along the trigger edge.
func DropdownAlign(align floating.Align) DropdownOption {
	return func(c *dropdownConfig) {
		c.popover = append(c.popover, PopoverAlign(align))
	}
}

// DropdownSideOffset sets the gap between trigger and menu.
func DropdownSideOffset(px float64) DropdownOption {
	return func(c *dropdownConfig) {
		c.popover = append(c.popover, PopoverSideOffset(px))
	}
}

// DropdownID sets the id prefix of the trigger and menu.
func DropdownID(id string) DropdownOption {
	return func(c *dropdownConfig) {
		c.popover = append(c.popover, PopoverID(id))
	}
}

// DropdownTrigger sets the element that opens the menu. It should not
// carry its own click handler.
func DropdownTrigger(children ...any) DropdownOption {
	return func(c *dropdownConfig) {
		c.trigger = children
	}
}

// DropdownItems sets the initial entries.
func DropdownItems(entries ...MenuEntry) DropdownOption {
	return func(c *dropdownConfig) {
		c.entries = entries
	}
}

// DropdownContentClass adds classes to the menu panel.
func DropdownContentClass(className string) DropdownOption {
	return func(c *dropdownConfig) {
		c.contentClass = className
	}
}

// DropdownMenu is a list of actions in a popover. It implements
// vdom.Component. Opening, dismissal and placement are the popover's;
// choosing an enabled entry runs it and closes the menu.
type DropdownMenu struct {
	pop     *Popover
	entries []MenuEntry
}

// NewDropdownMenu creates a menu bound to host.
func NewDropdownMenu(host *dom.Host, opts ...DropdownOption) *DropdownMenu {
	var cfg dropdownConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &DropdownMenu{entries: cfg.entries}
	popOpts := []PopoverOption{
		PopoverSideOffset(4),
		PopoverTrigger(cfg.trigger...),
		PopoverContentClass(vdom.CN("min-w-[8rem] overflow-hidden p-1", cfg.contentClass)),
		PopoverArrowClass("hidden"),
	}
	popOpts = append(popOpts, cfg.popover...)
	popOpts = append(popOpts, func(c *popoverConfig) {
		c.role = "menu"
		c.triggerKeyDown = d.onTriggerKey
	})
	d.pop = NewPopover(host, popOpts...)
	return d
}

// SetItems replaces the entries, typically before each render when
// checked states change.
func (d *DropdownMenu) SetItems(entries ...MenuEntry) { d.entries = entries }

// Items returns the current entries.
func (d *DropdownMenu) Items() []MenuEntry { return d.entries }

// Popover exposes the underlying popover for geometry and ids.
func (d *DropdownMenu) Popover() *Popover { return d.pop }

// IsOpen reports whether the menu is shown.
func (d *DropdownMenu) IsOpen() bool { return d.pop.IsOpen() }

// SetOpen applies an open state from the parent.
func (d *DropdownMenu) SetOpen(open bool) { d.pop.SetOpen(open) }

// Open requests the open state as a user action would.
func (d *DropdownMenu) Open() { d.pop.Open() }

// Close requests the closed state as a user action would.
func (d *DropdownMenu) Close() { d.pop.Close() }

// Dispose releases the popover.
func (d *DropdownMenu) Dispose() { d.pop.Dispose() }

// Select chooses the entry at index i as a click would. Disabled,
// label and separator entries are ignored.
func (d *DropdownMenu) Select(i int) {
	if i < 0 || i >= len(d.entries) {
		return
	}
	e := d.entries[i]
	if e.Disabled || e.Kind == MenuLabel || e.Kind == MenuSeparator {
		return
	}
	if e.Kind == MenuCheckbox {
		if e.OnCheckedChange != nil {
			e.OnCheckedChange(!e.Checked)
		}
	} else if e.OnSelect != nil {
		e.OnSelect()
	}
	d.pop.Close()
}

func (d *DropdownMenu) onTriggerKey(ev dom.Event) {
	switch ev.Key {
	case "Enter", " ":
		d.pop.Toggle()
	case "ArrowDown":
		d.pop.Open()
	}
}

// Render implements vdom.Component.
func (d *DropdownMenu) Render() *vdom.VNode {
	if d.pop.IsOpen() {
		d.pop.cfg.body = []any{d.renderEntries()}
	}
	return d.pop.Render()
}

func (d *DropdownMenu) renderEntries() []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(d.entries))
	for i, e := range d.entries {
		nodes = append(nodes, d.renderEntry(i, e))
	}
	return nodes
}

func (d *DropdownMenu) renderEntry(i int, e MenuEntry) *vdom.VNode {
	switch e.Kind {
	case MenuSeparator:
		return vdom.Div(vdom.Class("-mx-1 my-1 h-px bg-muted"), vdom.Role("separator"))
	case MenuLabel:
		return vdom.Div(vdom.Class("px-2 py-1.5 text-sm font-semibold text-foreground"), vdom.Text(e.Label))
	}

	role := "menuitem"
	var indicator *vdom.VNode
	switch e.Kind {
	case MenuCheckbox:
		role = "menuitemcheckbox"
		var mark *vdom.VNode
		if e.Checked {
			mark = iconCheck("h-4 w-4")
		}
		indicator = vdom.Span(vdom.Class("absolute left-2 flex h-3.5 w-3.5 items-center justify-center"), mark)
	case MenuRadio:
		role = "menuitemradio"
		var dot *vdom.VNode
		if e.Checked {
			dot = vdom.Div(vdom.Class("h-2 w-2 rounded-full bg-current"))
		}
		indicator = vdom.Span(vdom.Class("absolute left-2 flex h-3.5 w-3.5 items-center justify-center"), dot)
	}

	var checked vdom.Attr
	if indicator != nil {
		checked = vdom.AriaChecked(e.Checked)
	}
	var shortcut *vdom.VNode
	if e.Shortcut != "" {
		shortcut = vdom.Span(vdom.Class("ml-auto text-xs tracking-widest opacity-60"), vdom.Text(e.Shortcut))
	}
	var handlers []any
	tabIndex := -1
	if !e.Disabled {
		tabIndex = 0
		handlers = []any{
			vdom.OnClick(func() { d.Select(i) }),
			vdom.OnKeyDown(func(ev dom.Event) {
				if ev.Key == "Enter" || ev.Key == " " {
					d.Select(i)
				}
			}),
		}
	}

	cls := "relative flex cursor-pointer select-none items-center rounded-sm px-2 py-1.5 text-sm outline-none focus:bg-accent focus:text-accent-foreground"
	return vdom.Div(
		vdom.Role(role),
		vdom.TabIndex(tabIndex),
		vdom.AriaDisabled(e.Disabled),
		checked,
		vdom.Class(
			cls,
			vdom.ClassIf(indicator != nil, "pl-8"),
			vdom.ClassIf(e.Disabled, "pointer-events-none opacity-50"),
			vdom.ClassIf(e.Destructive, "text-destructive focus:text-destructive"),
		),
		handlers,
		indicator,
		vdom.Text(e.Label),
		shortcut,
	)
}
