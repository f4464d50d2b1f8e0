package ui

import (
	"fmt"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// TabItem represents a single tab.
type TabItem struct {
	ID       string
	Label    string
	Content  *vdom.VNode
	Disabled bool
	// Badge is shown next to the label when non-empty.
	Badge string
	Icon  *vdom.VNode
}

// TabsOption configures a Tabs component.
type TabsOption func(*tabsConfig)

type tabsConfig struct {
	items        []TabItem
	value        *string
	defaultValue string
	onChange     func(string)
	variant      Variant
	size         Size
	orientation  Orientation
	fullWidth    bool
	className    string
}

func defaultTabsConfig() tabsConfig {
	return tabsConfig{
		variant:     VariantDefault,
		size:        SizeMd,
		orientation: Horizontal,
	}
}

// TabsItems sets the tabs.
func TabsItems(items ...TabItem) TabsOption {
	return func(c *tabsConfig) {
		c.items = items
	}
}

// TabsValue makes the tabs controlled.
func TabsValue(value string) TabsOption {
	return func(c *tabsConfig) {
		c.value = &value
	}
}

// TabsDefaultValue sets the initially active tab of uncontrolled tabs.
func TabsDefaultValue(value string) TabsOption {
	return func(c *tabsConfig) {
		c.defaultValue = value
	}
}

// TabsOnChange sets the change handler.
func TabsOnChange(handler func(string)) TabsOption {
	return func(c *tabsConfig) {
		c.onChange = handler
	}
}

// TabsVariant sets the visual style (default, pills, underline, bordered).
func TabsVariant(v Variant) TabsOption {
	return func(c *tabsConfig) {
		c.variant = v
	}
}

// TabsSize sets the tab size.
func TabsSize(s Size) TabsOption {
	return func(c *tabsConfig) {
		c.size = s
	}
}

// TabsOrientation lays the tab list out horizontally or vertically.
func TabsOrientation(o Orientation) TabsOption {
	return func(c *tabsConfig) {
		c.orientation = o
	}
}

// TabsFullWidth stretches the tabs over the list.
func TabsFullWidth() TabsOption {
	return func(c *tabsConfig) {
		c.fullWidth = true
	}
}

// TabsClass adds additional CSS classes.
func TabsClass(className string) TabsOption {
	return func(c *tabsConfig) {
		c.className = className
	}
}

var tabSizeClasses = map[Size]string{
	SizeSm: "text-xs px-3 py-1.5",
	SizeMd: "text-sm px-4 py-2",
	SizeLg: "text-base px-6 py-3",
}

type tabStyle struct {
	shape    string
	active   string
	inactive string
}

var tabStyles = map[Variant]tabStyle{
	VariantDefault: {
		"rounded-md",
		"bg-background text-foreground shadow-sm border border-border",
		"text-muted-foreground hover:text-foreground hover:bg-accent",
	},
	VariantPills: {
		"rounded-full",
		"bg-primary text-primary-foreground shadow-sm",
		"text-muted-foreground hover:text-foreground hover:bg-accent",
	},
	VariantUnderline: {
		"border-b-2 rounded-none",
		"border-primary text-primary",
		"border-transparent text-muted-foreground hover:text-foreground hover:border-border",
	},
	VariantBordered: {
		"border rounded-md",
		"border-primary bg-primary/5 text-primary",
		"border-border text-muted-foreground hover:text-foreground hover:border-primary/50",
	},
}

// Tabs is a tab list with a single visible panel. It implements
// vdom.Component.
type Tabs struct {
	cfg    tabsConfig
	active controllable[string]
}

// NewTabs creates tabs. The active tab defaults to the first item.
func NewTabs(opts ...TabsOption) *Tabs {
	cfg := defaultTabsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Tabs{cfg: cfg}
	t.active.onChange = cfg.onChange
	switch {
	case cfg.value != nil:
		t.active.controlled = true
		t.active.value = *cfg.value
	case cfg.defaultValue != "":
		t.active.value = cfg.defaultValue
	case len(cfg.items) > 0:
		t.active.value = cfg.items[0].ID
	}
	return t
}

// Value returns the active tab id.
func (t *Tabs) Value() string { return t.active.value }

// SetValue updates the active tab from the parent.
func (t *Tabs) SetValue(id string) { t.active.set(id) }

// Select activates a tab as if the user clicked it. Disabled and unknown
// tabs are ignored.
func (t *Tabs) Select(id string) {
	i := t.index(id)
	if i < 0 || t.cfg.items[i].Disabled {
		return
	}
	t.active.request(id)
}

func (t *Tabs) index(id string) int {
	for i, item := range t.cfg.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// step moves the selection dir places, skipping disabled tabs and
// wrapping around.
func (t *Tabs) step(dir int) {
	n := len(t.cfg.items)
	if n == 0 {
		return
	}
	i := t.index(t.active.value)
	if i < 0 && dir < 0 {
		i = n
	}
	for range n {
		i = ((i+dir)%n + n) % n
		if !t.cfg.items[i].Disabled {
			t.Select(t.cfg.items[i].ID)
			return
		}
	}
}

func (t *Tabs) onKey(ev dom.Event) {
	next, prev := "ArrowRight", "ArrowLeft"
	if t.cfg.orientation == Vertical {
		next, prev = "ArrowDown", "ArrowUp"
	}
	switch ev.Key {
	case next:
		t.step(1)
	case prev:
		t.step(-1)
	case "Home":
		t.stepFrom(-1, 1)
	case "End":
		t.stepFrom(len(t.cfg.items), -1)
	}
}

// stepFrom selects the first enabled tab walking from start in dir.
func (t *Tabs) stepFrom(start, dir int) {
	for i := start + dir; i >= 0 && i < len(t.cfg.items); i += dir {
		if !t.cfg.items[i].Disabled {
			t.Select(t.cfg.items[i].ID)
			return
		}
	}
}

// Render implements vdom.Component.
func (t *Tabs) Render() *vdom.VNode {
	cfg := t.cfg
	vertical := cfg.orientation == Vertical
	style, ok := tabStyles[cfg.variant]
	if !ok {
		style = tabStyles[VariantDefault]
	}

	listClasses := vdom.CN(
		"flex",
		vdom.ClassIfElse(vertical, "flex-col space-y-1", "space-x-1"),
		vdom.ClassIf(cfg.fullWidth && !vertical, "w-full"),
	)
	switch cfg.variant {
	case VariantUnderline:
		listClasses = vdom.CN(listClasses, vdom.ClassIfElse(vertical, "border-r border-border", "border-b border-border"))
	case VariantBordered:
		listClasses = vdom.CN(listClasses, "p-1 bg-muted rounded-lg")
	}

	var active *TabItem
	for i := range cfg.items {
		if cfg.items[i].ID == t.active.value {
			active = &cfg.items[i]
		}
	}

	var panel *vdom.VNode
	if active != nil && active.Content != nil {
		panel = vdom.Div(
			vdom.Role("tabpanel"),
			vdom.ID(fmt.Sprintf("tabpanel-%s", active.ID)),
			vdom.AriaLabelledBy(fmt.Sprintf("tab-%s", active.ID)),
			vdom.Class("mt-4", vdom.ClassIf(vertical, "mt-0 flex-1")),
			active.Content,
		)
	}

	return vdom.Div(
		vdom.Class("w-full", vdom.ClassIf(vertical, "flex gap-6"), cfg.className),
		vdom.Div(
			vdom.Role("tablist"),
			vdom.AriaOrientation(string(cfg.orientation)),
			vdom.Class(listClasses),
			vdom.Range(cfg.items, func(item TabItem, _ int) *vdom.VNode {
				return t.tab(item, item.ID == t.active.value, style)
			}),
		),
		panel,
	)
}

func (t *Tabs) tab(item TabItem, isActive bool, style tabStyle) *vdom.VNode {
	cfg := t.cfg
	id := item.ID

	var icon, badge *vdom.VNode
	if item.Icon != nil {
		icon = vdom.Span(vdom.Class("flex-shrink-0"), item.Icon)
	}
	if item.Badge != "" {
		badge = Badge(BadgeSize(SizeSm), BadgeSecondary(), BadgeText(item.Badge))
	}

	tabIndex := -1
	if isActive {
		tabIndex = 0
	}

	attrs := []any{
		vdom.Key(id),
		vdom.Type("button"),
		vdom.Role("tab"),
		vdom.ID("tab-" + id),
		vdom.AriaSelected(isActive),
		vdom.AriaControls("tabpanel-" + id),
		vdom.TabIndex(tabIndex),
		vdom.DisabledIf(item.Disabled),
		vdom.Class(
			"inline-flex items-center justify-center space-x-2 font-medium transition-all duration-200 focus:outline-none focus:ring-2 focus:ring-primary focus:ring-offset-2",
			lookup(tabSizeClasses, cfg.size, SizeMd),
			vdom.ClassIf(cfg.fullWidth, "flex-1"),
			vdom.ClassIf(item.Disabled, "opacity-50 cursor-not-allowed"),
			style.shape,
			vdom.ClassIfElse(isActive, style.active, style.inactive),
		),
		icon,
		vdom.Span(vdom.Text(item.Label)),
		badge,
	}
	if !item.Disabled {
		attrs = append(attrs, vdom.OnClick(func() { t.Select(id) }), vdom.OnKeyDown(t.onKey))
	}
	return vdom.Button(attrs...)
}
