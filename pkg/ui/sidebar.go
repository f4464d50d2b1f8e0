package ui

import (
	"fmt"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// SidebarItem is one navigation entry. Items with children toggle their
// submenu on click instead of calling OnClick.
type SidebarItem struct {
	ID       string
	Label    string
	Icon     *vdom.VNode
	Href     string
	OnClick  func()
	Active   bool
	Badge    string
	Children []SidebarItem
}

// SidebarOption configures a Sidebar component.
type SidebarOption func(*sidebarConfig)

type sidebarConfig struct {
	items            []SidebarItem
	header           *vdom.VNode
	footer           *vdom.VNode
	width            Size
	variant          Variant
	collapsible      bool
	collapsed        *bool
	defaultCollapsed bool
	onCollapsed      func(bool)
	className        string
}

func defaultSidebarConfig() sidebarConfig {
	return sidebarConfig{
		width:   SizeMd,
		variant: VariantDefault,
	}
}

// SidebarItems sets the navigation entries.
func SidebarItems(items ...SidebarItem) SidebarOption {
	return func(c *sidebarConfig) {
		c.items = items
	}
}

// SidebarHeader sets the header content.
func SidebarHeader(header *vdom.VNode) SidebarOption {
	return func(c *sidebarConfig) {
		c.header = header
	}
}

// SidebarFooter sets the footer content.
func SidebarFooter(footer *vdom.VNode) SidebarOption {
	return func(c *sidebarConfig) {
		c.footer = footer
	}
}

// SidebarWidth sets the expanded width (sm, md, lg).
func SidebarWidth(s Size) SidebarOption {
	return func(c *sidebarConfig) {
		c.width = s
	}
}

// SidebarVariant sets the style (default, bordered, floating).
func SidebarVariant(v Variant) SidebarOption {
	return func(c *sidebarConfig) {
		c.variant = v
	}
}

// SidebarCollapsible adds the collapse toggle.
func SidebarCollapsible() SidebarOption {
	return func(c *sidebarConfig) {
		c.collapsible = true
	}
}

// SidebarCollapsed makes the collapsed state controlled.
func SidebarCollapsed(collapsed bool) SidebarOption {
	return func(c *sidebarConfig) {
		c.collapsed = &collapsed
	}
}

// SidebarDefaultCollapsed sets the initial collapsed state.
func SidebarDefaultCollapsed(collapsed bool) SidebarOption {
	return func(c *sidebarConfig) {
		c.defaultCollapsed = collapsed
	}
}

// SidebarOnCollapsedChange sets the collapse toggle handler.
func SidebarOnCollapsedChange(handler func(bool)) SidebarOption {
	return func(c *sidebarConfig) {
		c.onCollapsed = handler
	}
}

// SidebarClass adds additional CSS classes.
func SidebarClass(className string) SidebarOption {
	return func(c *sidebarConfig) {
		c.className = className
	}
}

var sidebarWidthClasses = map[Size]string{
	SizeSm: "w-48",
	SizeMd: "w-64",
	SizeLg: "w-80",
}

var sidebarVariantClasses = map[Variant]string{
	VariantDefault:  "bg-background border-r border-border",
	VariantBordered: "bg-background border border-border rounded-lg",
	VariantFloating: "bg-background border border-border rounded-lg shadow-lg",
}

// Sidebar is a vertical navigation panel. It implements vdom.Component.
type Sidebar struct {
	cfg       sidebarConfig
	collapsed controllable[bool]
	expanded  map[string]bool
}

// NewSidebar creates a sidebar.
func NewSidebar(opts ...SidebarOption) *Sidebar {
	cfg := defaultSidebarConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Sidebar{cfg: cfg, expanded: make(map[string]bool)}
	s.collapsed.onChange = cfg.onCollapsed
	if cfg.collapsed != nil {
		s.collapsed.controlled = true
		s.collapsed.value = *cfg.collapsed
	} else {
		s.collapsed.value = cfg.defaultCollapsed
	}
	return s
}

// Collapsed reports whether the sidebar is collapsed.
func (s *Sidebar) Collapsed() bool { return s.collapsed.value }

// SetCollapsed updates the collapsed state from the parent.
func (s *Sidebar) SetCollapsed(collapsed bool) { s.collapsed.set(collapsed) }

// ToggleCollapsed acts like a click on the collapse toggle.
func (s *Sidebar) ToggleCollapsed() { s.collapsed.request(!s.collapsed.value) }

// Expanded reports whether the item's submenu is open.
func (s *Sidebar) Expanded(id string) bool { return s.expanded[id] }

// Toggle opens or closes an item's submenu.
func (s *Sidebar) Toggle(id string) {
	if s.expanded[id] {
		delete(s.expanded, id)
		return
	}
	s.expanded[id] = true
}

// SetItems replaces the navigation entries, keeping collapsed and
// expanded state. Parents call it to move the Active flag.
func (s *Sidebar) SetItems(items ...SidebarItem) { s.cfg.items = items }

// Render implements vdom.Component.
func (s *Sidebar) Render() *vdom.VNode {
	cfg := s.cfg
	collapsed := s.collapsed.value

	width := lookup(sidebarWidthClasses, cfg.width, SizeMd)
	if collapsed {
		width = "w-16"
	}

	var header, footer, toggle *vdom.VNode
	if cfg.header != nil {
		header = vdom.Div(
			vdom.Class("flex items-center justify-between p-4 border-b border-border", vdom.ClassIf(collapsed, "justify-center")),
			cfg.header,
		)
	}
	if cfg.footer != nil {
		footer = vdom.Div(
			vdom.Class("p-4 border-t border-border", vdom.ClassIf(collapsed, "flex justify-center")),
			cfg.footer,
		)
	}
	if cfg.collapsible {
		label := "Collapse sidebar"
		content := []any{iconChevronLeft("h-4 w-4 mr-2"), vdom.Text("Collapse")}
		if collapsed {
			label = "Expand sidebar"
			content = []any{iconChevronRight("h-4 w-4")}
		}
		toggle = vdom.Div(vdom.Class("p-2 border-t border-border"),
			Button(
				Ghost(),
				Sm(),
				WithClass("w-full"),
				WithAriaLabel(label),
				WithOnClick(s.ToggleCollapsed),
				WithChildren(content...),
			),
		)
	}

	return vdom.Div(
		vdom.Class(
			"flex flex-col h-full transition-all duration-200",
			width,
			lookup(sidebarVariantClasses, cfg.variant, VariantDefault),
			cfg.className,
		),
		vdom.Data("collapsed", fmt.Sprint(collapsed)),
		header,
		vdom.Nav(
			vdom.Class("flex-1 overflow-y-auto p-4 space-y-1"),
			vdom.Range(cfg.items, func(item SidebarItem, _ int) *vdom.VNode {
				return s.item(item, 0, collapsed)
			}),
		),
		footer,
		toggle,
	)
}

func (s *Sidebar) item(item SidebarItem, level int, collapsed bool) *vdom.VNode {
	hasChildren := len(item.Children) > 0
	expanded := s.expanded[item.ID]
	id := item.ID

	padding := "pl-4"
	if !collapsed && level > 0 {
		padding = fmt.Sprintf("pl-%d", 4+level*4)
	}

	click := item.OnClick
	if hasChildren {
		click = func() { s.Toggle(id) }
	}

	var icon *vdom.VNode
	if item.Icon != nil {
		icon = vdom.Div(vdom.Class("flex-shrink-0 w-5 h-5 flex items-center justify-center"), item.Icon)
	}

	var label, trailing *vdom.VNode
	var title vdom.Attr
	if collapsed {
		title = vdom.TitleAttr(item.Label)
	} else {
		label = vdom.Span(vdom.Class("truncate"), vdom.Text(item.Label))
		var badge, chevron *vdom.VNode
		if item.Badge != "" {
			badge = Badge(BadgeSize(SizeSm), BadgeDestructive(), BadgeText(item.Badge))
		}
		if hasChildren {
			chevron = iconChevronDown(vdom.CN("h-4 w-4 transition-transform", vdom.ClassIf(expanded, "rotate-180")))
		}
		trailing = vdom.Div(vdom.Class("flex items-center space-x-2"), badge, chevron)
	}

	attrs := []any{
		vdom.Type("button"),
		vdom.Class(
			"w-full flex items-center justify-between px-3 py-2 text-sm font-medium rounded-md transition-colors group",
			vdom.ClassIfElse(item.Active, "text-primary bg-primary/10", "text-muted-foreground hover:text-foreground hover:bg-accent"),
			padding,
		),
		title,
		vdom.Div(vdom.Class("flex items-center space-x-3 min-w-0"), icon, label),
		trailing,
	}
	if item.Active {
		attrs = append(attrs, vdom.AriaCurrent("page"))
	}
	if hasChildren {
		attrs = append(attrs, vdom.AriaExpanded(expanded))
	}
	if click != nil {
		attrs = append(attrs, vdom.OnClick(click))
	}

	var entry *vdom.VNode
	if item.Href != "" && !hasChildren && item.OnClick == nil {
		entry = vdom.A(append([]any{vdom.Href(item.Href)}, attrs[1:]...)...)
	} else {
		entry = vdom.Button(attrs...)
	}

	var submenu *vdom.VNode
	if hasChildren && expanded && !collapsed {
		submenu = vdom.Div(
			vdom.Class("mt-1 space-y-1"),
			vdom.Range(item.Children, func(child SidebarItem, _ int) *vdom.VNode {
				return s.item(child, level+1, collapsed)
			}),
		)
	}

	return vdom.Div(vdom.Key(id), entry, submenu)
}
