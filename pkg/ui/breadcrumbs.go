package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// DefaultBreadcrumbMaxItems is the trail length before the middle collapses.
const DefaultBreadcrumbMaxItems = 5

// BreadcrumbItem is one step of the trail. Items with OnClick render as
// buttons, others as links to Href.
type BreadcrumbItem struct {
	Label   string
	Href    string
	OnClick func()
	Icon    *vdom.VNode
	Current bool

	ellipsis bool
}

// BreadcrumbsOption configures Breadcrumbs.
type BreadcrumbsOption func(*breadcrumbsConfig)

type breadcrumbsConfig struct {
	items     []BreadcrumbItem
	separator *vdom.VNode
	maxItems  int
	showHome  bool
	size      Size
	className string
}

func defaultBreadcrumbsConfig() breadcrumbsConfig {
	return breadcrumbsConfig{
		maxItems: DefaultBreadcrumbMaxItems,
		size:     SizeMd,
	}
}

// BreadcrumbsItems sets the trail.
func BreadcrumbsItems(items ...BreadcrumbItem) BreadcrumbsOption {
	return func(c *breadcrumbsConfig) {
		c.items = items
	}
}

// BreadcrumbsSeparator replaces the chevron between items.
func BreadcrumbsSeparator(sep *vdom.VNode) BreadcrumbsOption {
	return func(c *breadcrumbsConfig) {
		c.separator = sep
	}
}

// BreadcrumbsMaxItems sets how many items show before the trail collapses
// to first, ellipsis, and the last two.
func BreadcrumbsMaxItems(n int) BreadcrumbsOption {
	return func(c *breadcrumbsConfig) {
		if n > 0 {
			c.maxItems = n
		}
	}
}

// BreadcrumbsShowHome prepends a Home item linking to "/".
func BreadcrumbsShowHome() BreadcrumbsOption {
	return func(c *breadcrumbsConfig) {
		c.showHome = true
	}
}

// BreadcrumbsSize sets the text size (sm, md, lg).
func BreadcrumbsSize(s Size) BreadcrumbsOption {
	return func(c *breadcrumbsConfig) {
		c.size = s
	}
}

// BreadcrumbsClass adds additional CSS classes.
func BreadcrumbsClass(className string) BreadcrumbsOption {
	return func(c *breadcrumbsConfig) {
		c.className = className
	}
}

var breadcrumbSizeClasses = map[Size]string{
	SizeSm: "text-xs",
	SizeMd: "text-sm",
	SizeLg: "text-base",
}

// visibleCrumbs applies the Home item and the overflow collapse.
func visibleCrumbs(cfg breadcrumbsConfig) []BreadcrumbItem {
	all := cfg.items
	if cfg.showHome {
		home := BreadcrumbItem{Label: "Home", Href: "/", Icon: iconHome("h-4 w-4")}
		all = append([]BreadcrumbItem{home}, all...)
	}
	if len(all) <= cfg.maxItems || len(all) <= 3 {
		return all
	}
	out := make([]BreadcrumbItem, 0, 4)
	out = append(out, all[0])
	out = append(out, BreadcrumbItem{Label: "...", Icon: iconMoreHorizontal("h-4 w-4"), ellipsis: true})
	return append(out, all[len(all)-2:]...)
}

// Breadcrumbs renders a navigation trail.
func Breadcrumbs(opts ...BreadcrumbsOption) *vdom.VNode {
	cfg := defaultBreadcrumbsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sep := cfg.separator
	items := visibleCrumbs(cfg)
	last := len(items) - 1

	return vdom.Nav(
		vdom.AriaLabel("Breadcrumb"),
		vdom.Class(lookup(breadcrumbSizeClasses, cfg.size, SizeMd), cfg.className),
		vdom.Ol(
			vdom.Class("flex items-center space-x-2"),
			vdom.Range(items, func(item BreadcrumbItem, i int) *vdom.VNode {
				var separator *vdom.VNode
				if i < last {
					glyph := sep
					if glyph == nil {
						glyph = iconChevronRight("h-4 w-4")
					}
					separator = vdom.Span(vdom.Class("text-muted-foreground flex-shrink-0"), vdom.AriaHidden(true), glyph)
				}
				return vdom.Li(
					vdom.Key(i),
					vdom.Class("flex items-center space-x-2"),
					crumb(item, i == last),
					separator,
				)
			}),
		),
	)
}

func crumb(item BreadcrumbItem, isLast bool) *vdom.VNode {
	var icon *vdom.VNode
	if item.Icon != nil {
		icon = vdom.Span(vdom.Class("flex-shrink-0"), item.Icon)
	}
	content := vdom.Span(
		vdom.Class("flex items-center space-x-1"),
		icon,
		vdom.Span(vdom.Class("truncate", vdom.ClassIf(item.ellipsis, "cursor-default")), vdom.Text(item.Label)),
	)

	if isLast || item.Current || item.ellipsis {
		current := isLast || item.Current
		var aria vdom.Attr
		if current {
			aria = vdom.AriaCurrent("page")
		}
		return vdom.Span(
			vdom.Class(
				"flex items-center",
				vdom.ClassIfElse(current, "text-foreground font-medium", "text-muted-foreground"),
				vdom.ClassIf(item.ellipsis, "cursor-default"),
			),
			aria,
			content,
		)
	}

	link := "flex items-center text-muted-foreground hover:text-foreground transition-colors"
	if item.OnClick != nil {
		return vdom.Button(vdom.Type("button"), vdom.Class(link), vdom.OnClick(item.OnClick), content)
	}
	return vdom.A(vdom.Href(item.Href), vdom.Class(link), content)
}
