package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// BadgeOption configures a Badge component.
type BadgeOption func(*badgeConfig)

type badgeConfig struct {
	variant     Variant
	size        Size
	className   string
	text        string
	icon        *vdom.VNode
	dismissible bool
	onDismiss   func()
	children    []any
}

func defaultBadgeConfig() badgeConfig {
	return badgeConfig{
		variant: VariantDefault,
		size:    SizeMd,
	}
}

// BadgeVariant sets the badge variant.
func BadgeVariant(v Variant) BadgeOption {
	return func(c *badgeConfig) {
		c.variant = v
	}
}

// BadgeSecondary sets the badge to secondary variant.
func BadgeSecondary() BadgeOption { return BadgeVariant(VariantSecondary) }

// BadgeDestructive sets the badge to destructive variant.
func BadgeDestructive() BadgeOption { return BadgeVariant(VariantDestructive) }

// BadgeOutline sets the badge to outline variant.
func BadgeOutline() BadgeOption { return BadgeVariant(VariantOutline) }

// BadgeSuccess sets the badge to success variant.
func BadgeSuccess() BadgeOption { return BadgeVariant(VariantSuccess) }

// BadgeWarning sets the badge to warning variant.
func BadgeWarning() BadgeOption { return BadgeVariant(VariantWarning) }

// BadgeSize sets the badge size (sm, md, lg).
func BadgeSize(s Size) BadgeOption {
	return func(c *badgeConfig) {
		c.size = s
	}
}

// BadgeIcon renders icon before the text.
func BadgeIcon(icon *vdom.VNode) BadgeOption {
	return func(c *badgeConfig) {
		c.icon = icon
	}
}

// BadgeDismissible adds a remove button that calls onDismiss.
func BadgeDismissible(onDismiss func()) BadgeOption {
	return func(c *badgeConfig) {
		c.dismissible = true
		c.onDismiss = onDismiss
	}
}

// BadgeClass adds additional CSS classes.
func BadgeClass(className string) BadgeOption {
	return func(c *badgeConfig) {
		c.className = className
	}
}

// BadgeText sets the badge text.
func BadgeText(text string) BadgeOption {
	return func(c *badgeConfig) {
		c.text = text
	}
}

// BadgeChildren sets the badge children.
func BadgeChildren(children ...any) BadgeOption {
	return func(c *badgeConfig) {
		c.children = children
	}
}

var badgeVariantClasses = map[Variant]string{
	VariantDefault:     "border-transparent bg-primary text-primary-foreground hover:bg-primary/80",
	VariantPrimary:     "border-transparent bg-primary text-primary-foreground hover:bg-primary/80",
	VariantSecondary:   "border-transparent bg-secondary text-secondary-foreground hover:bg-secondary/80",
	VariantDestructive: "border-transparent bg-destructive text-destructive-foreground hover:bg-destructive/80",
	VariantOutline:     "text-foreground",
	VariantSuccess:     "border-transparent bg-success text-success-foreground hover:bg-success/80",
	VariantWarning:     "border-transparent bg-warning text-warning-foreground hover:bg-warning/80",
}

var badgeSizeClasses = map[Size]string{
	SizeSm: "px-2 py-0.5 text-xs",
	SizeMd: "px-2.5 py-0.5 text-xs",
	SizeLg: "px-3 py-1 text-sm",
}

// Badge renders a badge/tag element.
func Badge(opts ...BadgeOption) *vdom.VNode {
	cfg := defaultBadgeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := vdom.CN(
		"inline-flex items-center rounded-full border font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2",
		lookup(badgeVariantClasses, cfg.variant, VariantDefault),
		lookup(badgeSizeClasses, cfg.size, SizeMd),
		cfg.className,
	)

	attrs := []any{vdom.Class(classes)}
	if cfg.icon != nil {
		attrs = append(attrs, vdom.Span(vdom.Class("mr-1 flex items-center"), vdom.AriaHidden(true), cfg.icon))
	}
	if cfg.text != "" {
		attrs = append(attrs, vdom.Text(cfg.text))
	}
	attrs = append(attrs, cfg.children...)

	if cfg.dismissible {
		btn := []any{
			vdom.Type("button"),
			vdom.Class("ml-1 inline-flex items-center justify-center rounded-full hover:bg-black/10 focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2"),
			vdom.AriaLabel("Remove badge"),
			iconX("h-3 w-3"),
		}
		if cfg.onDismiss != nil {
			btn = append(btn, vdom.OnClick(cfg.onDismiss))
		}
		attrs = append(attrs, vdom.Button(btn...))
	}

	return vdom.Div(attrs...)
}
