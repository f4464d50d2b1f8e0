package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// AlertOption configures an Alert component.
type AlertOption func(*alertConfig)

type alertConfig struct {
	variant     Variant
	title       string
	description string
	icon        *vdom.VNode
	hideIcon    bool
	dismissible bool
	onDismiss   func()
	className   string
	children    []any
}

func defaultAlertConfig() alertConfig {
	return alertConfig{
		variant: VariantDefault,
	}
}

// AlertVariant sets the alert variant.
func AlertVariant(v Variant) AlertOption {
	return func(c *alertConfig) {
		c.variant = v
	}
}

// AlertDestructive sets the alert to destructive variant.
func AlertDestructive() AlertOption { return AlertVariant(VariantDestructive) }

// AlertSuccess sets the alert to success variant.
func AlertSuccess() AlertOption { return AlertVariant(VariantSuccess) }

// AlertWarning sets the alert to warning variant.
func AlertWarning() AlertOption { return AlertVariant(VariantWarning) }

// AlertInfo sets the alert to info variant.
func AlertInfo() AlertOption { return AlertVariant(VariantInfo) }

// AlertTitle sets the alert title.
func AlertTitle(title string) AlertOption {
	return func(c *alertConfig) {
		c.title = title
	}
}

// AlertDescription sets the alert description.
func AlertDescription(description string) AlertOption {
	return func(c *alertConfig) {
		c.description = description
	}
}

// AlertIcon replaces the variant's default icon.
func AlertIcon(icon *vdom.VNode) AlertOption {
	return func(c *alertConfig) {
		c.icon = icon
	}
}

// AlertHideIcon suppresses the default icon.
func AlertHideIcon() AlertOption {
	return func(c *alertConfig) {
		c.hideIcon = true
	}
}

// AlertDismissible adds a dismiss button that calls onDismiss.
func AlertDismissible(onDismiss func()) AlertOption {
	return func(c *alertConfig) {
		c.dismissible = true
		c.onDismiss = onDismiss
	}
}

// AlertClass adds additional CSS classes.
func AlertClass(className string) AlertOption {
	return func(c *alertConfig) {
		c.className = className
	}
}

// AlertChildren sets the alert children.
func AlertChildren(children ...any) AlertOption {
	return func(c *alertConfig) {
		c.children = children
	}
}

var alertVariantClasses = map[Variant]string{
	VariantDefault:     "bg-background text-foreground",
	VariantDestructive: "border-destructive/50 bg-destructive/10 text-destructive",
	VariantSuccess:     "border-success/50 bg-success/10 text-success",
	VariantWarning:     "border-warning/50 bg-warning/10 text-warning",
	VariantInfo:        "border-primary/50 bg-primary/10 text-primary",
}

// Alert renders an alert component.
func Alert(opts ...AlertOption) *vdom.VNode {
	cfg := defaultAlertConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := vdom.CN(
		"relative w-full rounded-lg border p-4",
		lookup(alertVariantClasses, cfg.variant, VariantDefault),
		cfg.className,
	)

	icon := cfg.icon
	if icon == nil && !cfg.hideIcon {
		icon = variantIcon(cfg.variant, "h-4 w-4")
	}

	var iconSlot *vdom.VNode
	if icon != nil {
		iconSlot = vdom.Div(vdom.Class("flex-shrink-0"), icon)
	}

	body := []any{vdom.Class(vdom.CN("flex-1", vdom.ClassIf(icon != nil, "ml-3")))}
	if cfg.title != "" {
		body = append(body, vdom.H3(vdom.Class("text-sm font-medium mb-1"), vdom.Text(cfg.title)))
	}
	content := []any{vdom.Class("text-sm")}
	if cfg.description != "" {
		content = append(content, vdom.Text(cfg.description))
	}
	content = append(content, cfg.children...)
	body = append(body, vdom.Div(content...))

	var dismiss *vdom.VNode
	if cfg.dismissible {
		btn := []any{
			vdom.Type("button"),
			vdom.Class("inline-flex rounded-md p-1.5 hover:bg-black/5 focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2"),
			vdom.AriaLabel("Dismiss alert"),
			iconX("h-4 w-4"),
		}
		if cfg.onDismiss != nil {
			btn = append(btn, vdom.OnClick(cfg.onDismiss))
		}
		dismiss = vdom.Div(vdom.Class("ml-auto pl-3"),
			vdom.Div(vdom.Class("-mx-1.5 -my-1.5"), vdom.Button(btn...)),
		)
	}

	return vdom.Div(
		vdom.Role("alert"),
		vdom.Class(classes),
		vdom.Div(vdom.Class("flex"), iconSlot, vdom.Div(body...), dismiss),
	)
}
