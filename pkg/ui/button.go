package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant   Variant
	size      Size
	fullWidth bool
	disabled  bool
	loading   bool
	leftIcon  *vdom.VNode
	rightIcon *vdom.VNode
	tooltip   string
	ariaLabel string
	btnType   string
	className string
	children  []any
	onClick   func()
	attrs     map[string]string
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		variant: VariantPrimary,
		size:    SizeMd,
		btnType: "button",
	}
}

// Variant options for Button

// WithVariant sets the button variant.
func WithVariant(v Variant) ButtonOption {
	return func(c *buttonConfig) {
		c.variant = v
	}
}

// Primary sets the button to primary variant.
func Primary() ButtonOption { return WithVariant(VariantPrimary) }

// Secondary sets the button to secondary variant.
func Secondary() ButtonOption { return WithVariant(VariantSecondary) }

// Destructive sets the button to destructive variant.
func Destructive() ButtonOption { return WithVariant(VariantDestructive) }

// Outline sets the button to outline variant.
func Outline() ButtonOption { return WithVariant(VariantOutline) }

// Ghost sets the button to ghost variant.
func Ghost() ButtonOption { return WithVariant(VariantGhost) }

// Link sets the button to link variant.
func Link() ButtonOption { return WithVariant(VariantLink) }

// Size options for Button

// WithSize sets the button size.
func WithSize(s Size) ButtonOption {
	return func(c *buttonConfig) {
		c.size = s
	}
}

// Sm sets the button to small size.
func Sm() ButtonOption { return WithSize(SizeSm) }

// Lg sets the button to large size.
func Lg() ButtonOption { return WithSize(SizeLg) }

// Icon sets the button to icon size.
func Icon() ButtonOption { return WithSize(SizeIcon) }

// WithFullWidth stretches the button to its container.
func WithFullWidth(full bool) ButtonOption {
	return func(c *buttonConfig) {
		c.fullWidth = full
	}
}

// Behavior options

// WithDisabled sets the disabled state.
func WithDisabled(d bool) ButtonOption {
	return func(c *buttonConfig) {
		c.disabled = d
	}
}

// WithLoading shows a spinner and disables the button.
func WithLoading(l bool) ButtonOption {
	return func(c *buttonConfig) {
		c.loading = l
	}
}

// WithOnClick sets the click handler.
func WithOnClick(handler func()) ButtonOption {
	return func(c *buttonConfig) {
		c.onClick = handler
	}
}

// WithType sets the button type attribute (button, submit, reset).
func WithType(t string) ButtonOption {
	return func(c *buttonConfig) {
		c.btnType = t
	}
}

// WithLeftIcon renders icon before the label. Hidden while loading.
func WithLeftIcon(icon *vdom.VNode) ButtonOption {
	return func(c *buttonConfig) {
		c.leftIcon = icon
	}
}

// WithRightIcon renders icon after the label. Hidden while loading.
func WithRightIcon(icon *vdom.VNode) ButtonOption {
	return func(c *buttonConfig) {
		c.rightIcon = icon
	}
}

// WithTooltip sets the native hover title.
func WithTooltip(text string) ButtonOption {
	return func(c *buttonConfig) {
		c.tooltip = text
	}
}

// WithAriaLabel labels icon-only buttons for assistive technology.
func WithAriaLabel(label string) ButtonOption {
	return func(c *buttonConfig) {
		c.ariaLabel = label
	}
}

// WithChildren sets the button children.
func WithChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) {
		c.children = children
	}
}

// WithClass adds additional CSS classes.
func WithClass(className string) ButtonOption {
	return func(c *buttonConfig) {
		c.className = className
	}
}

// WithAttr adds a custom data attribute.
func WithAttr(name, value string) ButtonOption {
	return func(c *buttonConfig) {
		if c.attrs == nil {
			c.attrs = make(map[string]string)
		}
		c.attrs[name] = value
	}
}

var buttonVariantClasses = map[Variant]string{
	VariantPrimary:     "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	VariantOutline:     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	VariantGhost:       "hover:bg-accent hover:text-accent-foreground",
	VariantDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
	VariantLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizeClasses = map[Size]string{
	SizeXS:   "h-7 rounded px-2 text-xs",
	SizeSm:   "h-9 rounded-md px-3",
	SizeMd:   "h-10 px-4 py-2",
	SizeLg:   "h-11 rounded-md px-8",
	SizeXL:   "h-12 rounded-md px-10 text-base",
	SizeIcon: "h-10 w-10",
}

// Button renders a button element with the configured options.
func Button(opts ...ButtonOption) *vdom.VNode {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	inactive := cfg.disabled || cfg.loading

	classes := vdom.CN(
		"inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
		lookup(buttonVariantClasses, cfg.variant, VariantPrimary),
		lookup(buttonSizeClasses, cfg.size, SizeMd),
		vdom.ClassIf(cfg.fullWidth, "w-full"),
		vdom.ClassIf(cfg.loading, "cursor-not-allowed"),
		cfg.className,
	)

	attrs := []any{
		vdom.Class(classes),
		vdom.Type(cfg.btnType),
		vdom.DisabledIf(inactive),
		vdom.AriaDisabled(inactive),
		vdom.TitleAttr(cfg.tooltip),
		vdom.AriaLabel(cfg.ariaLabel),
	}

	if cfg.onClick != nil && !inactive {
		attrs = append(attrs, vdom.OnClick(cfg.onClick))
	}

	for name, value := range cfg.attrs {
		attrs = append(attrs, vdom.Data(name, value))
	}

	if cfg.loading {
		attrs = append(attrs, spinnerIcon())
	} else if cfg.leftIcon != nil {
		attrs = append(attrs, vdom.Span(vdom.Class("mr-2 flex items-center"), vdom.AriaHidden(true), cfg.leftIcon))
	}
	attrs = append(attrs, cfg.children...)
	if !cfg.loading && cfg.rightIcon != nil {
		attrs = append(attrs, vdom.Span(vdom.Class("ml-2 flex items-center"), vdom.AriaHidden(true), cfg.rightIcon))
	}

	return vdom.Button(attrs...)
}
