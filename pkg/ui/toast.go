package ui

import (
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

type toastStyle struct {
	container string
	icon      string
}

var toastStyles = map[toast.Variant]toastStyle{
	toast.VariantDefault:     {"bg-background border-border", "text-foreground"},
	toast.VariantSuccess:     {"bg-success/10 border-success/20", "text-success"},
	toast.VariantWarning:     {"bg-warning/10 border-warning/20", "text-warning"},
	toast.VariantDestructive: {"bg-destructive/10 border-destructive/20", "text-destructive"},
	toast.VariantInfo:        {"bg-primary/10 border-primary/20", "text-primary"},
}

var toastPositionClasses = map[toast.Position]string{
	toast.TopRight:     "top-4 right-4",
	toast.TopLeft:      "top-4 left-4",
	toast.BottomRight:  "bottom-4 right-4",
	toast.BottomLeft:   "bottom-4 left-4",
	toast.TopCenter:    "top-4 left-1/2 transform -translate-x-1/2",
	toast.BottomCenter: "bottom-4 left-1/2 transform -translate-x-1/2",
}

// toastIcon maps a toast variant onto the shared status glyphs.
func toastIcon(v toast.Variant, class string) *vdom.VNode {
	switch v {
	case toast.VariantSuccess:
		return variantIcon(VariantSuccess, class)
	case toast.VariantWarning:
		return variantIcon(VariantWarning, class)
	case toast.VariantDestructive:
		return variantIcon(VariantDestructive, class)
	default:
		return variantIcon(VariantInfo, class)
	}
}

// ToastView renders a single toast. onClose is wired to the close button;
// pass nil to omit it.
func ToastView(t toast.Toast, onClose func()) *vdom.VNode {
	style, ok := toastStyles[t.Variant]
	if !ok {
		style = toastStyles[toast.VariantDefault]
	}

	classes := vdom.CN(
		"relative flex w-full max-w-sm items-start gap-3 rounded-lg border p-4 shadow-lg transition-all duration-150",
		style.container,
		vdom.ClassIfElse(t.State == toast.Dismissing,
			"animate-out slide-out-to-right-full",
			"animate-in slide-in-from-right-full"),
	)

	var iconSlot *vdom.VNode
	if !t.HideIcon {
		iconSlot = vdom.Div(vdom.Class("flex-shrink-0"), toastIcon(t.Variant, vdom.CN("h-5 w-5", style.icon)))
	}

	body := []any{vdom.Class("flex-1 min-w-0")}
	if t.Title != "" {
		body = append(body, vdom.Div(vdom.Class("text-sm font-semibold text-foreground mb-1"), vdom.Text(t.Title)))
	}
	if t.Description != "" {
		body = append(body, vdom.Div(vdom.Class("text-sm text-muted-foreground"), vdom.Text(t.Description)))
	}
	if t.Action != nil {
		body = append(body, vdom.Div(vdom.Class("mt-3"),
			Button(
				Sm(),
				Outline(),
				WithClass("h-8"),
				WithOnClick(t.Action.OnClick),
				WithChildren(vdom.Text(t.Action.Label)),
			),
		))
	}

	var closeBtn *vdom.VNode
	if onClose != nil {
		closeBtn = vdom.Button(
			vdom.Type("button"),
			vdom.Class("flex-shrink-0 rounded-md p-1 text-muted-foreground hover:text-foreground focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2"),
			vdom.AriaLabel("Close notification"),
			vdom.OnClick(onClose),
			iconX("h-4 w-4"),
		)
	}

	return vdom.Div(
		vdom.Key(t.ID),
		vdom.Data("toast-id", t.ID),
		vdom.Data("state", t.State.String()),
		vdom.Role("alert"),
		vdom.AriaLive("polite"),
		vdom.AriaAtomic(true),
		vdom.Class(classes),
		iconSlot,
		vdom.Div(body...),
		closeBtn,
	)
}

// ToastViewport renders the provider's queue as a fixed stack. Close
// buttons dismiss through the provider so the exit animation plays.
func ToastViewport(p *toast.Provider) *vdom.VNode {
	toasts := p.Toasts()
	pos := p.Position()
	placement, ok := toastPositionClasses[pos]
	if !ok {
		placement = toastPositionClasses[toast.TopRight]
	}

	return vdom.Div(
		vdom.Class("fixed z-50 flex flex-col gap-2 pointer-events-none", placement),
		vdom.Data("position", string(pos)),
		vdom.AriaLabel("Notifications"),
		vdom.Range(toasts, func(t toast.Toast, _ int) *vdom.VNode {
			id := t.ID
			return vdom.Div(
				vdom.Key(id),
				vdom.Class("pointer-events-auto"),
				ToastView(t, func() { p.Dismiss(id) }),
			)
		}),
	)
}
