package ui

import "github.com/vango-dev/vangoui/pkg/vdom"

// lucide-style stroke icon.
func icon(class string, children ...any) *vdom.VNode {
	args := []any{
		vdom.Class(class),
		vdom.Attribute("xmlns", "http://www.w3.org/2000/svg"),
		vdom.Attribute("viewBox", "0 0 24 24"),
		vdom.Attribute("fill", "none"),
		vdom.Attribute("stroke", "currentColor"),
		vdom.Attribute("stroke-width", "2"),
		vdom.Attribute("stroke-linecap", "round"),
		vdom.Attribute("stroke-linejoin", "round"),
		vdom.AriaHidden(true),
	}
	return vdom.El("svg", append(args, children...)...)
}

func path(d string) *vdom.VNode {
	return vdom.El("path", vdom.Attribute("d", d))
}

func circle(cx, cy, r string) *vdom.VNode {
	return vdom.El("circle", vdom.Attribute("cx", cx), vdom.Attribute("cy", cy), vdom.Attribute("r", r))
}

func iconX(class string) *vdom.VNode {
	return icon(class, path("M18 6 6 18"), path("m6 6 12 12"))
}

func iconInfo(class string) *vdom.VNode {
	return icon(class, circle("12", "12", "10"), path("M12 16v-4"), path("M12 8h.01"))
}

func iconCheckCircle(class string) *vdom.VNode {
	return icon(class, path("M22 11.08V12a10 10 0 1 1-5.93-9.14"), path("m9 11 3 3L22 4"))
}

func iconAlertCircle(class string) *vdom.VNode {
	return icon(class, circle("12", "12", "10"), path("M12 8v4"), path("M12 16h.01"))
}

func iconAlertTriangle(class string) *vdom.VNode {
	return icon(class,
		path("m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3"),
		path("M12 9v4"),
		path("M12 17h.01"),
	)
}

func iconCheck(class string) *vdom.VNode {
	return icon(class, path("M20 6 9 17l-5-5"))
}

func iconChevronRight(class string) *vdom.VNode {
	return icon(class, path("m9 18 6-6-6-6"))
}

func iconChevronLeft(class string) *vdom.VNode {
	return icon(class, path("m15 18-6-6 6-6"))
}

func iconChevronDown(class string) *vdom.VNode {
	return icon(class, path("m6 9 6 6 6-6"))
}

func iconHome(class string) *vdom.VNode {
	return icon(class, path("m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"), path("M9 22V12h6v10"))
}

func iconMoreHorizontal(class string) *vdom.VNode {
	return icon(class, circle("12", "12", "1"), circle("19", "12", "1"), circle("5", "12", "1"))
}

// variantIcon returns the status glyph for toasts and alerts.
func variantIcon(v Variant, class string) *vdom.VNode {
	switch v {
	case VariantSuccess:
		return iconCheckCircle(class)
	case VariantWarning:
		return iconAlertTriangle(class)
	case VariantDestructive:
		return iconAlertCircle(class)
	default:
		return iconInfo(class)
	}
}

// spinnerIcon returns an SVG spinner icon for loading state.
func spinnerIcon() *vdom.VNode {
	return vdom.El("svg",
		vdom.Class("mr-2 h-4 w-4 animate-spin"),
		vdom.Attribute("xmlns", "http://www.w3.org/2000/svg"),
		vdom.Attribute("fill", "none"),
		vdom.Attribute("viewBox", "0 0 24 24"),
		vdom.AriaHidden(true),
		vdom.El("circle",
			vdom.Class("opacity-25"),
			vdom.Attribute("cx", "12"),
			vdom.Attribute("cy", "12"),
			vdom.Attribute("r", "10"),
			vdom.Attribute("stroke", "currentColor"),
			vdom.Attribute("stroke-width", "4"),
		),
		vdom.El("path",
			vdom.Class("opacity-75"),
			vdom.Attribute("fill", "currentColor"),
			vdom.Attribute("d", "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"),
		),
	)
}
