package vdom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", CN(classes...)) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Style builds a style attribute from property/value pairs. Properties are
// emitted in sorted order so renders are deterministic.
func Style(props map[string]string) Attr {
	if len(props) == 0 {
		return Attr{}
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(props[k])
		b.WriteByte(';')
	}
	return attr("style", b.String())
}

// Px formats a pixel length for style values.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Pct formats a percentage for style values.
func Pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr {
	if label == "" {
		return Attr{}
	}
	return attr("aria-label", label)
}

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// AriaDisabled sets the aria-disabled attribute.
func AriaDisabled(disabled bool) Attr { return attr("aria-disabled", disabled) }

// AriaChecked sets the aria-checked attribute.
func AriaChecked(checked bool) Attr { return attr("aria-checked", checked) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return attr("aria-selected", selected) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// AriaAtomic sets the aria-atomic attribute.
func AriaAtomic(atomic bool) Attr { return attr("aria-atomic", atomic) }

// AriaOrientation sets the aria-orientation attribute.
func AriaOrientation(orientation string) Attr { return attr("aria-orientation", orientation) }

// AriaValueNow sets the aria-valuenow attribute.
func AriaValueNow(value float64) Attr { return attr("aria-valuenow", value) }

// AriaValueMin sets the aria-valuemin attribute.
func AriaValueMin(value float64) Attr { return attr("aria-valuemin", value) }

// AriaValueMax sets the aria-valuemax attribute.
func AriaValueMax(value float64) Attr { return attr("aria-valuemax", value) }

// AriaValueText sets the aria-valuetext attribute.
func AriaValueText(text string) Attr { return attr("aria-valuetext", text) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr {
	if title == "" {
		return Attr{}
	}
	return attr("title", title)
}

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr {
	if name == "" {
		return Attr{}
	}
	return attr("name", name)
}

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// For sets the for attribute of a label.
func For(id string) Attr { return attr("for", id) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// DisabledIf sets the disabled attribute when cond is true.
func DisabledIf(cond bool) Attr {
	if !cond {
		return Attr{}
	}
	return Disabled()
}

// Required sets the required attribute.
func Required() Attr { return attr("required", true) }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", true) }

// Attribute creates an arbitrary attribute. Use for SVG attributes and
// anything without a dedicated helper.
func Attribute(key string, value any) Attr { return attr(key, value) }

// Attrf creates an attribute with a formatted string value.
func Attrf(key, format string, args ...any) Attr {
	return attr(key, fmt.Sprintf(format, args...))
}
