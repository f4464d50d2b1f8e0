package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// SwitchOption configures a Switch component.
type SwitchOption func(*switchConfig)

type switchConfig struct {
	id             string
	name           string
	value          string
	checked        *bool
	defaultChecked bool
	disabled       bool
	required       bool
	label          string
	description    string
	errorText      string
	successText    string
	size           Size
	color          Color
	className      string
	labelClass     string
	containerClass string
	onChange       func(bool)
}

func defaultSwitchConfig() switchConfig {
	return switchConfig{
		size:  SizeMd,
		color: ColorPrimary,
	}
}

// SwitchID sets the input id used by the label.
func SwitchID(id string) SwitchOption {
	return func(c *switchConfig) {
		c.id = id
	}
}

// SwitchName sets the switch name.
func SwitchName(name string) SwitchOption {
	return func(c *switchConfig) {
		c.name = name
	}
}

// SwitchValue sets the value submitted with the form when checked.
func SwitchValue(value string) SwitchOption {
	return func(c *switchConfig) {
		c.value = value
	}
}

// SwitchChecked makes the switch controlled. Toggles only report through
// SwitchOnChange; the parent applies them with SetChecked.
func SwitchChecked(checked bool) SwitchOption {
	return func(c *switchConfig) {
		c.checked = &checked
	}
}

// SwitchDefaultChecked sets the initial state of an uncontrolled switch.
func SwitchDefaultChecked(checked bool) SwitchOption {
	return func(c *switchConfig) {
		c.defaultChecked = checked
	}
}

// SwitchDisabled sets the disabled state.
func SwitchDisabled(disabled bool) SwitchOption {
	return func(c *switchConfig) {
		c.disabled = disabled
	}
}

// SwitchRequired marks the input required and adds an asterisk.
func SwitchRequired(required bool) SwitchOption {
	return func(c *switchConfig) {
		c.required = required
	}
}

// SwitchLabel sets a label for the switch.
func SwitchLabel(label string) SwitchOption {
	return func(c *switchConfig) {
		c.label = label
	}
}

// SwitchDescription sets the secondary text under the label.
func SwitchDescription(description string) SwitchOption {
	return func(c *switchConfig) {
		c.description = description
	}
}

// SwitchError sets an error message. It hides any success message.
func SwitchError(msg string) SwitchOption {
	return func(c *switchConfig) {
		c.errorText = msg
	}
}

// SwitchSuccess sets a success message.
func SwitchSuccess(msg string) SwitchOption {
	return func(c *switchConfig) {
		c.successText = msg
	}
}

// SwitchSize sets the switch size (sm, md, lg).
func SwitchSize(s Size) SwitchOption {
	return func(c *switchConfig) {
		c.size = s
	}
}

// SwitchColor sets the track color when checked.
func SwitchColor(color Color) SwitchOption {
	return func(c *switchConfig) {
		c.color = color
	}
}

// SwitchClass adds additional CSS classes to the track.
func SwitchClass(className string) SwitchOption {
	return func(c *switchConfig) {
		c.className = className
	}
}

// SwitchLabelClass adds classes to the label.
func SwitchLabelClass(className string) SwitchOption {
	return func(c *switchConfig) {
		c.labelClass = className
	}
}

// SwitchContainerClass adds classes to the outer container.
func SwitchContainerClass(className string) SwitchOption {
	return func(c *switchConfig) {
		c.containerClass = className
	}
}

// SwitchOnChange sets the change event handler.
func SwitchOnChange(handler func(bool)) SwitchOption {
	return func(c *switchConfig) {
		c.onChange = handler
	}
}

type switchSize struct {
	track     string
	thumb     string
	translate string
	label     string
}

var switchSizes = map[Size]switchSize{
	SizeSm: {"h-5 w-9", "h-4 w-4", "translate-x-4", "text-sm"},
	SizeMd: {"h-6 w-11", "h-5 w-5", "translate-x-5", "text-sm"},
	SizeLg: {"h-7 w-14", "h-6 w-6", "translate-x-7", "text-base"},
}

// Switch is a toggle control. It implements vdom.Component.
type Switch struct {
	cfg     switchConfig
	checked controllable[bool]
}

// NewSwitch creates a switch.
func NewSwitch(opts ...SwitchOption) *Switch {
	cfg := defaultSwitchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = autoID("switch")
	}
	s := &Switch{cfg: cfg}
	s.checked.onChange = cfg.onChange
	if cfg.checked != nil {
		s.checked.controlled = true
		s.checked.value = *cfg.checked
	} else {
		s.checked.value = cfg.defaultChecked
	}
	return s
}

// Checked reports the current state.
func (s *Switch) Checked() bool { return s.checked.value }

// SetChecked updates the state from the parent without reporting a change.
func (s *Switch) SetChecked(checked bool) { s.checked.set(checked) }

// Toggle flips the switch as if the user clicked it. Disabled switches
// ignore it.
func (s *Switch) Toggle() {
	if s.cfg.disabled {
		return
	}
	s.checked.request(!s.checked.value)
}

// Render implements vdom.Component.
func (s *Switch) Render() *vdom.VNode {
	cfg := s.cfg
	checked := s.checked.value
	sz, ok := switchSizes[cfg.size]
	if !ok {
		sz = switchSizes[SizeMd]
	}
	hasError := cfg.errorText != ""
	hasSuccess := cfg.successText != "" && !hasError

	input := vdom.Input(
		vdom.Type("checkbox"),
		vdom.Role("switch"),
		vdom.ID(cfg.id),
		vdom.Name(cfg.name),
		vdom.Attribute("value", cfg.value),
		vdom.Attribute("checked", checked),
		vdom.DisabledIf(cfg.disabled),
		vdom.Attribute("required", cfg.required),
		vdom.AriaChecked(checked),
		vdom.Class("sr-only"),
		vdom.OnChange(s.Toggle),
	)

	track := vdom.Div(
		vdom.Class(
			"relative inline-flex items-center rounded-full border-2 border-transparent transition-all duration-200 ease-in-out",
			"focus-within:ring-2 focus-within:ring-primary focus-within:ring-offset-2",
			sz.track,
			vdom.ClassIfElse(checked, colorClass(cfg.color), "bg-muted"),
			vdom.ClassIf(hasError, "focus-within:ring-destructive"),
			vdom.ClassIf(hasSuccess, "focus-within:ring-success"),
			vdom.ClassIf(cfg.disabled, "opacity-50 cursor-not-allowed"),
			cfg.className,
		),
		vdom.Data("state", vdom.ClassIfElse(checked, "checked", "unchecked")),
		vdom.OnClick(s.Toggle),
		vdom.Div(vdom.Class(
			"inline-block rounded-full bg-background shadow-lg ring-0 transition-all duration-200 ease-in-out",
			sz.thumb,
			vdom.ClassIfElse(checked, sz.translate, "translate-x-0"),
		)),
	)

	var text *vdom.VNode
	if cfg.label != "" || cfg.description != "" {
		var label, desc *vdom.VNode
		if cfg.label != "" {
			var star *vdom.VNode
			if cfg.required {
				star = vdom.Span(vdom.Class("text-destructive ml-1"), vdom.Text("*"))
			}
			label = vdom.Label(
				vdom.For(cfg.id),
				vdom.Class(
					"block font-medium text-foreground cursor-pointer",
					sz.label,
					vdom.ClassIf(cfg.disabled, "text-muted-foreground cursor-not-allowed"),
					cfg.labelClass,
				),
				vdom.Text(cfg.label),
				star,
			)
		}
		if cfg.description != "" {
			desc = vdom.P(
				vdom.Class("text-xs text-muted-foreground mt-1", vdom.ClassIf(cfg.disabled, "opacity-50")),
				vdom.Text(cfg.description),
			)
		}
		text = vdom.Div(vdom.Class("flex-1 min-w-0"), label, desc)
	}

	return vdom.Div(
		vdom.Class("flex flex-col", cfg.containerClass),
		vdom.Div(
			vdom.Class("flex items-start space-x-3"),
			vdom.Div(vdom.Class("relative flex items-center"), input, track),
			text,
		),
		feedback(cfg.errorText, cfg.successText),
	)
}

// feedback renders the error or success line shared by form controls.
func feedback(errorText, successText string) *vdom.VNode {
	switch {
	case errorText != "":
		return vdom.Div(vdom.Class("mt-2 text-xs"),
			vdom.P(vdom.Class("text-destructive"), vdom.Role("alert"), vdom.Text(errorText)))
	case successText != "":
		return vdom.Div(vdom.Class("mt-2 text-xs"),
			vdom.P(vdom.Class("text-success"), vdom.Text(successText)))
	}
	return nil
}
