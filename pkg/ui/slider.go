package ui

import (
	"slices"
	"strconv"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/slider"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// SliderMark is a labelled point on the track.
type SliderMark struct {
	Value float64
	Label string
}

// SliderOption configures a Slider component.
type SliderOption func(*sliderConfig)

type sliderConfig struct {
	value          []float64
	controlled     bool
	defaultValue   []float64
	onChange       func([]float64)
	min, max, step float64
	rangeMode      bool
	marks          []SliderMark
	disabled       bool
	showValue      bool
	showTooltip    bool
	label          string
	helperText     string
	errorText      string
	successText    string
	size           Size
	color          Color
	className      string
	labelClass     string
	containerClass string
	format         func(float64) string
}

func defaultSliderConfig() sliderConfig {
	return sliderConfig{
		min:    slider.DefaultMin,
		max:    slider.DefaultMax,
		step:   slider.DefaultStep,
		size:   SizeMd,
		color:  ColorPrimary,
		format: formatNumber,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SliderValue makes the slider controlled. Changes are only reported
// through SliderOnValueChange; the parent applies them with SetValue.
func SliderValue(values ...float64) SliderOption {
	return func(c *sliderConfig) {
		c.value = values
		c.controlled = true
	}
}

// SliderDefaultValue sets the initial values of an uncontrolled slider.
func SliderDefaultValue(values ...float64) SliderOption {
	return func(c *sliderConfig) {
		c.defaultValue = values
	}
}

// SliderOnValueChange is called with the new values on every change.
func SliderOnValueChange(fn func([]float64)) SliderOption {
	return func(c *sliderConfig) {
		c.onChange = fn
	}
}

// SliderMin sets the lower bound.
func SliderMin(v float64) SliderOption {
	return func(c *sliderConfig) {
		c.min = v
	}
}

// SliderMax sets the upper bound.
func SliderMax(v float64) SliderOption {
	return func(c *sliderConfig) {
		c.max = v
	}
}

// SliderStep sets the step size.
func SliderStep(v float64) SliderOption {
	return func(c *sliderConfig) {
		c.step = v
	}
}

// SliderRange switches to two thumbs.
func SliderRange() SliderOption {
	return func(c *sliderConfig) {
		c.rangeMode = true
	}
}

// SliderMarks places marks on the track.
func SliderMarks(marks ...SliderMark) SliderOption {
	return func(c *sliderConfig) {
		c.marks = marks
	}
}

// SliderDisabled sets the disabled state.
func SliderDisabled(disabled bool) SliderOption {
	return func(c *sliderConfig) {
		c.disabled = disabled
	}
}

// SliderShowValue prints the formatted value next to the label.
func SliderShowValue() SliderOption {
	return func(c *sliderConfig) {
		c.showValue = true
	}
}

// SliderShowTooltip shows the formatted value above each thumb.
func SliderShowTooltip() SliderOption {
	return func(c *sliderConfig) {
		c.showTooltip = true
	}
}

// SliderLabel sets the label.
func SliderLabel(label string) SliderOption {
	return func(c *sliderConfig) {
		c.label = label
	}
}

// SliderHelperText sets the hint under the track.
func SliderHelperText(text string) SliderOption {
	return func(c *sliderConfig) {
		c.helperText = text
	}
}

// SliderError sets an error message.
func SliderError(msg string) SliderOption {
	return func(c *sliderConfig) {
		c.errorText = msg
	}
}

// SliderSuccess sets a success message.
func SliderSuccess(msg string) SliderOption {
	return func(c *sliderConfig) {
		c.successText = msg
	}
}

// SliderSize sets the size (sm, md, lg).
func SliderSize(s Size) SliderOption {
	return func(c *sliderConfig) {
		c.size = s
	}
}

// SliderColor sets the fill and thumb color.
func SliderColor(color Color) SliderOption {
	return func(c *sliderConfig) {
		c.color = color
	}
}

// SliderClass adds classes to the track.
func SliderClass(className string) SliderOption {
	return func(c *sliderConfig) {
		c.className = className
	}
}

// SliderLabelClass adds classes to the label.
func SliderLabelClass(className string) SliderOption {
	return func(c *sliderConfig) {
		c.labelClass = className
	}
}

// SliderContainerClass adds classes to the outer container.
func SliderContainerClass(className string) SliderOption {
	return func(c *sliderConfig) {
		c.containerClass = className
	}
}

// SliderFormat sets how values are printed.
func SliderFormat(fn func(float64) string) SliderOption {
	return func(c *sliderConfig) {
		if fn != nil {
			c.format = fn
		}
	}
}

type sliderSize struct {
	track string
	thumb string
	mark  string
}

var sliderSizes = map[Size]sliderSize{
	SizeSm: {"h-1", "h-4 w-4", "h-1 w-1"},
	SizeMd: {"h-2", "h-5 w-5", "h-1.5 w-1.5"},
	SizeLg: {"h-3", "h-6 w-6", "h-2 w-2"},
}

// Slider selects one value, or a range of two, on a track. It implements
// vdom.Component. The track must be measured through the host before
// pointer input has any effect.
type Slider struct {
	host    *dom.Host
	cfg     sliderConfig
	scale   slider.Scale
	values  controllable[[]float64]
	trackID string

	active int
	drag   *dom.Scope
}

// NewSlider creates a slider bound to host.
func NewSlider(host *dom.Host, opts ...SliderOption) *Slider {
	cfg := defaultSliderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Slider{
		host:    host,
		cfg:     cfg,
		scale:   slider.NewScale(cfg.min, cfg.max, cfg.step),
		trackID: host.NewID("slider-track"),
		active:  -1,
	}
	s.values.onChange = cfg.onChange
	s.values.controlled = cfg.controlled
	initial := cfg.defaultValue
	if cfg.controlled {
		initial = cfg.value
	}
	s.values.value = s.scale.Normalize(initial, cfg.rangeMode)
	return s
}

// Values returns a copy of the current values.
func (s *Slider) Values() []float64 {
	return slices.Clone(s.values.value)
}

// SetValue updates the values from the parent. They are snapped and
// ordered; no change is reported.
func (s *Slider) SetValue(values ...float64) {
	s.values.set(s.scale.Normalize(values, s.cfg.rangeMode))
}

// TrackID is the measure id of the track element.
func (s *Slider) TrackID() string { return s.trackID }

// Dragging reports whether a thumb is being dragged.
func (s *Slider) Dragging() bool { return s.drag != nil }

// ActiveThumb returns the dragged thumb, or -1.
func (s *Slider) ActiveThumb() int { return s.active }

// Dispose ends any drag and releases its listeners.
func (s *Slider) Dispose() { s.endDrag() }

func (s *Slider) setThumb(thumb int, v float64) {
	next := s.scale.Update(s.values.value, thumb, v)
	if slices.Equal(next, s.values.value) {
		return
	}
	s.values.request(next)
}

// valueAt maps a pointer x coordinate through the measured track.
func (s *Slider) valueAt(clientX float64) (float64, bool) {
	rect, ok := s.host.Rect(s.trackID)
	if !ok {
		return 0, false
	}
	return s.scale.FromPosition(clientX, rect), true
}

func (s *Slider) onTrackDown(ev dom.Event) {
	if s.cfg.disabled {
		return
	}
	v, ok := s.valueAt(ev.ClientX)
	if !ok {
		return
	}
	thumb := s.scale.Closest(s.values.value, v)
	s.startDrag(thumb)
	s.setThumb(thumb, v)
}

func (s *Slider) onThumbDown(thumb int) {
	if s.cfg.disabled {
		return
	}
	s.startDrag(thumb)
}

func (s *Slider) startDrag(thumb int) {
	s.endDrag()
	s.active = thumb
	s.drag = dom.NewScope(s.host)
	s.drag.Listen(dom.Document, dom.PointerMove, func(ev dom.Event) {
		if s.active < 0 {
			return
		}
		if v, ok := s.valueAt(ev.ClientX); ok {
			s.setThumb(s.active, v)
		}
	})
	s.drag.Listen(dom.Document, dom.PointerUp, func(dom.Event) {
		s.endDrag()
	})
}

func (s *Slider) endDrag() {
	if s.drag != nil {
		s.drag.Release()
		s.drag = nil
	}
	s.active = -1
}

func (s *Slider) onKey(thumb int, ev dom.Event) {
	if s.cfg.disabled || thumb >= len(s.values.value) {
		return
	}
	cur := s.values.value[thumb]
	step := s.scale.Step
	switch ev.Key {
	case "ArrowRight", "ArrowUp":
		s.setThumb(thumb, cur+step)
	case "ArrowLeft", "ArrowDown":
		s.setThumb(thumb, cur-step)
	case "PageUp":
		s.setThumb(thumb, cur+10*step)
	case "PageDown":
		s.setThumb(thumb, cur-10*step)
	case "Home":
		s.setThumb(thumb, s.scale.Min)
	case "End":
		s.setThumb(thumb, s.scale.Max)
	}
}

// Render implements vdom.Component.
func (s *Slider) Render() *vdom.VNode {
	cfg := s.cfg
	values := s.values.value
	sz, ok := sliderSizes[cfg.size]
	if !ok {
		sz = sliderSizes[SizeMd]
	}
	fill := colorClass(cfg.color)

	var label *vdom.VNode
	if cfg.label != "" {
		var shown *vdom.VNode
		if cfg.showValue {
			text := cfg.format(values[0])
			if len(values) == 2 {
				text = cfg.format(values[0]) + " - " + cfg.format(values[1])
			}
			shown = vdom.Span(vdom.Class("ml-2 text-muted-foreground"), vdom.Text(text))
		}
		label = vdom.Label(
			vdom.Class("block text-sm font-medium text-foreground mb-4", vdom.ClassIf(cfg.disabled, "text-muted-foreground"), cfg.labelClass),
			vdom.Text(cfg.label),
			shown,
		)
	}

	start, end := 0.0, s.scale.Percent(values[0])
	if len(values) == 2 {
		start, end = s.scale.Percent(values[0]), s.scale.Percent(values[1])
	}
	activeTrack := vdom.Div(
		vdom.Class("absolute top-1/2 transform -translate-y-1/2 rounded-full", sz.track, fill),
		vdom.Style(map[string]string{"left": vdom.Pct(start), "width": vdom.Pct(end - start)}),
	)

	marks := vdom.Range(cfg.marks, func(m SliderMark, _ int) *vdom.VNode {
		return vdom.Div(
			vdom.Key(m.Value),
			vdom.Class("absolute top-1/2 transform -translate-y-1/2 -translate-x-1/2 rounded-full bg-border", sz.mark),
			vdom.Style(map[string]string{"left": vdom.Pct(s.scale.Percent(m.Value))}),
		)
	})

	var markLabels *vdom.VNode
	if len(cfg.marks) > 0 {
		markLabels = vdom.Div(vdom.Class("relative mt-2"),
			vdom.Range(cfg.marks, func(m SliderMark, _ int) *vdom.VNode {
				text := m.Label
				if text == "" {
					text = cfg.format(m.Value)
				}
				return vdom.Div(
					vdom.Key(m.Value),
					vdom.Class("absolute text-xs text-muted-foreground transform -translate-x-1/2"),
					vdom.Style(map[string]string{"left": vdom.Pct(s.scale.Percent(m.Value))}),
					vdom.Text(text),
				)
			}),
		)
	}

	trackAttrs := []any{
		vdom.Data("measure", s.trackID),
		vdom.Class("relative w-full rounded-full bg-muted cursor-pointer", sz.track, vdom.ClassIf(cfg.disabled, "cursor-not-allowed"), cfg.className),
		activeTrack,
		marks,
		vdom.Range(values, func(v float64, i int) *vdom.VNode { return s.thumb(v, i, sz.thumb, fill) }),
	}
	if !cfg.disabled {
		trackAttrs = append(trackAttrs, vdom.OnPointerDown(s.onTrackDown))
	}

	var help *vdom.VNode
	if cfg.errorText != "" || cfg.successText != "" {
		help = feedback(cfg.errorText, cfg.successText)
	} else if cfg.helperText != "" {
		help = vdom.Div(vdom.Class("mt-2 text-xs"), vdom.P(vdom.Class("text-muted-foreground"), vdom.Text(cfg.helperText)))
	}

	return vdom.Div(
		vdom.Class("w-full", cfg.containerClass),
		label,
		vdom.Div(vdom.Class("relative px-3"), vdom.Div(trackAttrs...), markLabels),
		help,
	)
}

func (s *Slider) thumb(v float64, i int, sizeClass, fill string) *vdom.VNode {
	cfg := s.cfg
	tabIndex := 0
	if cfg.disabled {
		tabIndex = -1
	}

	var tooltip *vdom.VNode
	if cfg.showTooltip {
		tooltip = vdom.Div(
			vdom.Class("absolute bottom-full mb-2 left-1/2 transform -translate-x-1/2 px-2 py-1 bg-popover border border-border rounded text-xs whitespace-nowrap"),
			vdom.Text(cfg.format(v)),
		)
	}

	attrs := []any{
		vdom.Key(i),
		vdom.Class(
			"absolute top-1/2 transform -translate-y-1/2 -translate-x-1/2 rounded-full border-2 border-background shadow-lg transition-all duration-200",
			"focus:outline-none focus:ring-2 focus:ring-primary focus:ring-offset-2",
			sizeClass,
			fill,
			vdom.ClassIf(cfg.disabled, "opacity-50 cursor-not-allowed"),
			vdom.ClassIf(s.active == i, "scale-110"),
		),
		vdom.Style(map[string]string{"left": vdom.Pct(s.scale.Percent(v))}),
		vdom.Role("slider"),
		vdom.AriaValueMin(s.scale.Min),
		vdom.AriaValueMax(s.scale.Max),
		vdom.AriaValueNow(v),
		vdom.AriaValueText(cfg.format(v)),
		vdom.AriaDisabled(cfg.disabled),
		vdom.TabIndex(tabIndex),
		vdom.Data("thumb", strconv.Itoa(i)),
		tooltip,
	}
	if !cfg.disabled {
		attrs = append(attrs,
			vdom.OnPointerDown(func() { s.onThumbDown(i) }),
			vdom.OnKeyDown(func(ev dom.Event) { s.onKey(i, ev) }),
		)
	}
	return vdom.Div(attrs...)
}
