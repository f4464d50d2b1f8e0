package vtest

import (
	"github.com/vango-dev/vangoui/pkg/dom"
)

// HostBuilder assembles a dom.Host with known geometry.
//
//	host := vtest.NewHost().
//	    WithViewport(1024, 768).
//	    WithRect("menu-trigger", dom.Rect{X: 980, Y: 700, Width: 40, Height: 30}).
//	    Build()
type HostBuilder struct {
	viewport dom.Size
	rects    map[string]dom.Rect
}

// NewHost starts a builder with a 1024x768 viewport and no rects.
func NewHost() *HostBuilder {
	return &HostBuilder{
		viewport: dom.Size{Width: 1024, Height: 768},
		rects:    make(map[string]dom.Rect),
	}
}

// WithViewport sets the window size.
func (b *HostBuilder) WithViewport(width, height float64) *HostBuilder {
	b.viewport = dom.Size{Width: width, Height: height}
	return b
}

// WithRect records the measured rect of the element with data-measure=id.
func (b *HostBuilder) WithRect(id string, r dom.Rect) *HostBuilder {
	b.rects[id] = r
	return b
}

// Build creates the host.
func (b *HostBuilder) Build() *dom.Host {
	h := dom.NewHost(dom.WithViewport(b.viewport))
	if len(b.rects) > 0 {
		h.UpdateGeometry(b.viewport, b.rects)
	}
	return h
}

// PressKey delivers a document keydown, as the browser runtime does for
// keys pressed outside any handler.
func PressKey(h *dom.Host, key string) {
	h.Dispatch(dom.Document, dom.Event{Kind: dom.KeyDown, Key: key, Viewport: h.Viewport()})
}

// PointerDown delivers a document pointerdown whose target is inside the
// elements listed in path, innermost first.
func PointerDown(h *dom.Host, x, y float64, path ...string) {
	h.Dispatch(dom.Document, dom.Event{Kind: dom.PointerDown, ClientX: x, ClientY: y, Path: path, Viewport: h.Viewport()})
}
