package ui_test

import (
	"testing"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/floating"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func newPopover(host *dom.Host, opts ...ui.PopoverOption) *ui.Popover {
	base := []ui.PopoverOption{
		ui.PopoverID("menu"),
		ui.PopoverTrigger(vdom.Text("Open")),
		ui.PopoverBody(ui.PopoverContent(ui.PopoverTitle("Filters"))),
	}
	return ui.NewPopover(host, append(base, opts...)...)
}

func TestPopoverOpenRegistersListeners(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	p := newPopover(host)

	if p.IsOpen() || host.Listeners() != 0 {
		t.Fatal("closed popover should hold no listeners")
	}
	vtest.ExpectNotContains(t, render(p), `role="dialog"`)

	vtest.Fire(t, render(p), vtest.ByMeasure(p.TriggerID()), "click", dom.Event{})
	if !p.IsOpen() {
		t.Fatal("trigger click should open")
	}
	counts := map[string]int{
		"window scroll":    host.ListenerCount(dom.Window, dom.Scroll),
		"window resize":    host.ListenerCount(dom.Window, dom.Resize),
		"window measure":   host.ListenerCount(dom.Window, dom.Measure),
		"document pointer": host.ListenerCount(dom.Document, dom.PointerDown),
		"document keydown": host.ListenerCount(dom.Document, dom.KeyDown),
	}
	for name, n := range counts {
		if n != 1 {
			t.Errorf("%s listeners = %d, want 1", name, n)
		}
	}
	if host.ScrollLocked() {
		t.Error("non-modal popover must not lock scroll")
	}

	vtest.Fire(t, render(p), vtest.ByMeasure(p.TriggerID()), "click", dom.Event{})
	if p.IsOpen() {
		t.Error("second trigger click should close")
	}
	if n := host.Listeners(); n != 0 {
		t.Errorf("listeners after close = %d, want 0", n)
	}
}

func TestPopoverDismissal(t *testing.T) {
	t.Run("outside pointer down", func(t *testing.T) {
		host := dom.NewHost(dom.WithViewport(viewport))
		p := newPopover(host, ui.PopoverDefaultOpen(true))

		host.Dispatch(dom.Document, dom.Event{Kind: dom.PointerDown, Path: []string{p.ContentID()}})
		host.Dispatch(dom.Document, dom.Event{Kind: dom.PointerDown, Path: []string{"icon", p.TriggerID()}})
		if !p.IsOpen() {
			t.Fatal("pointer down inside trigger or panel must not close")
		}
		host.Dispatch(dom.Document, dom.Event{Kind: dom.PointerDown, Path: []string{"elsewhere"}})
		if p.IsOpen() || host.Listeners() != 0 {
			t.Errorf("outside press: open %v, listeners %d", p.IsOpen(), host.Listeners())
		}
	})

	t.Run("escape", func(t *testing.T) {
		host := dom.NewHost(dom.WithViewport(viewport))
		p := newPopover(host, ui.PopoverDefaultOpen(true))

		host.Dispatch(dom.Document, dom.Event{Kind: dom.KeyDown, Key: "Enter"})
		if !p.IsOpen() {
			t.Fatal("only Escape should close")
		}
		host.Dispatch(dom.Document, dom.Event{Kind: dom.KeyDown, Key: "Escape"})
		if p.IsOpen() {
			t.Error("Escape should close")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		host := dom.NewHost(dom.WithViewport(viewport))
		p := newPopover(host,
			ui.PopoverDefaultOpen(true),
			ui.PopoverCloseOnClickOutside(false),
			ui.PopoverCloseOnEscape(false),
		)
		if host.ListenerCount(dom.Document, dom.PointerDown) != 0 || host.ListenerCount(dom.Document, dom.KeyDown) != 0 {
			t.Fatal("disabled dismissals should not listen")
		}
		host.Dispatch(dom.Document, dom.Event{Kind: dom.KeyDown, Key: "Escape"})
		if !p.IsOpen() {
			t.Error("popover closed with escape disabled")
		}
	})
}

func TestPopoverControlled(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	var asked []bool
	p := newPopover(host, ui.PopoverOpen(false), ui.PopoverOnOpenChange(func(v bool) { asked = append(asked, v) }))

	p.Toggle()
	if p.IsOpen() || host.Listeners() != 0 {
		t.Fatal("controlled popover must wait for the parent")
	}
	p.SetOpen(true)
	if !p.IsOpen() || host.Listeners() == 0 {
		t.Fatal("SetOpen(true) should open and listen")
	}
	host.Dispatch(dom.Document, dom.Event{Kind: dom.KeyDown, Key: "Escape"})
	if !p.IsOpen() {
		t.Error("escape must only report for a controlled popover")
	}
	if len(asked) != 2 || !asked[0] || asked[1] {
		t.Errorf("asked = %v, want [true false]", asked)
	}
	p.SetOpen(false)
	if host.Listeners() != 0 {
		t.Error("SetOpen(false) should release listeners")
	}
	if len(asked) != 2 {
		t.Error("SetOpen must not report")
	}
}

func TestPopoverModal(t *testing.T) {
	var locks []bool
	host := dom.NewHost(dom.WithViewport(viewport), dom.WithScrollLockFunc(func(v bool) { locks = append(locks, v) }))
	p := newPopover(host, ui.PopoverModal(true))

	p.Open()
	if !host.ScrollLocked() {
		t.Fatal("modal popover should lock scroll")
	}
	node := render(p)
	vtest.ExpectContains(t, node, "fixed inset-0 z-40 bg-black/20")
	vtest.ExpectAttribute(t, node, "aria-modal", "true")

	p.Dispose()
	if p.IsOpen() || host.ScrollLocked() || host.Listeners() != 0 {
		t.Error("Dispose should close and release everything")
	}
	if len(locks) != 2 || !locks[0] || locks[1] {
		t.Errorf("lock transitions = %v, want [true false]", locks)
	}
}

func TestPopoverPosition(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	p := newPopover(host, ui.PopoverDefaultOpen(true))

	if _, ok := p.Position(); ok {
		t.Fatal("position reported before measurement")
	}
	vtest.ExpectContains(t, render(p), "visibility: hidden;")

	host.UpdateGeometry(viewport, map[string]dom.Rect{
		p.TriggerID(): {X: 980, Y: 700, Width: 40, Height: 30},
		p.ContentID(): {X: 0, Y: 0, Width: 200, Height: 100},
	})
	pos, ok := p.Position()
	if !ok {
		t.Fatal("measure event should reposition")
	}
	want := floating.Point{X: viewport.Width - 200 - 8, Y: viewport.Height - 100 - 8}
	if pos != want {
		t.Errorf("Position = %+v, want %+v", pos, want)
	}

	node := render(p)
	vtest.ExpectAttribute(t, node, "style", "left: 816px; top: 660px;")
	vtest.ExpectAttribute(t, node, "data-side", "bottom")
	vtest.ExpectContains(t, node, "top-[-4px]")

	host.UpdateGeometry(dom.Size{Width: 1440, Height: 900}, map[string]dom.Rect{
		p.TriggerID(): {X: 100, Y: 100, Width: 40, Height: 30},
		p.ContentID(): {Width: 200, Height: 100},
	})
	if pos, _ := p.Position(); pos != (floating.Point{X: 20, Y: 138}) {
		t.Errorf("after resize Position = %+v", pos)
	}
}

func TestPopoverReopenWaitsForMeasure(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	p := newPopover(host, ui.PopoverDefaultOpen(true))
	host.UpdateGeometry(viewport, map[string]dom.Rect{
		p.TriggerID(): {X: 980, Y: 100, Width: 20, Height: 20},
		p.ContentID(): {Width: 300, Height: 100},
	})
	if _, ok := p.Position(); !ok {
		t.Fatal("first open was not measured")
	}

	p.Close()
	small := dom.Size{Width: 400, Height: 300}
	host.UpdateGeometry(small, map[string]dom.Rect{
		p.TriggerID(): {X: 300, Y: 100, Width: 20, Height: 20},
	})
	p.Open()

	if _, ok := p.Position(); ok {
		t.Fatal("reopened popover reused the previous position")
	}
	vtest.ExpectContains(t, render(p), "visibility: hidden;")

	host.UpdateGeometry(small, map[string]dom.Rect{
		p.TriggerID(): {X: 300, Y: 100, Width: 20, Height: 20},
		p.ContentID(): {Width: 300, Height: 100},
	})
	pos, ok := p.Position()
	if !ok {
		t.Fatal("measure after reopen should reposition")
	}
	if want := (floating.Point{X: small.Width - 300 - 8, Y: 128}); pos != want {
		t.Errorf("Position = %+v, want %+v", pos, want)
	}
	vtest.ExpectNotContains(t, render(p), "visibility: hidden;")
}

func TestPopoverRender(t *testing.T) {
	host := dom.NewHost()
	p := ui.NewPopover(host,
		ui.PopoverDefaultOpen(true),
		ui.PopoverSide(floating.Right),
		ui.PopoverTrigger(ui.Button(ui.WithChildren(vdom.Text("Filter")))),
		ui.PopoverBody(
			ui.PopoverHeader(ui.PopoverTitle("Filters"), ui.PopoverDescription("Narrow the list")),
			ui.PopoverFooter(ui.Button(ui.Sm(), ui.WithChildren(vdom.Text("Apply")))),
		),
		ui.PopoverContentClass("w-72"),
	)
	node := render(p)

	vtest.ExpectAttribute(t, node, "aria-haspopup", "dialog")
	vtest.ExpectAttribute(t, node, "aria-expanded", "true")
	vtest.ExpectAttribute(t, node, "aria-controls", p.ContentID())
	vtest.ExpectAttribute(t, node, "id", p.ContentID())
	vtest.ExpectAttribute(t, node, "data-side", "right")
	vtest.ExpectContains(t, node, "left-[-4px]")
	vtest.ExpectContains(t, node, "w-72")
	vtest.ExpectContains(t, node, `<h4 class="font-medium leading-none">Filters</h4>`)
	vtest.ExpectContains(t, node, "Narrow the list")
	vtest.ExpectContains(t, node, "flex justify-end space-x-2")
	vtest.ExpectNotContains(t, node, "bg-black/20")

	other := ui.NewPopover(host)
	if other.TriggerID() == p.TriggerID() {
		t.Error("popovers on one host should get distinct ids")
	}
}
