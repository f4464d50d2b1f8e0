package vtest_test

import (
	"testing"
	"time"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func TestRenderToString(t *testing.T) {
	node := vdom.Div(vdom.Class("container"), vdom.Button(vdom.OnClick(func() {}), vdom.Text("Go")))
	html := vtest.RenderToString(node)

	want := `<div class="container"><button>Go</button></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestExpectHelpers(t *testing.T) {
	node := vdom.Div(vdom.ID("main"), vdom.Role("dialog"), vdom.Text("Hello World"))

	vtest.ExpectContains(t, node, "Hello World")
	vtest.ExpectNotContains(t, node, "Goodbye")
	vtest.ExpectElement(t, node, "div")
	vtest.ExpectAttribute(t, node, "role", "dialog")
}

func TestFindAndFire(t *testing.T) {
	clicks := 0
	var key string
	node := vdom.Div(
		vdom.Func(func() *vdom.VNode {
			return vdom.Button(vdom.Data("measure", "trigger-1"), vdom.OnClick(func() { clicks++ }), vdom.Text("Open"))
		}),
		vdom.Input(vdom.Name("q"), vdom.OnKeyDown(func(ev dom.Event) { key = ev.Key })),
	)

	vtest.Fire(t, node, vtest.ByMeasure("trigger-1"), "click", dom.Event{})
	vtest.Fire(t, node, vtest.ByText("Open"), "click", dom.Event{})
	vtest.Fire(t, node, vtest.ByAttr("name", "q"), "keydown", dom.Event{Kind: dom.KeyDown, Key: "Enter"})

	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}
	if key != "Enter" {
		t.Errorf("key = %q, want Enter", key)
	}
	if vtest.Find(node, vtest.ByAttr("name", "missing")) != nil {
		t.Error("Find should return nil when nothing matches")
	}
}

func TestManualScheduler(t *testing.T) {
	s := vtest.NewManualScheduler()
	var order []string

	s.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	s.AfterFunc(10*time.Millisecond, func() {
		order = append(order, "a")
		s.AfterFunc(5*time.Millisecond, func() { order = append(order, "b") })
	})
	stopped := s.AfterFunc(20*time.Millisecond, func() { order = append(order, "never") })

	if !stopped.Stop() {
		t.Error("Stop on a pending timer should report true")
	}
	if stopped.Stop() {
		t.Error("second Stop should report false")
	}
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", s.Pending())
	}

	s.Advance(20 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order after 20ms = %v, want [a b]", order)
	}
	if s.Now() != 20*time.Millisecond {
		t.Errorf("Now = %v, want 20ms", s.Now())
	}

	s.Advance(10 * time.Millisecond)
	if len(order) != 3 || order[2] != "c" {
		t.Errorf("order after 30ms = %v", order)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestHostBuilder(t *testing.T) {
	trigger := dom.Rect{X: 10, Y: 20, Width: 30, Height: 40}
	host := vtest.NewHost().WithViewport(800, 600).WithRect("trigger", trigger).Build()

	if got := host.Viewport(); got != (dom.Size{Width: 800, Height: 600}) {
		t.Errorf("viewport = %+v", got)
	}
	if r, ok := host.Rect("trigger"); !ok || r != trigger {
		t.Errorf("rect = %+v, %v", r, ok)
	}

	var keys []string
	var inside bool
	keySub := host.Listen(dom.Document, dom.KeyDown, func(ev dom.Event) { keys = append(keys, ev.Key) })
	ptrSub := host.Listen(dom.Document, dom.PointerDown, func(ev dom.Event) { inside = ev.Within("panel") })
	defer keySub.Release()
	defer ptrSub.Release()

	vtest.PressKey(host, "Escape")
	vtest.PointerDown(host, 5, 5, "item", "panel")
	if len(keys) != 1 || keys[0] != "Escape" {
		t.Errorf("keys = %v", keys)
	}
	if !inside {
		t.Error("pointerdown path should be inside panel")
	}
}
