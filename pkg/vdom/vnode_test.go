package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsInteractive(t *testing.T) {
	if Div(Class("a")).IsInteractive() {
		t.Error("div without handlers should not be interactive")
	}
	if !Button(OnClick(func() {})).IsInteractive() {
		t.Error("button with onclick should be interactive")
	}
	if Text("x").IsInteractive() {
		t.Error("text nodes are never interactive")
	}
	var nilNode *VNode
	if nilNode.IsInteractive() {
		t.Error("nil node should not be interactive")
	}
}

func TestNilHandlerIsDropped(t *testing.T) {
	var handler func()
	node := Button(OnClick(nil), OnKeyDown(handler))
	if _, ok := node.Props["onclick"]; ok {
		t.Error("nil handler should not be stored")
	}
	// A typed nil func is still a non-nil interface value.
	if _, ok := node.Props["onkeydown"]; !ok {
		t.Error("typed func value should be stored")
	}
}

func TestHandlers(t *testing.T) {
	node := Div(OnClick(func() {}), OnPointerDown(func() {}), ID("x"))
	h := node.Handlers()
	if len(h) != 2 {
		t.Fatalf("len(Handlers()) = %d, want 2", len(h))
	}
	if _, ok := h["onclick"]; !ok {
		t.Error("missing onclick")
	}
	if _, ok := h["onpointerdown"]; !ok {
		t.Error("missing onpointerdown")
	}
}

func TestFuncComponent(t *testing.T) {
	comp := Func(func() *VNode { return Span(Text("hi")) })
	out := comp.Render()
	if out.Tag != "span" || len(out.Children) != 1 || out.Children[0].Text != "hi" {
		t.Errorf("unexpected render output: %+v", out)
	}
}
