package vdom

import "testing"

func TestCN(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"a"}, "a"},
		{"skips blanks", []string{"a", "", "  ", "b"}, "a b"},
		{"splits fields", []string{" a  b ", "c"}, "a b c"},
		{"dedupes", []string{"a b", "b a c"}, "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CN(tt.in...); got != tt.want {
				t.Errorf("CN(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassIf(t *testing.T) {
	if ClassIf(true, "x") != "x" || ClassIf(false, "x") != "" {
		t.Error("ClassIf")
	}
	if ClassIfElse(true, "a", "b") != "a" || ClassIfElse(false, "a", "b") != "b" {
		t.Error("ClassIfElse")
	}
}

func TestStyle(t *testing.T) {
	a := Style(map[string]string{"top": Px(12), "left": Px(8.5)})
	if a.Key != "style" {
		t.Fatalf("Key = %q", a.Key)
	}
	if a.Value != "left: 8.5px; top: 12px;" {
		t.Errorf("Value = %q", a.Value)
	}
	if !Style(nil).IsEmpty() {
		t.Error("empty style should produce an empty attr")
	}
	if Pct(25) != "25%" {
		t.Errorf("Pct(25) = %q", Pct(25))
	}
}

func TestFragment(t *testing.T) {
	f := Fragment(nil, Text("a"), []*VNode{Text("b"), nil}, "c")
	if f.Kind != KindFragment || len(f.Children) != 3 {
		t.Fatalf("unexpected fragment: %+v", f)
	}
}

func TestConditionals(t *testing.T) {
	n := Text("x")
	if If(true, n) != n || If(false, n) != nil {
		t.Error("If")
	}
	called := false
	if When(false, func() *VNode { called = true; return n }) != nil || called {
		t.Error("When should not evaluate when false")
	}
	if When(true, func() *VNode { return n }) != n {
		t.Error("When")
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]string{"a", "skip", "b"}, func(s string, i int) *VNode {
		if s == "skip" {
			return nil
		}
		return Li(Key(i), Text(s))
	})
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[1].Key != "2" {
		t.Errorf("Key = %q, want 2", nodes[1].Key)
	}
}

func TestOptionalAttrs(t *testing.T) {
	if !AriaLabel("").IsEmpty() || !Name("").IsEmpty() || !TitleAttr("").IsEmpty() {
		t.Error("blank optional attrs should be empty")
	}
	if !DisabledIf(false).IsEmpty() {
		t.Error("DisabledIf(false) should be empty")
	}
	if DisabledIf(true).Value != true {
		t.Error("DisabledIf(true)")
	}
}
