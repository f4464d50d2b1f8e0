package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// RenderToString renders a VNode to an HTML string without hydration
// markers. Returns an empty string on error.
//
// Example:
//
//	html := vtest.RenderToString(ui.Button(ui.WithChildren("Save")))
//	if !strings.Contains(html, "Save") {
//	    t.Error("missing label")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{OmitHIDs: true})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, ui.Badge(ui.BadgeLabel("New")), "New")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 800))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 800))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 800))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, comp.Render(), "role", "dialog")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 800))
	}
}

// Find returns the first element in document order for which match
// returns true. Components are rendered while walking.
func Find(node *vdom.VNode, match func(*vdom.VNode) bool) *vdom.VNode {
	if node == nil {
		return nil
	}
	if node.Kind == vdom.KindComponent {
		if node.Comp == nil {
			return nil
		}
		return Find(node.Comp.Render(), match)
	}
	if node.Kind == vdom.KindElement && match(node) {
		return node
	}
	for _, child := range node.Children {
		if found := Find(child, match); found != nil {
			return found
		}
	}
	return nil
}

// ByAttr matches elements whose attribute key equals value.
func ByAttr(key, value string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		v, ok := n.Props[key].(string)
		return ok && v == value
	}
}

// ByMeasure matches the element carrying data-measure=id.
func ByMeasure(id string) func(*vdom.VNode) bool {
	return ByAttr("data-measure", id)
}

// ByText matches elements with a direct text child equal to text.
func ByText(text string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		for _, c := range n.Children {
			if c != nil && c.Kind == vdom.KindText && c.Text == text {
				return true
			}
		}
		return false
	}
}

// HasHandler matches elements with a handler for event.
func HasHandler(event string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		h, ok := n.Props["on"+event]
		return ok && h != nil
	}
}

// ContainsText matches elements with a text node equal to text anywhere
// below them. Components are not expanded.
func ContainsText(text string) func(*vdom.VNode) bool {
	var walk func(*vdom.VNode) bool
	walk = func(n *vdom.VNode) bool {
		for _, c := range n.Children {
			if c == nil {
				continue
			}
			if c.Kind == vdom.KindText && c.Text == text {
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	return walk
}

// All matches elements that satisfy every matcher.
func All(matchers ...func(*vdom.VNode) bool) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		for _, m := range matchers {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Fire locates the element matched by match in node and invokes its
// handler for event ("click", "keydown", ...). It fails the test when the
// element or the handler is missing.
func Fire(t testing.TB, node *vdom.VNode, match func(*vdom.VNode) bool, event string, ev dom.Event) {
	t.Helper()
	el := Find(node, match)
	if el == nil {
		t.Fatalf("vtest.Fire: no element matched in:\n%s", truncate(RenderToString(node), 800))
		return
	}
	h, ok := el.Props["on"+event]
	if !ok || !dom.Invoke(h, ev) {
		t.Fatalf("vtest.Fire: <%s> has no %s handler", el.Tag, event)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
