// Package vtest provides testing helpers for vangoui components.
//
// Components are plain values; a test renders them, finds an element,
// fires one of its handlers and renders again:
//
//	func TestSwitchToggles(t *testing.T) {
//	    sw := ui.NewSwitch(ui.SwitchLabel("Wi-Fi"))
//	    vtest.Fire(t, sw.Render(), vtest.ByAttr("role", "switch"), "click", dom.Event{})
//	    vtest.ExpectAttribute(t, sw.Render(), "aria-checked", "true")
//	}
//
// # Finding elements
//
// Find walks the tree depth-first. Matchers compose with All:
//
//	vtest.Find(node, vtest.All(vtest.HasHandler("click"), vtest.ContainsText("Save")))
//	vtest.Find(node, vtest.ByMeasure("menu-trigger"))
//
// # Time
//
// ManualScheduler replaces the wall clock for toast providers, so
// auto-dismiss can be tested without sleeping:
//
//	clock := vtest.NewManualScheduler()
//	p := toast.NewProvider(toast.WithScheduler(clock))
//	clock.Advance(5 * time.Second)
package vtest
