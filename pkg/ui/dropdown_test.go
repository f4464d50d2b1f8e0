package ui_test

import (
	"testing"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func TestDropdownMenuSelect(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	var chosen []string
	pick := func(name string) func() { return func() { chosen = append(chosen, name) } }
	d := ui.NewDropdownMenu(host,
		ui.DropdownID("actions"),
		ui.DropdownTrigger(vdom.Text("Actions")),
		ui.DropdownItems(
			ui.MenuHeading("Project"),
			ui.MenuItem("Rename", pick("rename")),
			ui.MenuEntry{Kind: ui.MenuAction, Label: "Archive", Disabled: true, OnSelect: pick("archive")},
			ui.MenuDivider(),
			ui.MenuEntry{Kind: ui.MenuAction, Label: "Delete", Destructive: true, Shortcut: "⌘⌫", OnSelect: pick("delete")},
		),
	)

	node := render(d)
	vtest.ExpectAttribute(t, node, "aria-haspopup", "menu")
	vtest.ExpectNotContains(t, node, "Rename")

	vtest.Fire(t, node, vtest.ByMeasure(d.Popover().TriggerID()), "click", dom.Event{})
	if !d.IsOpen() {
		t.Fatal("trigger click should open")
	}
	node = render(d)
	vtest.ExpectAttribute(t, node, "role", "menu")
	vtest.ExpectAttribute(t, node, "role", "menuitem")
	vtest.ExpectAttribute(t, node, "role", "separator")
	vtest.ExpectContains(t, node, "text-destructive")
	vtest.ExpectContains(t, node, "⌘⌫")

	if vtest.Find(node, vtest.All(vtest.ByText("Archive"), vtest.HasHandler("click"))) != nil {
		t.Error("disabled entry should carry no click handler")
	}
	d.Select(2)
	d.Select(0)
	if !d.IsOpen() || len(chosen) != 0 {
		t.Fatal("disabled and label entries must not select or close")
	}

	vtest.Fire(t, node, vtest.ByText("Rename"), "click", dom.Event{})
	if d.IsOpen() {
		t.Error("choosing an entry should close the menu")
	}
	if host.Listeners() != 0 {
		t.Errorf("listeners after select = %d, want 0", host.Listeners())
	}

	d.Open()
	vtest.Fire(t, render(d), vtest.ByText("Delete"), "keydown", dom.Event{Kind: dom.KeyDown, Key: "Enter"})
	if len(chosen) != 2 || chosen[0] != "rename" || chosen[1] != "delete" {
		t.Errorf("chosen = %v, want [rename delete]", chosen)
	}
}

func TestDropdownMenuTriggerKeys(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	d := ui.NewDropdownMenu(host, ui.DropdownTrigger(vdom.Text("More")), ui.DropdownItems(ui.MenuItem("Copy", nil)))
	trigger := vtest.ByMeasure(d.Popover().TriggerID())

	vtest.Fire(t, render(d), trigger, "keydown", dom.Event{Kind: dom.KeyDown, Key: "ArrowDown"})
	if !d.IsOpen() {
		t.Fatal("ArrowDown should open")
	}
	vtest.Fire(t, render(d), trigger, "keydown", dom.Event{Kind: dom.KeyDown, Key: "ArrowDown"})
	if !d.IsOpen() {
		t.Fatal("ArrowDown should not close an open menu")
	}
	vtest.Fire(t, render(d), trigger, "keydown", dom.Event{Kind: dom.KeyDown, Key: "Enter"})
	if d.IsOpen() {
		t.Fatal("Enter should toggle closed")
	}
	vtest.Fire(t, render(d), trigger, "keydown", dom.Event{Kind: dom.KeyDown, Key: " "})
	if !d.IsOpen() {
		t.Fatal("Space should toggle open")
	}
	vtest.PressKey(host, "Escape")
	if d.IsOpen() {
		t.Error("Escape should close the menu")
	}
}

func TestDropdownMenuCheckboxAndRadio(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	showGrid, density := true, "Comfortable"
	d := ui.NewDropdownMenu(host, ui.DropdownDefaultOpen(true), ui.DropdownTrigger(vdom.Text("View")))
	items := func() []ui.MenuEntry {
		entries := []ui.MenuEntry{ui.MenuCheckboxItem("Show grid", showGrid, func(v bool) { showGrid = v })}
		return append(entries, ui.MenuRadioGroup(density, func(v string) { density = v }, "Compact", "Comfortable")...)
	}

	d.SetItems(items()...)
	node := render(d)
	vtest.ExpectAttribute(t, node, "role", "menuitemcheckbox")
	vtest.ExpectAttribute(t, node, "role", "menuitemradio")
	vtest.ExpectContains(t, node, "M20 6 9 17l-5-5")

	vtest.Fire(t, node, vtest.ByText("Show grid"), "click", dom.Event{})
	if showGrid {
		t.Error("checkbox entry should report the toggled state")
	}

	d.Open()
	d.SetItems(items()...)
	vtest.Fire(t, render(d), vtest.ByText("Compact"), "click", dom.Event{})
	if density != "Compact" {
		t.Errorf("density = %q, want Compact", density)
	}

	d.Open()
	d.SetItems(items()...)
	if entries := d.Items(); !entries[1].Checked || entries[2].Checked {
		t.Errorf("radio checked states = %v %v", entries[1].Checked, entries[2].Checked)
	}
	vtest.ExpectNotContains(t, render(d), "M20 6 9 17l-5-5")
}

func TestDropdownMenuPlacement(t *testing.T) {
	host := dom.NewHost(dom.WithViewport(viewport))
	d := ui.NewDropdownMenu(host, ui.DropdownDefaultOpen(true), ui.DropdownItems(ui.MenuItem("Copy", nil)))
	p := d.Popover()

	host.UpdateGeometry(viewport, map[string]dom.Rect{
		p.TriggerID(): {X: 100, Y: 100, Width: 80, Height: 30},
		p.ContentID(): {Width: 160, Height: 40},
	})
	pos, ok := p.Position()
	if !ok {
		t.Fatal("menu should be placed after measurement")
	}
	if pos.Y != 134 || pos.X != 60 {
		t.Errorf("Position = %+v, want {X:60 Y:134}", pos)
	}

	d.Dispose()
	if d.IsOpen() || host.Listeners() != 0 {
		t.Error("Dispose should close and release the listeners")
	}
}
