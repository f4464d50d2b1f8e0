package ui_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func countTag(html, open string) int { return strings.Count(html, open) }

func tabItems() []ui.TabItem {
	return []ui.TabItem{
		{ID: "overview", Label: "Overview", Content: vdom.Text("overview body")},
		{ID: "billing", Label: "Billing", Content: vdom.Text("billing body"), Badge: "3"},
		{ID: "danger", Label: "Danger", Content: vdom.Text("danger body"), Disabled: true},
		{ID: "team", Label: "Team", Content: vdom.Text("team body")},
	}
}

func TestTabsDefaultsToFirst(t *testing.T) {
	tabs := ui.NewTabs(ui.TabsItems(tabItems()...))
	if tabs.Value() != "overview" {
		t.Fatalf("Value = %q, want overview", tabs.Value())
	}

	node := render(tabs)
	vtest.ExpectAttribute(t, node, "role", "tablist")
	vtest.ExpectContains(t, node, `id="tabpanel-overview"`)
	vtest.ExpectContains(t, node, `aria-labelledby="tab-overview"`)
	vtest.ExpectContains(t, node, "overview body")
	vtest.ExpectNotContains(t, node, "billing body")
	vtest.ExpectContains(t, node, "px-2 py-0.5 text-xs")
}

func TestTabsClickAndDisabled(t *testing.T) {
	var changes []string
	tabs := ui.NewTabs(
		ui.TabsItems(tabItems()...),
		ui.TabsDefaultValue("billing"),
		ui.TabsOnChange(func(id string) { changes = append(changes, id) }),
	)

	vtest.Fire(t, render(tabs), vtest.ByAttr("id", "tab-team"), "click", dom.Event{})
	if tabs.Value() != "team" {
		t.Errorf("Value = %q, want team", tabs.Value())
	}

	danger := vtest.Find(render(tabs), vtest.ByAttr("id", "tab-danger"))
	if danger == nil {
		t.Fatal("disabled tab not rendered")
	}
	if _, ok := danger.Props["onclick"]; ok {
		t.Error("disabled tab should have no click handler")
	}
	tabs.Select("danger")
	tabs.Select("missing")
	if tabs.Value() != "team" {
		t.Errorf("disabled or unknown tab selected: %q", tabs.Value())
	}
	if diff := cmp.Diff([]string{"team"}, changes); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestTabsKeyboard(t *testing.T) {
	tabs := ui.NewTabs(ui.TabsItems(tabItems()...), ui.TabsDefaultValue("billing"))

	press := func(key string) {
		t.Helper()
		id := "tab-" + tabs.Value()
		vtest.Fire(t, render(tabs), vtest.ByAttr("id", id), "keydown", dom.Event{Kind: dom.KeyDown, Key: key})
	}

	press("ArrowRight")
	if tabs.Value() != "team" {
		t.Errorf("ArrowRight skipped to %q, want team", tabs.Value())
	}
	press("ArrowRight")
	if tabs.Value() != "overview" {
		t.Errorf("ArrowRight should wrap to overview, got %q", tabs.Value())
	}
	press("End")
	if tabs.Value() != "team" {
		t.Errorf("End = %q, want team", tabs.Value())
	}
	press("Home")
	if tabs.Value() != "overview" {
		t.Errorf("Home = %q, want overview", tabs.Value())
	}
	press("ArrowLeft")
	if tabs.Value() != "team" {
		t.Errorf("ArrowLeft should wrap to team, got %q", tabs.Value())
	}
}

func TestTabsControlled(t *testing.T) {
	var got string
	tabs := ui.NewTabs(ui.TabsItems(tabItems()...), ui.TabsValue("overview"), ui.TabsOnChange(func(id string) { got = id }))

	tabs.Select("billing")
	if tabs.Value() != "overview" || got != "billing" {
		t.Errorf("Value = %q, reported %q", tabs.Value(), got)
	}
	tabs.SetValue("billing")
	vtest.ExpectContains(t, render(tabs), "billing body")
}

func TestTabsVariants(t *testing.T) {
	tests := []struct {
		variant ui.Variant
		active  string
		list    string
	}{
		{ui.VariantDefault, "bg-background text-foreground shadow-sm border border-border", "flex space-x-1"},
		{ui.VariantPills, "bg-primary text-primary-foreground shadow-sm", "flex space-x-1"},
		{ui.VariantUnderline, "border-primary text-primary", "border-b border-border"},
		{ui.VariantBordered, "border-primary bg-primary/5 text-primary", "p-1 bg-muted rounded-lg"},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			node := render(ui.NewTabs(ui.TabsItems(tabItems()...), ui.TabsVariant(tt.variant), ui.TabsSize(ui.SizeLg)))
			vtest.ExpectContains(t, node, tt.active)
			vtest.ExpectContains(t, node, tt.list)
			vtest.ExpectContains(t, node, "text-base px-6 py-3")
		})
	}

	vertical := render(ui.NewTabs(ui.TabsItems(tabItems()...), ui.TabsOrientation(ui.Vertical), ui.TabsVariant(ui.VariantUnderline)))
	vtest.ExpectAttribute(t, vertical, "aria-orientation", "vertical")
	vtest.ExpectContains(t, vertical, "flex-col space-y-1")
	vtest.ExpectContains(t, vertical, "border-r border-border")
	vtest.ExpectContains(t, vertical, "flex gap-6")
}

func TestSidebar(t *testing.T) {
	opened := ""
	items := []ui.SidebarItem{
		{ID: "home", Label: "Home", Active: true, OnClick: func() { opened = "home" }},
		{ID: "inbox", Label: "Inbox", Badge: "12"},
		{ID: "settings", Label: "Settings", Children: []ui.SidebarItem{
			{ID: "profile", Label: "Profile", Href: "/settings/profile"},
		}},
	}

	var collapsedChanges []bool
	sb := ui.NewSidebar(
		ui.SidebarItems(items...),
		ui.SidebarWidth(ui.SizeLg),
		ui.SidebarVariant(ui.VariantFloating),
		ui.SidebarCollapsible(),
		ui.SidebarOnCollapsedChange(func(v bool) { collapsedChanges = append(collapsedChanges, v) }),
	)

	node := render(sb)
	vtest.ExpectContains(t, node, "w-80")
	vtest.ExpectContains(t, node, "shadow-lg")
	vtest.ExpectContains(t, node, "text-primary bg-primary/10")
	vtest.ExpectContains(t, node, "bg-destructive")
	vtest.ExpectNotContains(t, node, "Profile")

	clickItem := func(label string) {
		t.Helper()
		vtest.Fire(t, render(sb), vtest.All(vtest.HasHandler("click"), vtest.ContainsText(label)), "click", dom.Event{})
	}

	clickItem("Home")
	if opened != "home" {
		t.Error("item click not wired")
	}

	clickItem("Settings")
	if !sb.Expanded("settings") {
		t.Fatal("parent item should expand on click")
	}
	node = render(sb)
	vtest.ExpectContains(t, node, `href="/settings/profile"`)
	vtest.ExpectContains(t, node, "pl-8")
	vtest.ExpectContains(t, node, "rotate-180")

	vtest.Fire(t, node, vtest.ByAttr("aria-label", "Collapse sidebar"), "click", dom.Event{})
	if !sb.Collapsed() {
		t.Fatal("uncontrolled sidebar should collapse")
	}
	node = render(sb)
	vtest.ExpectContains(t, node, "w-16")
	vtest.ExpectAttribute(t, node, "aria-label", "Expand sidebar")
	vtest.ExpectAttribute(t, node, "title", "Inbox")
	vtest.ExpectNotContains(t, node, "Profile")

	if diff := cmp.Diff([]bool{true}, collapsedChanges); diff != "" {
		t.Errorf("collapse changes (-want +got):\n%s", diff)
	}
}

func TestSidebarControlledCollapse(t *testing.T) {
	var asked []bool
	sb := ui.NewSidebar(ui.SidebarCollapsible(), ui.SidebarCollapsed(false), ui.SidebarOnCollapsedChange(func(v bool) { asked = append(asked, v) }))

	sb.ToggleCollapsed()
	if sb.Collapsed() {
		t.Error("controlled sidebar must wait for SetCollapsed")
	}
	sb.SetCollapsed(true)
	if !sb.Collapsed() || len(asked) != 1 || !asked[0] {
		t.Errorf("Collapsed = %v, asked = %v", sb.Collapsed(), asked)
	}
	vtest.ExpectContains(t, render(sb), "w-16")
}
