package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vango-dev/vangoui/pkg/floating"
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

func builtin() []Preview {
	return []Preview{
		{Name: "alert", Title: "Alert", Description: "Callouts for status messages, optionally dismissible.", Build: newAlertDemo},
		{Name: "badge", Title: "Badge", Description: "Compact labels in every variant and size.", Build: newBadgeDemo},
		{Name: "breadcrumbs", Title: "Breadcrumbs", Description: "Navigation trail that collapses its middle past the item limit.", Build: newBreadcrumbsDemo},
		{Name: "button", Title: "Button", Description: "Variants, sizes, loading and disabled states.", Build: newButtonDemo},
		{Name: "dropdown-menu", Title: "Dropdown menu", Description: "Action lists with checkbox and radio entries, opened from a trigger.", Build: newDropdownDemo},
		{Name: "modal", Title: "Modal", Description: "Centered dialogs that lock page scroll while open.", Build: newModalDemo},
		{Name: "popover", Title: "Popover", Description: "Floating panel anchored to its trigger and kept inside the viewport.", Build: newPopoverDemo},
		{Name: "sidebar", Title: "Sidebar", Description: "Collapsible navigation with nested sections.", Build: newSidebarDemo},
		{Name: "slider", Title: "Slider", Description: "Single and range sliders with marks, keyboard and pointer input.", Build: newSliderDemo},
		{Name: "switch", Title: "Switch", Description: "Binary toggles with labels, colors and validation messages.", Build: newSwitchDemo},
		{Name: "tabs", Title: "Tabs", Description: "Tab lists in three variants with keyboard navigation.", Build: newTabsDemo},
		{Name: "toast", Title: "Toast", Description: "Timed notifications stacked in a viewport corner.", Build: newToastDemo},
		{Name: "tooltip", Title: "Tooltip", Description: "Hover and focus hints placed on any side of their trigger.", Build: newTooltipDemo},
	}
}

func row(children ...any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Class("flex flex-wrap items-center gap-3")}, children...)...)
}

func stack(children ...any) *vdom.VNode {
	return vdom.Div(append([]any{vdom.Class("space-y-6")}, children...)...)
}

// Button

type buttonDemo struct {
	clicks  int
	loading bool
}

func newButtonDemo(Env) vdom.Component { return &buttonDemo{} }

func (d *buttonDemo) Render() *vdom.VNode {
	variants := []struct {
		label string
		opt   ui.ButtonOption
	}{
		{"Default", ui.WithVariant(ui.VariantDefault)},
		{"Primary", ui.Primary()},
		{"Secondary", ui.Secondary()},
		{"Outline", ui.Outline()},
		{"Ghost", ui.Ghost()},
		{"Destructive", ui.Destructive()},
		{"Link", ui.Link()},
	}
	var buttons []any
	for _, v := range variants {
		buttons = append(buttons, ui.Button(v.opt, ui.WithChildren(vdom.Text(v.label))))
	}

	return stack(
		row(buttons...),
		row(
			ui.Button(ui.Sm(), ui.WithChildren(vdom.Text("Small"))),
			ui.Button(ui.WithChildren(vdom.Text("Medium"))),
			ui.Button(ui.Lg(), ui.WithChildren(vdom.Text("Large"))),
			ui.Button(ui.Icon(), ui.WithAriaLabel("Add"), ui.WithTooltip("Add"), ui.WithChildren(vdom.Text("+"))),
		),
		row(
			ui.Button(
				ui.Primary(),
				ui.WithOnClick(func() { d.clicks++ }),
				ui.WithChildren(vdom.Textf("Clicked %d times", d.clicks)),
			),
			ui.Button(
				ui.Outline(),
				ui.WithLoading(d.loading),
				ui.WithOnClick(func() { d.loading = !d.loading }),
				ui.WithChildren(vdom.Text("Toggle loading")),
			),
			ui.Button(ui.WithDisabled(true), ui.WithChildren(vdom.Text("Disabled"))),
		),
	)
}

// Badge

type badgeDemo struct {
	tags []string
}

func newBadgeDemo(Env) vdom.Component {
	return &badgeDemo{tags: []string{"go", "ssr", "websocket"}}
}

func (d *badgeDemo) Render() *vdom.VNode {
	var variants []any
	for _, v := range []ui.Variant{ui.VariantDefault, ui.VariantSecondary, ui.VariantOutline, ui.VariantSuccess, ui.VariantWarning, ui.VariantDestructive} {
		variants = append(variants, ui.Badge(ui.BadgeVariant(v), ui.BadgeText(string(v))))
	}
	var sizes []any
	for _, s := range []ui.Size{ui.SizeSm, ui.SizeMd, ui.SizeLg} {
		sizes = append(sizes, ui.Badge(ui.BadgeSecondary(), ui.BadgeSize(s), ui.BadgeText(string(s))))
	}

	var tags []any
	for _, tag := range d.tags {
		tag := tag
		tags = append(tags, ui.Badge(ui.BadgeOutline(), ui.BadgeText(tag), ui.BadgeDismissible(func() { d.remove(tag) })))
	}
	if len(tags) == 0 {
		tags = append(tags, vdom.Span(vdom.Class("text-sm text-muted-foreground"), vdom.Text("All tags removed")))
	}

	return stack(row(variants...), row(sizes...), row(tags...))
}

func (d *badgeDemo) remove(tag string) {
	for i, t := range d.tags {
		if t == tag {
			d.tags = append(d.tags[:i:i], d.tags[i+1:]...)
			return
		}
	}
}

// Alert

type alertDemo struct {
	dismissed bool
}

func newAlertDemo(Env) vdom.Component { return &alertDemo{} }

func (d *alertDemo) Render() *vdom.VNode {
	var dismissible *vdom.VNode
	if !d.dismissed {
		dismissible = ui.Alert(
			ui.AlertInfo(),
			ui.AlertTitle("Heads up"),
			ui.AlertDescription("This alert can be dismissed."),
			ui.AlertDismissible(func() { d.dismissed = true }),
		)
	}
	return stack(
		ui.Alert(ui.AlertTitle("Default"), ui.AlertDescription("A neutral message.")),
		ui.Alert(ui.AlertSuccess(), ui.AlertTitle("Saved"), ui.AlertDescription("Your changes are live.")),
		ui.Alert(ui.AlertWarning(), ui.AlertTitle("Quota"), ui.AlertDescription("You have used 90% of your storage.")),
		ui.Alert(ui.AlertDestructive(), ui.AlertTitle("Build failed"), ui.AlertDescription("Check the logs for details.")),
		dismissible,
	)
}

// Toast

type toastDemo struct {
	provider *toast.Provider
	ctx      context.Context
	count    int
}

func newToastDemo(env Env) vdom.Component {
	p := toast.NewProvider(env.Toast...)
	return &toastDemo{provider: p, ctx: toast.NewContext(context.Background(), p)}
}

func (d *toastDemo) Render() *vdom.VNode {
	return stack(
		row(
			ui.Button(ui.WithOnClick(func() { toast.Success(d.ctx, "Changes saved") }), ui.WithChildren(vdom.Text("Success"))),
			ui.Button(ui.Destructive(), ui.WithOnClick(func() { toast.Error(d.ctx, "Upload failed") }), ui.WithChildren(vdom.Text("Error"))),
			ui.Button(ui.Secondary(), ui.WithOnClick(func() { toast.Warning(d.ctx, "Session expires soon") }), ui.WithChildren(vdom.Text("Warning"))),
			ui.Button(ui.Outline(), ui.WithOnClick(func() {
				toast.WithTitle(d.ctx, toast.VariantInfo, "Deploy started", "You'll be notified when it finishes.")
			}), ui.WithChildren(vdom.Text("With title"))),
			ui.Button(ui.Outline(), ui.WithOnClick(func() {
				d.count++
				toast.WithAction(d.ctx, toast.VariantDefault, fmt.Sprintf("Message %d archived", d.count), "Undo", func() {
					toast.Info(d.ctx, "Restored")
				})
			}), ui.WithChildren(vdom.Text("With action"))),
			ui.Button(ui.Ghost(), ui.WithOnClick(func() {
				d.provider.Add(toast.Toast{Title: "Sticky", Description: "Stays until closed.", Sticky: true})
			}), ui.WithChildren(vdom.Text("Sticky"))),
			ui.Button(ui.Ghost(), ui.WithOnClick(d.provider.Clear), ui.WithChildren(vdom.Text("Clear all"))),
		),
		ui.ToastViewport(d.provider),
	)
}

// Dispose drops queued toasts and their timers.
func (d *toastDemo) Dispose() { d.provider.Clear() }

// Slider

type sliderDemo struct {
	volume *ui.Slider
	price  *ui.Slider
}

func newSliderDemo(env Env) vdom.Component {
	return &sliderDemo{
		volume: ui.NewSlider(env.Host,
			ui.SliderLabel("Volume"),
			ui.SliderDefaultValue(40),
			ui.SliderStep(5),
			ui.SliderShowValue(),
			ui.SliderShowTooltip(),
			ui.SliderMarks(ui.SliderMark{Value: 0, Label: "0"}, ui.SliderMark{Value: 50, Label: "50"}, ui.SliderMark{Value: 100, Label: "100"}),
		),
		price: ui.NewSlider(env.Host,
			ui.SliderLabel("Price"),
			ui.SliderRange(),
			ui.SliderMin(0),
			ui.SliderMax(500),
			ui.SliderStep(10),
			ui.SliderDefaultValue(100, 300),
			ui.SliderShowValue(),
			ui.SliderColor(ui.ColorSuccess),
			ui.SliderHelperText("Drag either handle; they never cross."),
			ui.SliderFormat(func(v float64) string { return "$" + strconv.FormatFloat(v, 'f', -1, 64) }),
		),
	}
}

func (d *sliderDemo) Render() *vdom.VNode {
	return stack(d.volume.Render(), d.price.Render())
}

// Dispose ends any drag in progress.
func (d *sliderDemo) Dispose() {
	d.volume.Dispose()
	d.price.Dispose()
}

// Switch

type switchDemo struct {
	wifi   *ui.Switch
	notify *ui.Switch
	terms  *ui.Switch
	last   string
}

func newSwitchDemo(Env) vdom.Component {
	d := &switchDemo{}
	d.wifi = ui.NewSwitch(ui.SwitchID("wifi"), ui.SwitchLabel("Wi-Fi"), ui.SwitchDefaultChecked(true),
		ui.SwitchOnChange(func(on bool) { d.last = fmt.Sprintf("Wi-Fi %s", onOff(on)) }))
	d.notify = ui.NewSwitch(ui.SwitchID("notify"), ui.SwitchLabel("Notifications"),
		ui.SwitchDescription("Email me when a build fails."), ui.SwitchColor(ui.ColorSuccess),
		ui.SwitchOnChange(func(on bool) { d.last = fmt.Sprintf("Notifications %s", onOff(on)) }))
	d.terms = ui.NewSwitch(ui.SwitchID("terms"), ui.SwitchLabel("Accept terms"), ui.SwitchRequired(true),
		ui.SwitchError("You must accept the terms."))
	return d
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (d *switchDemo) Render() *vdom.VNode {
	var status *vdom.VNode
	if d.last != "" {
		status = vdom.P(vdom.Class("text-sm text-muted-foreground"), vdom.Text(d.last))
	}
	return stack(
		d.wifi.Render(),
		d.notify.Render(),
		d.terms.Render(),
		ui.NewSwitch(ui.SwitchLabel("Disabled"), ui.SwitchDisabled(true)).Render(),
		status,
	)
}

// Breadcrumbs

type breadcrumbsDemo struct {
	path []string
}

func newBreadcrumbsDemo(Env) vdom.Component {
	return &breadcrumbsDemo{path: []string{"Projects", "vangoui", "Components", "Feedback", "Toast"}}
}

func (d *breadcrumbsDemo) Render() *vdom.VNode {
	items := make([]ui.BreadcrumbItem, len(d.path))
	for i, label := range d.path {
		i := i
		items[i] = ui.BreadcrumbItem{Label: label, Current: i == len(d.path)-1}
		if i < len(d.path)-1 {
			items[i].OnClick = func() { d.path = d.path[:i+1] }
		}
	}
	return stack(
		ui.Breadcrumbs(ui.BreadcrumbsItems(items...), ui.BreadcrumbsShowHome(), ui.BreadcrumbsMaxItems(4)),
		ui.Breadcrumbs(
			ui.BreadcrumbsItems(
				ui.BreadcrumbItem{Label: "Docs", Href: "/"},
				ui.BreadcrumbItem{Label: "Guides", Href: "/guides"},
				ui.BreadcrumbItem{Label: "Live sessions", Current: true},
			),
			ui.BreadcrumbsSeparator(vdom.Text("/")),
			ui.BreadcrumbsSize(ui.SizeSm),
		),
	)
}

// Sidebar

type sidebarDemo struct {
	sidebar *ui.Sidebar
	active  string
}

func newSidebarDemo(Env) vdom.Component {
	d := &sidebarDemo{active: "inbox"}
	d.sidebar = ui.NewSidebar(
		ui.SidebarCollapsible(),
		ui.SidebarHeader(vdom.Span(vdom.Class("font-semibold"), vdom.Text("Acme"))),
		ui.SidebarFooter(vdom.Span(vdom.Class("text-xs text-muted-foreground"), vdom.Text("v1.0"))),
	)
	return d
}

func (d *sidebarDemo) item(id, label string) ui.SidebarItem {
	return ui.SidebarItem{ID: id, Label: label, Active: d.active == id, OnClick: func() { d.active = id }}
}

func (d *sidebarDemo) Render() *vdom.VNode {
	d.sidebar.SetItems(
		d.item("inbox", "Inbox"),
		d.item("drafts", "Drafts"),
		ui.SidebarItem{ID: "settings", Label: "Settings", Children: []ui.SidebarItem{
			d.item("profile", "Profile"),
			d.item("billing", "Billing"),
		}},
	)
	return vdom.Div(
		vdom.Class("flex h-96 rounded-lg border overflow-hidden"),
		d.sidebar.Render(),
		vdom.Main(vdom.Class("flex-1 p-6"), vdom.Textf("Selected: %s", d.active)),
	)
}

// Tabs

type tabsDemo struct {
	tabs []*ui.Tabs
}

func newTabsDemo(Env) vdom.Component {
	items := []ui.TabItem{
		{ID: "overview", Label: "Overview", Content: vdom.P(vdom.Text("Project summary and recent activity."))},
		{ID: "activity", Label: "Activity", Badge: "3", Content: vdom.P(vdom.Text("Three new deployments."))},
		{ID: "billing", Label: "Billing", Disabled: true},
		{ID: "settings", Label: "Settings", Content: vdom.P(vdom.Text("Rename or delete the project."))},
	}
	d := &tabsDemo{}
	for _, v := range []ui.Variant{ui.VariantDefault, ui.VariantPills, ui.VariantUnderline} {
		d.tabs = append(d.tabs, ui.NewTabs(ui.TabsItems(items...), ui.TabsVariant(v)))
	}
	d.tabs = append(d.tabs, ui.NewTabs(ui.TabsItems(items...), ui.TabsOrientation(ui.Vertical), ui.TabsDefaultValue("activity")))
	return d
}

func (d *tabsDemo) Render() *vdom.VNode {
	children := make([]any, len(d.tabs))
	for i, t := range d.tabs {
		children[i] = t.Render()
	}
	return stack(children...)
}

// Popover

type popoverDemo struct {
	filters *ui.Popover
	modal   *ui.Popover
	applied int
}

func newPopoverDemo(env Env) vdom.Component {
	d := &popoverDemo{}
	d.filters = ui.NewPopover(env.Host,
		ui.PopoverTrigger(ui.Button(ui.Outline(), ui.WithChildren(vdom.Text("Filters")))),
		ui.PopoverBody(ui.PopoverContent(
			ui.PopoverHeader(
				ui.PopoverTitle("Filters"),
				ui.PopoverDescription("Narrow the list of deployments."),
			),
			ui.PopoverFooter(
				ui.Button(ui.Sm(), ui.Primary(), ui.WithOnClick(func() {
					d.applied++
					d.filters.Close()
				}), ui.WithChildren(vdom.Text("Apply"))),
			),
		)),
	)
	d.modal = ui.NewPopover(env.Host,
		ui.PopoverModal(true),
		ui.PopoverSide("top"),
		ui.PopoverTrigger(ui.Button(ui.Secondary(), ui.WithChildren(vdom.Text("Modal popover")))),
		ui.PopoverBody(ui.PopoverContent(
			ui.PopoverTitle("Scroll locked"),
			ui.PopoverDescription("Press Escape or click outside to close."),
		)),
	)
	return d
}

func (d *popoverDemo) Render() *vdom.VNode {
	return stack(
		row(d.filters.Render(), d.modal.Render()),
		vdom.P(vdom.Class("text-sm text-muted-foreground"), vdom.Textf("Filters applied %d times", d.applied)),
	)
}

// Dispose releases the popovers' document and window listeners.
func (d *popoverDemo) Dispose() {
	d.filters.Dispose()
	d.modal.Dispose()
}

// Tooltip

type tooltipDemo struct {
	tips []*ui.Tooltip
}

func newTooltipDemo(env Env) vdom.Component {
	d := &tooltipDemo{}
	for _, side := range []floating.Side{floating.Top, floating.Right, floating.Bottom, floating.Left} {
		d.tips = append(d.tips, ui.NewTooltip(env.Host,
			ui.TooltipSide(side),
			ui.TooltipScheduler(env.Scheduler),
			ui.TooltipTrigger(ui.Button(ui.Outline(), ui.WithChildren(vdom.Text(string(side))))),
			ui.TooltipContent(vdom.Textf("Shown on the %s", side)),
		))
	}
	d.tips = append(d.tips, ui.NewTooltip(env.Host,
		ui.TooltipDisabled(true),
		ui.TooltipTrigger(ui.Button(ui.Ghost(), ui.WithChildren(vdom.Text("Disabled")))),
		ui.TooltipContent(vdom.Text("Never shown")),
	))
	return d
}

func (d *tooltipDemo) Render() *vdom.VNode {
	children := make([]any, len(d.tips))
	for i, tip := range d.tips {
		children[i] = tip.Render()
	}
	return row(children...)
}

// Dispose cancels pending delays and releases the listeners.
func (d *tooltipDemo) Dispose() {
	for _, tip := range d.tips {
		tip.Dispose()
	}
}

// Dropdown menu

type dropdownDemo struct {
	menu     *ui.DropdownMenu
	last     string
	showGrid bool
	density  string
}

func newDropdownDemo(env Env) vdom.Component {
	d := &dropdownDemo{last: "nothing yet", showGrid: true, density: "Comfortable"}
	d.menu = ui.NewDropdownMenu(env.Host,
		ui.DropdownAlign(floating.Start),
		ui.DropdownTrigger(ui.Button(ui.Outline(), ui.WithChildren(vdom.Text("Options")))),
	)
	return d
}

func (d *dropdownDemo) did(action string) func() {
	return func() { d.last = action }
}

func (d *dropdownDemo) Render() *vdom.VNode {
	entries := []ui.MenuEntry{
		ui.MenuHeading("Project"),
		{Kind: ui.MenuAction, Label: "Rename", Shortcut: "F2", OnSelect: d.did("rename")},
		ui.MenuItem("Duplicate", d.did("duplicate")),
		{Kind: ui.MenuAction, Label: "Archive", Disabled: true},
		ui.MenuDivider(),
		ui.MenuCheckboxItem("Show grid", d.showGrid, func(v bool) { d.showGrid = v }),
		ui.MenuDivider(),
		ui.MenuHeading("Density"),
	}
	entries = append(entries, ui.MenuRadioGroup(d.density, func(v string) { d.density = v }, "Compact", "Comfortable", "Spacious")...)
	entries = append(entries, ui.MenuDivider(), ui.MenuEntry{Kind: ui.MenuAction, Label: "Delete", Destructive: true, OnSelect: d.did("delete")})
	d.menu.SetItems(entries...)

	return stack(
		d.menu.Render(),
		vdom.P(vdom.Class("text-sm text-muted-foreground"),
			vdom.Textf("Last action: %s. Grid %s, %s density.", d.last, onOff(d.showGrid), strings.ToLower(d.density))),
	)
}

// Dispose releases the menu's listeners.
func (d *dropdownDemo) Dispose() { d.menu.Dispose() }

// Modal

type modalDemo struct {
	basic   *ui.Modal
	confirm *ui.Modal
	deleted int
}

func newModalDemo(env Env) vdom.Component {
	d := &modalDemo{}
	d.basic = ui.NewModal(env.Host,
		ui.ModalScheduler(env.Scheduler),
		ui.ModalTitle("Invite teammates"),
		ui.ModalDescription("They will get an email with a sign-in link."),
		ui.ModalBody(vdom.P(vdom.Class("text-sm"), vdom.Text("Press Escape, click the backdrop or use the close button."))),
	)
	d.confirm = ui.NewModal(env.Host,
		ui.ModalScheduler(env.Scheduler),
		ui.ModalSize(ui.SizeSm),
		ui.ModalShowCloseButton(false),
		ui.ModalCloseOnOverlayClick(false),
		ui.ModalTitle("Delete deployment?"),
		ui.ModalBody(ui.ModalFooter(
			ui.Button(ui.Outline(), ui.WithOnClick(func() { d.confirm.Close() }), ui.WithChildren(vdom.Text("Cancel"))),
			ui.Button(ui.Destructive(), ui.WithOnClick(func() {
				d.deleted++
				d.confirm.Close()
			}), ui.WithChildren(vdom.Text("Delete"))),
		)),
	)
	return d
}

func (d *modalDemo) Render() *vdom.VNode {
	return stack(
		row(
			ui.Button(ui.WithOnClick(d.basic.Open), ui.WithChildren(vdom.Text("Open modal"))),
			ui.Button(ui.Destructive(), ui.WithOnClick(d.confirm.Open), ui.WithChildren(vdom.Text("Delete deployment"))),
		),
		vdom.P(vdom.Class("text-sm text-muted-foreground"), vdom.Textf("Deleted %d times", d.deleted)),
		d.basic.Render(),
		d.confirm.Render(),
	)
}

// Dispose releases the scroll lock and the Escape listeners.
func (d *modalDemo) Dispose() {
	d.basic.Dispose()
	d.confirm.Dispose()
}
