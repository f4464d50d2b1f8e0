// Package ui provides the vangoui components.
//
// Stateless components are functions that take options and return a
// *vdom.VNode:
//
//	ui.Button(ui.Destructive(), ui.Sm(), ui.WithOnClick(del), ui.WithChildren("Delete"))
//	ui.Badge(ui.BadgeSuccess(), ui.BadgeText("Active"))
//	ui.Alert(ui.AlertWarning(), ui.AlertTitle("Heads up"), ui.AlertDescription("..."))
//
// Stateful components are values implementing vdom.Component. They are
// created once per session and rendered on every pass:
//
//	tabs := ui.NewTabs(ui.TabsItems(items...))
//	sw := ui.NewSwitch(ui.SwitchLabel("Notifications"))
//
// Components that depend on geometry or global events (Slider, Popover)
// are bound to a *dom.Host and must be disposed when unmounted.
//
// # Controlled and uncontrolled state
//
// Every stateful component can own its state or mirror a parent value.
// Passing the value option (SwitchChecked, TabsValue, SliderValue,
// PopoverOpen, SidebarCollapsed) makes it controlled: user actions are
// reported through the change handler and only take effect once the
// parent calls the matching Set method. Set methods never call the
// change handler.
//
// # Option naming
//
// Button options are unprefixed (Primary, Sm, WithOnClick). All other
// options carry the component name (BadgeVariant, TabsOnChange,
// PopoverSide) so several components can be configured side by side
// with a dot import.
package ui
