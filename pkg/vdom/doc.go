// Package vdom provides the virtual DOM used by vangoui components.
//
// Components build VNode trees on the server. The trees are rendered to
// HTML by the render package and, in a live session, re-rendered after
// every event so the browser can swap in the new markup.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H4(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Class Composition
//
// CN joins class lists, dropping empty entries and duplicates:
//
//	CN("rounded-md border", ClassIf(active, "bg-primary"), extra)
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to interactive
// elements (those with event handlers). The renderer emits the IDs as
// data-hid attributes so browser events can be routed back to handlers.
package vdom
