// Package render provides server-side rendering of vdom trees to HTML.
//
// The Renderer walks a VNode tree and streams HTML to an io.Writer.
// Interactive elements (those with event handlers) receive a data-hid
// attribute and a data-on-<event> marker per handler; the handlers
// themselves are collected in a registry keyed by "<hid>_on<event>" so
// a live session can route browser events back to Go functions.
//
// Output is deterministic: attributes are emitted in sorted order and
// hydration IDs are assigned in document order.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(ui.Button(ui.WithChildren("Save")))
package render
