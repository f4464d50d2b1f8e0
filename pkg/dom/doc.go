// Package dom is the server-side view of a browser page.
//
// A live session owns one Host. The browser client reports the viewport,
// the rects of elements marked with data-measure, and document/window
// events; components read geometry from the host and register listeners
// on it. Every listener and scroll lock is a Subscription that must be
// released, and a Scope bundles the subscriptions of one lifetime:
//
//	scope := dom.NewScope(host)
//	scope.Listen(dom.Document, dom.KeyDown, func(ev dom.Event) {
//		if ev.Key == "Escape" {
//			close()
//		}
//	})
//	defer scope.Release()
package dom
