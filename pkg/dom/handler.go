package dom

// Invoke calls an element event handler with ev. Handlers are either
// func() or func(Event); Invoke reports false for any other type.
func Invoke(handler any, ev Event) bool {
	switch h := handler.(type) {
	case func():
		h()
	case func(Event):
		h(ev)
	case Listener:
		h(ev)
	default:
		return false
	}
	return true
}
