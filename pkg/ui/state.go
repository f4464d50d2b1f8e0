package ui

import (
	"strconv"
	"sync/atomic"
)

// controllable holds a value that is either owned by the component
// (uncontrolled) or mirrored from the parent (controlled). User-driven
// changes always reach onChange; only uncontrolled values are updated
// by them.
type controllable[T any] struct {
	value      T
	controlled bool
	onChange   func(T)
}

// request applies a user-driven change.
func (c *controllable[T]) request(next T) {
	if !c.controlled {
		c.value = next
	}
	if c.onChange != nil {
		c.onChange(next)
	}
}

// set is the parent pushing a new value. It never calls onChange.
func (c *controllable[T]) set(v T) {
	c.value = v
}

var idCounter atomic.Uint64

// autoID returns a process-unique element id for components that are not
// bound to a dom.Host.
func autoID(prefix string) string {
	return prefix + "-" + strconv.FormatUint(idCounter.Add(1), 10)
}
