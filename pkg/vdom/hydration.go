package vdom

import (
	"strconv"
	"sync"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return "h" + strconv.FormatUint(uint64(g.counter), 10)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// AssignHIDs walks the tree and assigns HIDs to interactive elements.
// Component nodes are expanded in place so their output is covered too.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.Kind == KindComponent {
		if node.Comp == nil {
			return
		}
		out := node.Comp.Render()
		node.Kind = KindFragment
		node.Comp = nil
		node.Children = []*VNode{out}
	}

	if node.Kind == KindElement && node.IsInteractive() {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		AssignHIDs(child, gen)
	}
}

// CollectHIDs returns a map of HID to VNode for all nodes with HIDs.
func CollectHIDs(node *VNode) map[string]*VNode {
	out := make(map[string]*VNode)
	collectHIDs(node, out)
	return out
}

func collectHIDs(node *VNode, out map[string]*VNode) {
	if node == nil {
		return
	}
	if node.HID != "" {
		out[node.HID] = node
	}
	for _, child := range node.Children {
		collectHIDs(child, out)
	}
}
