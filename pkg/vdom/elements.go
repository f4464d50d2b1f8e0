package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, []any, Component,
// string, EventHandler.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		node.apply(arg)
	}
	return node
}

func (node *VNode) apply(arg any) {
	switch v := arg.(type) {
	case nil:
		// Ignore nil (allows conditional attributes)

	case Attr:
		node.setAttr(v)

	case []Attr:
		for _, a := range v {
			node.setAttr(a)
		}

	case *VNode:
		if v != nil {
			node.Children = append(node.Children, v)
		}

	case []*VNode:
		for _, child := range v {
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}

	case []any:
		for _, item := range v {
			node.apply(item)
		}

	case Component:
		node.Children = append(node.Children, &VNode{
			Kind: KindComponent,
			Comp: v,
		})

	case string:
		// Shorthand for text node
		node.Children = append(node.Children, &VNode{
			Kind: KindText,
			Text: v,
		})

	case EventHandler:
		if v.Handler != nil {
			node.Props[v.Event] = v.Handler
		}
	}
}

func (node *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
	}
	// Repeated class attributes accumulate instead of replacing.
	if a.Key == "class" {
		if prev, ok := node.Props["class"].(string); ok && prev != "" {
			if next, ok := a.Value.(string); ok {
				node.Props["class"] = CN(prev, next)
				return
			}
		}
	}
	node.Props[a.Key] = a.Value
}

// El creates an element with an arbitrary tag name (svg, path, circle, ...).
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// Document structure elements

func Html(args ...any) *VNode   { return createElement("html", args) }
func Head(args ...any) *VNode   { return createElement("head", args) }
func Body(args ...any) *VNode   { return createElement("body", args) }
func Title(args ...any) *VNode  { return createElement("title", args) }
func Meta(args ...any) *VNode   { return createElement("meta", args) }
func Link(args ...any) *VNode   { return createElement("link", args) }
func Script(args ...any) *VNode { return createElement("script", args) }

// Sectioning elements

func Header(args ...any) *VNode { return createElement("header", args) }
func Footer(args ...any) *VNode { return createElement("footer", args) }
func Main(args ...any) *VNode   { return createElement("main", args) }
func Nav(args ...any) *VNode    { return createElement("nav", args) }
func Section(args ...any) *VNode {
	return createElement("section", args)
}
func Aside(args ...any) *VNode { return createElement("aside", args) }
func H1(args ...any) *VNode    { return createElement("h1", args) }
func H2(args ...any) *VNode    { return createElement("h2", args) }
func H3(args ...any) *VNode    { return createElement("h3", args) }
func H4(args ...any) *VNode    { return createElement("h4", args) }

// Grouping and text elements

func Div(args ...any) *VNode    { return createElement("div", args) }
func P(args ...any) *VNode      { return createElement("p", args) }
func Span(args ...any) *VNode   { return createElement("span", args) }
func Ul(args ...any) *VNode     { return createElement("ul", args) }
func Ol(args ...any) *VNode     { return createElement("ol", args) }
func Li(args ...any) *VNode     { return createElement("li", args) }
func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }
func Br(args ...any) *VNode     { return createElement("br", args) }
func Hr(args ...any) *VNode     { return createElement("hr", args) }

// Form elements

func Form(args ...any) *VNode   { return createElement("form", args) }
func Input(args ...any) *VNode  { return createElement("input", args) }
func Button(args ...any) *VNode { return createElement("button", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }
