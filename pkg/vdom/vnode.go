package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Component reference
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
//
// Element nodes carry a Tag and Props. Component nodes carry a Comp plus
// the Props and Children handed to it at the call site; the props stay on
// the node until a renderer invokes Comp.Render, which is what lets an
// enhancer rewrite them in between.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and configuration values
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds attributes and configuration values.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render props and children to a VNode.
type Component interface {
	Render(props Props, children []*VNode) *VNode
}

// Namer is implemented by components that expose a stable display name.
// The name is an author-assigned identifier, conventionally qualified by
// the compound it belongs to (e.g. "Card.Header"). Components without a
// display name can never be targeted by name.
type Namer interface {
	DisplayName() string
}

// DisplayNameOf returns the component's display name, or "" if it has none.
func DisplayNameOf(c Component) string {
	if n, ok := c.(Namer); ok {
		return n.DisplayName()
	}
	return ""
}

// FuncComponent wraps a render function with an optional display name.
type FuncComponent struct {
	name   string
	render func(props Props, children []*VNode) *VNode
}

// Render implements Component.
func (f *FuncComponent) Render(props Props, children []*VNode) *VNode {
	return f.render(props, children)
}

// DisplayName implements Namer. It returns "" for unnamed components.
func (f *FuncComponent) DisplayName() string {
	return f.name
}

// Func creates an anonymous component from a render function.
func Func(render func(props Props, children []*VNode) *VNode) Component {
	return &FuncComponent{render: render}
}

// Named creates a component with a stable display name.
func Named(name string, render func(props Props, children []*VNode) *VNode) Component {
	return &FuncComponent{name: name, render: render}
}
