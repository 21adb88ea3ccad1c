package enhance

import "github.com/vango-go/compound/pkg/vdom"

// Options is the injection configuration. Exactly one of MapProps and
// Props should be set per call.
//
// If both are set, MapProps wins and Props is ignored. That is defined
// precedence, not an error: the call is still valid and behaves exactly
// like Map mode.
type Options struct {
	// MapProps maps a component display name to the props injected into
	// components carrying that name (Map mode). Components without a
	// display name are never matched.
	MapProps map[string]vdom.Props

	// Props is injected into every component node regardless of display
	// name (Broadcast mode).
	Props vdom.Props
}

// Enhance walks children and returns a new tree in which eligible
// component nodes have the configured props merged into their own props.
// The input tree is never mutated; unchanged subtrees are shared with the
// output.
//
// The walk is depth-first and left-to-right:
//
//   - nil, text and raw nodes pass through unchanged.
//   - Fragments are traversed member by member, preserving order and
//     positions (nil members stay nil).
//   - Markup elements (KindElement) pass through unchanged; the walk does
//     not descend into their children.
//   - A component node with a non-empty candidate prop set becomes a new
//     node whose props are the candidate overlaid by the node's own props
//     (own keys win on conflict). Its children are left alone: injection
//     stops at the matched boundary.
//   - A component node with no candidate but with children gets each child
//     enhanced recursively, so nested compounds stay reachable.
//
// A missing display name, a name absent from MapProps, and an empty prop
// set all mean "no augmentation", never an error.
func Enhance(children *vdom.VNode, opts Options) *vdom.VNode {
	return enhanceNode(children, opts)
}

// EnhanceAll applies Enhance to every member of children, preserving order
// and positions. Nil members stay nil.
func EnhanceAll(children []*vdom.VNode, opts Options) []*vdom.VNode {
	if children == nil {
		return nil
	}
	out := make([]*vdom.VNode, len(children))
	for i, child := range children {
		out[i] = enhanceNode(child, opts)
	}
	return out
}

func enhanceNode(node *vdom.VNode, opts Options) *vdom.VNode {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindFragment:
		out := *node
		out.Children = EnhanceAll(node.Children, opts)
		return &out

	case vdom.KindComponent:
		if node.Comp == nil {
			return node
		}

		candidate := opts.candidateFor(node)
		if len(candidate) > 0 {
			out := *node
			out.Props = mergeProps(candidate, node.Props)
			return &out
		}

		if len(node.Children) > 0 {
			out := *node
			out.Children = EnhanceAll(node.Children, opts)
			return &out
		}

		return node

	default:
		// Text, raw and markup element nodes are never augmented.
		return node
	}
}

// candidateFor returns the props to inject into the component node, or nil
// when no augmentation applies at this node.
func (o Options) candidateFor(node *vdom.VNode) vdom.Props {
	if o.MapProps != nil {
		name := vdom.DisplayNameOf(node.Comp)
		if name == "" {
			return nil
		}
		return o.MapProps[name]
	}
	return o.Props
}

// mergeProps overlays own on top of injected. Own keys win on conflict;
// non-conflicting keys from both sides are present.
func mergeProps(injected, own vdom.Props) vdom.Props {
	merged := make(vdom.Props, len(injected)+len(own))
	for k, v := range injected {
		merged[k] = v
	}
	for k, v := range own {
		merged[k] = v
	}
	return merged
}
