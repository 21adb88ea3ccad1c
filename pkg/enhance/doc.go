// Package enhance injects props into component nodes of a VNode tree.
//
// It exists for compound components. A parent like Card wants to hand
// configuration to its Header/Body/Footer children without a shared
// context value and without the caller threading props through every
// level. Enhance walks the children the caller passed in and merges an
// externally supplied prop set into the matching component nodes, leaving
// everything else untouched.
//
// # Modes
//
// Map mode targets components by display name:
//
//	enhance.Enhance(children, enhance.Options{
//	    MapProps: map[string]vdom.Props{
//	        "Card.Header": {"title": "Hello"},
//	        "Card.Footer": {"description": "World"},
//	    },
//	})
//
// Broadcast mode injects one prop set into every component node:
//
//	enhance.Enhance(children, enhance.Options{
//	    Props: vdom.Props{"theme": "dark"},
//	})
//
// In both modes a node's own props win over injected ones, markup elements
// are never touched, and a matched component's children are not descended
// into.
//
// # Memoization
//
// Enhance is pure; Enhancer adds a single-entry cache keyed on input
// identity for render loops that call it once per pass. Instrument wraps
// an Enhancer with Prometheus metrics.
package enhance
