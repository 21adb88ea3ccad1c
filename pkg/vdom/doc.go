// Package vdom provides the virtual node tree that compound components are
// built from and enhanced over.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and
// configuration values. Attr is used to build Props.
//
// Component nodes are the interesting case: a component node keeps the
// props and children it was constructed with on the VNode itself, so a
// tree transform (see package enhance) can rewrite them before a renderer
// calls Component.Render. Components that implement Namer carry a stable
// display name such as "Card.Header", which is how name-targeted
// enhancement finds them.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Component nodes are created with Comp:
//
//	Comp(ui.CardHeader, Prop("title", "Hello"))
package vdom
