package ui

import (
	"github.com/vango-go/compound/pkg/enhance"
	"github.com/vango-go/compound/pkg/vdom"
)

// Card is a compound component. Instead of sharing a context value with
// its sections, it pushes its own "title" and "description" props into
// the matching named children before rendering the container:
//
//	vdom.Comp(ui.Card,
//	    vdom.Prop("title", "Welcome"),
//	    vdom.Prop("description", "Start here"),
//	    vdom.Comp(ui.CardHeader),
//	    vdom.Comp(ui.CardBody, vdom.Text("...")),
//	    vdom.Comp(ui.CardFooter),
//	)
//
// Sections that set their own title/description keep them; injection
// never overrides a node's own props.
var Card = vdom.Named("Card", renderCard)

// CardHeader renders the header section. It receives "title" from the
// enclosing Card unless given one directly.
var CardHeader = vdom.Named("Card.Header", renderCardHeader)

// CardBody renders the main content section. It is never targeted by
// name, so it passes through enhancement untouched.
var CardBody = vdom.Named("Card.Body", renderCardBody)

// CardFooter renders the footer section. It receives "description" from
// the enclosing Card unless given one directly.
var CardFooter = vdom.Named("Card.Footer", renderCardFooter)

func renderCard(props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	mapProps := make(map[string]vdom.Props)
	if title, ok := props["title"].(string); ok && title != "" {
		mapProps["Card.Header"] = vdom.Props{"title": title}
	}
	if desc, ok := props["description"].(string); ok && desc != "" {
		mapProps["Card.Footer"] = vdom.Props{"description": desc}
	}

	sections := enhance.EnhanceAll(children, enhance.Options{MapProps: mapProps})

	return vdom.Div(vdom.Class("card"), sections)
}

func renderCardHeader(props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	title, _ := props["title"].(string)

	return vdom.Header(vdom.Class("card-header"),
		vdom.If(title != "", vdom.H3(vdom.Class("card-title"), vdom.Text(title))),
		children,
	)
}

func renderCardBody(props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Div(vdom.Class("card-body"), children)
}

func renderCardFooter(props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	desc, _ := props["description"].(string)

	return vdom.Footer(vdom.Class("card-footer"),
		vdom.If(desc != "", vdom.Small(vdom.Class("card-description"), vdom.Text(desc))),
		children,
	)
}
