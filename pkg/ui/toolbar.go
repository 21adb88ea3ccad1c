package ui

import (
	"github.com/vango-go/compound/pkg/enhance"
	"github.com/vango-go/compound/pkg/vdom"
)

// Toolbar is a compound component that uses broadcast enhancement: every
// component child receives the toolbar's "size" and "variant" props, no
// matter what it is called. Markup children (separators, plain spans) are
// left alone.
var Toolbar = vdom.Named("Toolbar", renderToolbar)

// ToolbarButton renders a button that picks up size/variant from the
// enclosing Toolbar. Its own props always win, so a single button can opt
// out of the broadcast values.
var ToolbarButton = vdom.Named("Toolbar.Button", renderToolbarButton)

func renderToolbar(props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	shared := make(vdom.Props)
	if size, ok := props["size"].(string); ok && size != "" {
		shared["size"] = size
	}
	if variant, ok := props["variant"].(string); ok && variant != "" {
		shared["variant"] = variant
	}

	items := enhance.EnhanceAll(children, enhance.Options{Props: shared})

	return vdom.Div(vdom.Class("toolbar"), vdom.Role("toolbar"), items)
}

func renderToolbarButton(props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	size, _ := props["size"].(string)
	variant, _ := props["variant"].(string)
	label, _ := props["label"].(string)

	classes := []string{"toolbar-button"}
	if size != "" {
		classes = append(classes, "toolbar-button-"+size)
	}
	if variant != "" {
		classes = append(classes, "toolbar-button-"+variant)
	}

	return vdom.Button(vdom.Class(classes...), vdom.Type("button"),
		vdom.If(label != "", vdom.Text(label)),
		children,
	)
}
