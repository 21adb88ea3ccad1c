package main

import (
	"github.com/vango-go/compound/internal/dev"
	"github.com/vango-go/compound/pkg/ui"
	"github.com/vango-go/compound/pkg/vdom"
)

// demoChildren returns the card sections the playground enhances. A fresh
// tree per call keeps the playground independent of previous injections.
func demoChildren() *vdom.VNode {
	return vdom.List([]*vdom.VNode{
		vdom.Comp(ui.CardHeader),
		vdom.Comp(ui.CardBody,
			vdom.P(vdom.Text("Sections receive props from their parent by display name.")),
		),
		vdom.Comp(ui.CardFooter),
	})
}

// demoPage builds the full demo page.
func demoPage() *vdom.VNode {
	return vdom.Html(vdom.Lang("en"),
		vdom.Head(
			vdom.Meta(vdom.Prop("charset", "utf-8")),
			vdom.Title(vdom.Text("compound demo")),
		),
		vdom.Body(
			vdom.Main(vdom.Class("demo"),
				vdom.H1(vdom.Text("Compound components")),

				vdom.Section(vdom.Class("demo-card"),
					vdom.H2(vdom.Text("Card (map mode)")),
					vdom.Comp(ui.Card,
						vdom.Prop("title", "Quarterly report"),
						vdom.Prop("description", "Updated five minutes ago"),
						vdom.Comp(ui.CardHeader),
						vdom.Comp(ui.CardBody,
							vdom.P(vdom.Text("Revenue is up and to the right.")),
						),
						vdom.Comp(ui.CardFooter),
					),
				),

				vdom.Section(vdom.Class("demo-toolbar"),
					vdom.H2(vdom.Text("Toolbar (broadcast mode)")),
					vdom.Comp(ui.Toolbar,
						vdom.Prop("size", "sm"),
						vdom.Prop("variant", "ghost"),
						vdom.Comp(ui.ToolbarButton, vdom.Prop("label", "Cut")),
						vdom.Comp(ui.ToolbarButton, vdom.Prop("label", "Copy")),
						vdom.Comp(ui.ToolbarButton, vdom.Prop("label", "Paste"), vdom.Prop("variant", "solid")),
					),
				),

				vdom.Section(vdom.Class("demo-playground"),
					vdom.H2(vdom.Text("Playground")),
					vdom.P(vdom.Text("Type an injection configuration and watch the card re-render.")),
					vdom.Textarea(
						vdom.ID("playground-input"),
						vdom.Prop("rows", 6),
						vdom.Text(`{"mapProps": {"Card.Header": {"title": "Hello"}}}`),
					),
					vdom.Pre(vdom.ID("playground-error"), vdom.Class("playground-error")),
					vdom.Div(vdom.ID("playground-preview"), vdom.Class("playground-preview")),
				),
			),
			vdom.Raw(dev.PlaygroundScript),
		),
	)
}
