package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	node := Div(Class("card"), ID("main"),
		H1(Text("Title")),
		"plain text",
		42,
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("node = %v %q, want div element", node.Kind, node.Tag)
	}
	if node.Props["class"] != "card" || node.Props["id"] != "main" {
		t.Errorf("props = %v, want class and id set", node.Props)
	}
	if len(node.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(node.Children))
	}
	if node.Children[0].Tag != "h1" {
		t.Errorf("first child tag = %q, want h1", node.Children[0].Tag)
	}
	if node.Children[1].Kind != KindText || node.Children[1].Text != "plain text" {
		t.Errorf("string shorthand child = %v", node.Children[1])
	}
	if node.Children[2].Kind != KindText || node.Children[2].Text != "42" {
		t.Errorf("int shorthand child = %v", node.Children[2])
	}
}

func TestCreateElementIgnoresNil(t *testing.T) {
	node := Div(nil, If(false, Span()), Class("x"))

	if len(node.Children) != 0 {
		t.Errorf("children = %d, want 0", len(node.Children))
	}
	if node.Props["class"] != "x" {
		t.Errorf("props = %v, want class set", node.Props)
	}
}

func TestCreateElementAttrSlice(t *testing.T) {
	attrs := []Attr{ID("a"), Class("b")}
	node := Span(attrs)

	if node.Props["id"] != "a" || node.Props["class"] != "b" {
		t.Errorf("props = %v, want id and class set", node.Props)
	}
}

func TestCreateElementPropsArg(t *testing.T) {
	node := Span(Props{"title": "T", "lang": "en"})

	if node.Props["title"] != "T" || node.Props["lang"] != "en" {
		t.Errorf("props = %v, want title and lang set", node.Props)
	}
}

func TestCreateElementKey(t *testing.T) {
	node := Li(Key("row-1"), Text("x"))

	if node.Key != "row-1" {
		t.Errorf("key = %q, want row-1", node.Key)
	}
}

func TestComp(t *testing.T) {
	header := Named("Card.Header", func(props Props, children []*VNode) *VNode {
		return Div()
	})

	node := Comp(header, Prop("title", "T"), Text("child"))

	if node.Kind != KindComponent {
		t.Fatalf("kind = %v, want KindComponent", node.Kind)
	}
	if node.Comp != header {
		t.Error("component reference not stored on node")
	}
	if node.Props["title"] != "T" {
		t.Errorf("props = %v, want title set", node.Props)
	}
	if len(node.Children) != 1 || node.Children[0].Text != "child" {
		t.Errorf("children = %v, want one text child", node.Children)
	}
}

func TestEmbeddedComponentChild(t *testing.T) {
	comp := Func(func(props Props, children []*VNode) *VNode { return Span() })
	node := Div(comp)

	if len(node.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(node.Children))
	}
	if node.Children[0].Kind != KindComponent || node.Children[0].Comp != comp {
		t.Errorf("child = %v, want component node wrapping comp", node.Children[0])
	}
}

func TestIsVoidElement(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"br", true},
		{"img", true},
		{"input", true},
		{"div", false},
		{"span", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := IsVoidElement(tt.tag); got != tt.want {
				t.Errorf("IsVoidElement(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestEl(t *testing.T) {
	node := El("custom-tag", Class("x"))

	if node.Tag != "custom-tag" {
		t.Errorf("tag = %q, want custom-tag", node.Tag)
	}
}
