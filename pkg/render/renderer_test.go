package render

import (
	"strings"
	"testing"

	"github.com/vango-go/compound/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Text("Hello, World!")
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Text("<script>alert('xss')</script>")
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<div class="container">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, `<h1>Title</h1>`) {
		t.Errorf("should contain h1, got %q", html)
	}
	if !strings.Contains(html, `<p>Content</p>`) {
		t.Errorf("should contain p, got %q", html)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "input",
			node: vdom.Input(vdom.Type("text"), vdom.Name("email")),
			want: `<input name="email" type="text">`,
		},
		{
			name: "br",
			node: vdom.Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: vdom.Img(vdom.Src("/a.png"), vdom.Alt("a")),
			want: `<img alt="a" src="/a.png">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.ID("z"), vdom.Class("a"), vdom.Lang("en"))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div class="a" id="z" lang="en"></div>` {
		t.Errorf("attribute order not deterministic, got %q", html)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "true renders bare name",
			node: vdom.Input(vdom.Disabled()),
			want: `<input disabled>`,
		},
		{
			name: "false is omitted",
			node: vdom.Input(vdom.Prop("disabled", false)),
			want: `<input>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderFragment(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Fragment(
		vdom.Span(vdom.Text("a")),
		vdom.Span(vdom.Text("b")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<span>a</span><span>b</span>" {
		t.Errorf("got %q, want fragment children without wrapper", html)
	}
}

func TestRenderComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	greeting := vdom.Named("Greeting", func(props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		name, _ := props["name"].(string)
		return vdom.Div(vdom.Class("greeting"),
			vdom.H1(vdom.Textf("Hello, %s", name)),
			children,
		)
	})

	node := vdom.Comp(greeting, vdom.Prop("name", "Go"), vdom.P(vdom.Text("welcome")))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<h1>Hello, Go</h1>") {
		t.Errorf("component props not passed to render, got %q", html)
	}
	if !strings.Contains(html, "<p>welcome</p>") {
		t.Errorf("component children not passed to render, got %q", html)
	}
}

func TestRenderNilComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := &vdom.VNode{Kind: vdom.KindComponent}
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("got %q, want empty output", html)
	}
}

func TestRenderRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Raw("<b>bold</b>")
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<b>bold</b>" {
		t.Errorf("got %q, want raw HTML unescaped", html)
	}
}

func TestRenderNil(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("got %q, want empty output", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := &vdom.VNode{Kind: vdom.VKind(99)}
	if _, err := renderer.RenderToString(node); err == nil {
		t.Error("expected error for unknown node kind")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.P(vdom.Text("x")))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output should contain newlines, got %q", html)
	}
	if !strings.Contains(html, "  <p>") {
		t.Errorf("pretty output should indent children, got %q", html)
	}
}
