package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/vdom"
)

// outline renders a tree as a compact string for comparisons.
func outline(n *vdom.VNode) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case vdom.KindText:
		return "'" + n.NodeValue() + "'"
	}
	s := n.TypeName()
	if n.Kind == vdom.KindFragment {
		s = "#fragment"
	}
	s += "("
	for i, c := range n.Children {
		if i > 0 {
			s += " "
		}
		s += outline(c)
	}
	return s + ")"
}

func TestSimpleElement(t *testing.T) {
	node := Default.Sprint(`<div class="te-toolbar">Hello</div>`)

	if node.Tag != "div" || node.Kind != vdom.KindElement {
		t.Fatalf("node = %s", outline(node))
	}
	if node.Props["class"] != "te-toolbar" {
		t.Errorf("class = %v, want te-toolbar", node.Props["class"])
	}
	if got := outline(node); got != "div('Hello')" {
		t.Errorf("outline = %s", got)
	}
}

func TestNestedElementsAndWhitespace(t *testing.T) {
	node := Default.Sprint(`
		<ul>
			<li>One</li>
			<li>Two <b>bold</b></li>
		</ul>
	`)

	want := "ul(li('One') li('Two ' b('bold')))"
	if got := outline(node); got != want {
		t.Errorf("outline = %s, want %s", got, want)
	}
}

func TestAttributeForms(t *testing.T) {
	handler := func() {}
	node := Default.HTML(
		[]string{`<input type=text name='url' disabled value=`, ` class="a `, ` c" onclick=`, ` data-n=1 />`},
		"https://example.com", "b", handler,
	)

	if node.Tag != "input" {
		t.Fatalf("Tag = %q, want input", node.Tag)
	}
	want := map[string]any{
		"type":     "text",
		"name":     "url",
		"disabled": true,
		"value":    "https://example.com",
		"class":    "a b c",
		"data-n":   "1",
	}
	for k, v := range want {
		if node.Props[k] != v {
			t.Errorf("Props[%q] = %v, want %v", k, node.Props[k], v)
		}
	}
	if _, ok := node.Props["onclick"].(func()); !ok {
		t.Errorf("onclick = %T, want func()", node.Props["onclick"])
	}
}

func TestHoleAttributeKeepsType(t *testing.T) {
	node := Default.Sprint(`<td data-row=${} selected="${}"></td>`, 3, true)

	if node.Props["data-row"] != 3 {
		t.Errorf("data-row = %#v, want 3", node.Props["data-row"])
	}
	if node.Props["selected"] != true {
		t.Errorf("selected = %#v, want true", node.Props["selected"])
	}
}

func TestSpreadProps(t *testing.T) {
	props := vdom.Props{"title": "Insert link", "class": "x"}
	node := Default.Sprint(`<div class="base" ...${} id="after"></div>`, props)

	if node.Props["class"] != "x" {
		t.Errorf("spread should override earlier attributes, class = %v", node.Props["class"])
	}
	if node.Props["title"] != "Insert link" || node.Props["id"] != "after" {
		t.Errorf("Props = %v", node.Props)
	}

	node = Default.Sprint(`<div ...${}></div>`, map[string]any{"a": 1})
	if node.Props["a"] != 1 {
		t.Errorf("map spread: Props = %v", node.Props)
	}

	node = Default.Sprint(`<div ...${}></div>`, nil)
	if len(node.Props) != 0 {
		t.Errorf("nil spread: Props = %v", node.Props)
	}
}

func TestComponentTag(t *testing.T) {
	body := vdom.Named("HeadingBody", func(props vdom.Props) *vdom.VNode {
		return vdom.H("ul", nil, props["label"].(string))
	})

	node := Default.Sprint(`<${} ...${} />`, body, vdom.Props{"label": "Headings"})

	if node.Kind != vdom.KindComponent || node.Comp != body {
		t.Fatalf("node = %s, want component reference", outline(node))
	}
	if node.Props["label"] != "Headings" {
		t.Errorf("Props = %v", node.Props)
	}
	if got := outline(node.Expand()); got != "ul('Headings')" {
		t.Errorf("expanded = %s", got)
	}
}

func TestComponentWithChildrenAndClose(t *testing.T) {
	wrap := vdom.Named("Wrap", func(props vdom.Props) *vdom.VNode {
		return vdom.H("section", nil, props["children"])
	})

	forms := []string{
		`<${}>x<//>`,
		`<${}>x</>`,
		`<${}>x</${}>`,
		`<${}>x</Wrap>`,
	}
	for _, src := range forms {
		t.Run(src, func(t *testing.T) {
			values := []any{wrap}
			if src == `<${}>x</${}>` {
				values = append(values, wrap)
			}
			node := Default.Sprint(src, values...)
			if got := outline(node.Expand()); got != "section('x')" {
				t.Errorf("expanded = %s", got)
			}
		})
	}
}

func TestStringTagHole(t *testing.T) {
	node := Default.Sprint(`<${} class="h">Title</${}>`, "h2", "h2")
	if got := outline(node); got != "h2('Title')" {
		t.Errorf("outline = %s", got)
	}
}

func TestVoidElements(t *testing.T) {
	node := Default.Sprint(`<p>a<br>b<hr/><img src="x.png"></p>`)

	want := "p('a' br() 'b' hr() img())"
	if got := outline(node); got != want {
		t.Errorf("outline = %s, want %s", got, want)
	}
}

func TestChildHoles(t *testing.T) {
	items := []*vdom.VNode{vdom.Li("a"), vdom.Li("b")}
	node := Default.Sprint(`<ul>${}${}<li>c</li>${}</ul>`, items, nil, "tail")

	want := "ul(li('a') li('b') li('c') 'tail')"
	if got := outline(node); got != want {
		t.Errorf("outline = %s, want %s", got, want)
	}
}

func TestComments(t *testing.T) {
	node := Default.Sprint(`<div><!-- toolbar --><span>x</span></div>`)
	if got := outline(node); got != "div(span('x'))" {
		t.Errorf("outline = %s", got)
	}
}

func TestMultipleRootsAndEmpty(t *testing.T) {
	node := Default.Sprint(`<a></a><b></b>`)
	if node.Kind != vdom.KindFragment || len(node.Children) != 2 {
		t.Errorf("outline = %s, want fragment of two", outline(node))
	}

	empty, err := Default.Parse([]string{"  \n  "})
	if err != nil || empty != nil {
		t.Errorf("Parse(blank) = %v, %v; want nil, nil", empty, err)
	}

	text := Default.Sprint(`plain`)
	if !text.IsText() || text.NodeValue() != "plain" {
		t.Errorf("single text root = %s", outline(text))
	}
}

func TestBindUsesInjectedBuilder(t *testing.T) {
	var calls []string
	counting := func(typ any, props vdom.Props, children ...any) *vdom.VNode {
		calls = append(calls, typ.(string))
		return vdom.H(typ, props, children...)
	}

	b := Bind(counting)
	b.Sprint(`<div><span></span><br></div>`)

	if diff := cmp.Diff([]string{"span", "br", "div"}, calls); diff != "" {
		t.Errorf("builder calls mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		values []any
		code   string
	}{
		{"unclosed element", `<div><span></span>`, nil, "E004"},
		{"unfinished start tag", `<div class="x"`, nil, "E004"},
		{"mismatched close", `<div></span>`, nil, "E005"},
		{"stray close", `</div>`, nil, "E005"},
		{"missing tag name", `< div></div>`, nil, "E001"},
		{"unterminated comment", `<div><!-- x</div>`, nil, "E001"},
		{"bad spread", `<div ...${}></div>`, []any{42}, "E003"},
		{"spread without hole", `<div ...x></div>`, nil, "E003"},
		{"bare hole attribute", `<div ${}></div>`, []any{"x"}, "E001"},
		{"bad tag hole", `<${}/>`, []any{42}, "E002"},
		{"typed nil component hole", `<${}/>`, []any{(*vdom.NamedComponent)(nil)}, "E002"},
		{"component closed by name of other", `<${}></Other>`, []any{vdom.Named("Mine", nil)}, "E005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragments := strings.Split(tt.src, HolePlaceholder)
			_, err := Default.Parse(fragments, tt.values...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestUnterminatedQuote(t *testing.T) {
	_, err := Default.Parse([]string{`<div class="x></div>`})
	if !errors.HasCode(err, "E001") {
		t.Errorf("err = %v, want E001", err)
	}
}

func TestArityMismatch(t *testing.T) {
	_, err := Default.Parse([]string{"<div>", "</div>"})
	if !errors.HasCode(err, "E006") {
		t.Errorf("err = %v, want E006", err)
	}
}

func TestHTMLPanicsOnMalformedMarkup(t *testing.T) {
	defer func() {
		r := recover()
		ue, ok := r.(*errors.UIError)
		if !ok {
			t.Fatalf("recovered %T, want *errors.UIError", r)
		}
		if ue.Location == nil || ue.Location.File != "markup" {
			t.Errorf("Location = %+v, want markup position", ue.Location)
		}
	}()
	Default.Sprint(`<div>`)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"hello", "hello", true},
		{" spaced ", " spaced ", true},
		{"\n  indented\n  ", "indented", true},
		{"\n\t\n", "", false},
		{"a\nb", "a\nb", true},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := normalizeText(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeText(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
