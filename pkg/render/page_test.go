package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/editorui/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	page := PageData{
		Body:        vdom.Div(vdom.Text("Hello, World!")),
		Title:       "Toolbar <preview>",
		Lang:        "ko",
		Meta:        []MetaTag{{Name: "description", Content: "editor"}},
		StyleSheets: []string{"/static/editor.css"},
		Styles:      []string{".te-toolbar-group{display:inline-block}"},
		Scripts: []ScriptTag{
			{Src: "/static/head.js", Defer: true},
			{Inline: "connect()"},
		},
	}

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<html lang="ko">`,
		`<meta charset="utf-8">`,
		"<title>Toolbar &lt;preview&gt;</title>",
		`<meta name="description" content="editor">`,
		`<link rel="stylesheet" href="/static/editor.css">`,
		"<style>.te-toolbar-group{display:inline-block}</style>",
		"<div>Hello, World!</div>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in:\n%s", want, html)
		}
	}

	head := html[:strings.Index(html, "</head>")]
	if !strings.Contains(head, `<script src="/static/head.js" defer></script>`) {
		t.Errorf("deferred script should be in head:\n%s", head)
	}
	body := html[strings.Index(html, "<body>"):]
	if !strings.Contains(body, "<script>connect()</script>") {
		t.Errorf("inline script should be in body:\n%s", body)
	}
	if !strings.HasSuffix(html, "</body>\n</html>\n") {
		t.Errorf("document not closed:\n%s", html)
	}
}

func TestRenderPageDefaultLang(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `<html lang="en">`) {
		t.Errorf("got %q", buf.String())
	}
}
