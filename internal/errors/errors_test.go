package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "markup error",
			code:    "E001",
			wantMsg: "Malformed markup",
			wantCat: CategoryMarkup,
		},
		{
			name:    "toolbar error",
			code:    "E020",
			wantMsg: "Invalid toolbar item",
			wantCat: CategoryToolbar,
		},
		{
			name:    "config error",
			code:    "E120",
			wantMsg: "Config read failed",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "editorui.yaml")
	if err.Message != `file "editorui.yaml" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestUIError_Error(t *testing.T) {
	err := &UIError{Code: "E005", Message: "Mismatched closing tag"}
	if got := err.Error(); got != "E005: Mismatched closing tag" {
		t.Errorf("Error() = %q", got)
	}

	err.Detail = "expected </div>, found </span>"
	if got := err.Error(); got != "E005: Mismatched closing tag: expected </div>, found </span>" {
		t.Errorf("Error() with detail = %q", got)
	}

	plain := &UIError{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestUIError_WithMarkupPosition(t *testing.T) {
	err := New("E004").WithMarkupPosition(1, 3, "<div>")
	if got := err.Location.String(); got != "markup:2:4" {
		t.Errorf("Location = %q, want markup:2:4", got)
	}
	if len(err.Context) != 1 || err.Context[0] != "<div>" {
		t.Errorf("Context = %v", err.Context)
	}
}

func TestUIError_Builders(t *testing.T) {
	err := New("E001").
		WithDetail("custom detail").
		WithSuggestion("close the tag").
		WithExample("<div></div>")

	if err.Detail != "custom detail" || err.Suggestion != "close the tag" || err.Example != "<div></div>" {
		t.Errorf("builders did not apply: %+v", err)
	}
}

func TestUIError_Wrap(t *testing.T) {
	inner := New("E002")
	outer := New("E001").Wrap(inner)

	if outer.Unwrap() != inner {
		t.Error("Unwrap should return the inner error")
	}
	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is should find the inner error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E001") != nil {
		t.Error("FromError(nil) should return nil")
	}

	ue := New("E001")
	if FromError(ue, "E002") != ue {
		t.Error("FromError should pass through a UIError")
	}
	if FromError(fmt.Errorf("ctx: %w", ue), "E002") != ue {
		t.Error("FromError should find a wrapped UIError")
	}

	stdErr := stderrors.New("boom")
	result := FromError(stdErr, "E120")
	if result.Code != "E120" || result.Wrapped != stdErr {
		t.Errorf("FromError = %+v", result)
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("loading: %w", New("E120").Wrap(New("E124")))

	if !HasCode(err, "E120") {
		t.Error("HasCode should find the outer code")
	}
	if !HasCode(err, "E124") {
		t.Error("HasCode should find a wrapped code")
	}
	if HasCode(err, "E001") {
		t.Error("HasCode should not find an absent code")
	}
	if HasCode(stderrors.New("plain"), "E001") {
		t.Error("HasCode on a plain error should be false")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		loc  *Location
		want string
	}{
		{nil, ""},
		{&Location{File: "a.yaml", Line: 3}, "a.yaml:3"},
		{&Location{File: "a.yaml", Line: 3, Column: 7}, "a.yaml:3:7"},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	json := New("E001").WithMarkupPosition(0, 4, "").FormatJSON()

	for _, want := range []string{`"code":"E001"`, `"category":"markup"`, `"message":"Malformed markup"`, `"location":`} {
		if !strings.Contains(json, want) {
			t.Errorf("FormatJSON() missing %s: %s", want, json)
		}
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("E001")
	if !ok {
		t.Fatal("E001 should exist")
	}
	if template.Message != "Malformed markup" {
		t.Error("Template message mismatch")
	}

	if _, ok := GetTemplate("E999"); ok {
		t.Error("E999 should not exist")
	}
	if len(GetAllCodes()) != len(registry) {
		t.Error("GetAllCodes should list every registered code")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategoryToolbar,
		Message:  "Custom test error",
	})
	defer delete(registry, "E999")

	if err := New("E999"); err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}
}

func TestFormat(t *testing.T) {
	err := New("E005").
		WithMarkupPosition(0, 6, "<div></span>").
		WithSuggestion("Close <div> with </div> or <//>")

	want := "error E005: Mismatched closing tag\n" +
		"  at markup:1:7\n" +
		"    <div></span>\n" +
		"          ^\n" +
		"  A closing tag does not match the element it closes.\n" +
		"  hint: Close <div> with </div> or <//>\n" +
		"  see " + docBase + "e005\n"
	if got := err.Format(); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatMultilineFragment(t *testing.T) {
	src := "\n\t<ul>\n\t\t<li></ul>\n"
	err := New("E005").WithMarkupPosition(0, strings.Index(src, "</ul>"), src)

	formatted := err.Format()
	want := "    " + "  <li></ul>\n" + "    " + "      ^\n"
	if !strings.Contains(formatted, want) {
		t.Errorf("Format() caret not under </ul>:\n%s", formatted)
	}
}

func TestFormatWithoutPosition(t *testing.T) {
	err := New("E140").
		WithDetail("--prop url").
		WithExample("--prop url=https://example.com").
		Wrap(fmt.Errorf("missing ="))

	formatted := err.Format()
	for _, want := range []string{
		"error E140: Invalid argument\n",
		"  --prop url\n",
		"  caused by: missing =\n",
		"  example:\n    --prop url=https://example.com\n",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
	if strings.Contains(formatted, " at ") {
		t.Errorf("Format() printed a location:\n%s", formatted)
	}
}

func TestFprint(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		color     bool
		want      string
		wantColor bool
	}{
		{"coded", New("E121"), false, "error E121: Config not found", false},
		{"coded colored", New("E121"), true, "E121", true},
		{"wrapped coded", fmt.Errorf("load: %w", New("E121")), false, "error E121: Config not found", false},
		{"plain", stderrors.New("boom"), false, "error: boom\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			Fprint(&b, tt.err, tt.color)
			got := b.String()
			if !strings.Contains(got, tt.want) {
				t.Errorf("Fprint() = %q, want it to contain %q", got, tt.want)
			}
			if hasANSI := strings.Contains(got, "\033["); hasANSI != tt.wantColor {
				t.Errorf("ANSI codes present = %v, want %v", hasANSI, tt.wantColor)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name    string
		context []string
		column  int
		line    string
		col     int
		ok      bool
	}{
		{"single line", []string{"<div></span>"}, 6, "<div></span>", 6, true},
		{"second line", []string{"<a>\n<b></c>"}, 8, "<b></c>", 4, true},
		{"past end", []string{"<div>"}, 20, "<div>", 6, true},
		{"no context", nil, 3, "", 0, false},
		{"blank line", []string{"<a>\n\n"}, 5, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col, ok := excerpt(tt.context, tt.column)
			if line != tt.line || col != tt.col || ok != tt.ok {
				t.Errorf("excerpt() = %q, %d, %v; want %q, %d, %v", line, col, ok, tt.line, tt.col, tt.ok)
			}
		})
	}
}
