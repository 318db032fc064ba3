package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[1;31m"
	ansiCyan  = "\033[36m"
	ansiGray  = "\033[90m"
)

type painter bool

func (p painter) paint(code, s string) string {
	if !p {
		return s
	}
	return code + s + ansiReset
}

// Format returns the multi-line report printed by the CLI, without colors.
//
//	error E005: Mismatched closing tag
//	  at markup:1:7
//	    <div></span>
//	          ^
//	  hint: Close elements in the reverse order they were opened
func (e *UIError) Format() string {
	var b strings.Builder
	e.write(&b, false)
	return b.String()
}

func (e *UIError) write(b *strings.Builder, color bool) {
	p := painter(color)

	header := "error"
	if e.Code != "" {
		header += " " + e.Code
	}
	fmt.Fprintf(b, "%s: %s\n", p.paint(ansiRed, header), e.Message)

	if e.Location != nil {
		fmt.Fprintf(b, "  at %s\n", p.paint(ansiCyan, e.Location.String()))
		if line, col, ok := excerpt(e.Context, e.Location.Column); ok {
			fmt.Fprintf(b, "    %s\n    %s%s\n", line, strings.Repeat(" ", col-1), p.paint(ansiRed, "^"))
		}
	}
	if e.Detail != "" {
		fmt.Fprintf(b, "  %s\n", e.Detail)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(b, "  caused by: %v\n", e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(b, "  hint: %s\n", e.Suggestion)
	}
	if e.Example != "" {
		b.WriteString("  example:\n")
		for _, line := range strings.Split(e.Example, "\n") {
			fmt.Fprintf(b, "    %s\n", line)
		}
	}
	if e.DocURL != "" {
		fmt.Fprintf(b, "  %s\n", p.paint(ansiGray, "see "+e.DocURL))
	}
}

// excerpt picks the line of a markup fragment that contains the 1-based
// byte column and returns it with the column rebased to that line. Tabs
// become spaces so the caret lines up.
func excerpt(context []string, column int) (string, int, bool) {
	if len(context) == 0 || column <= 0 {
		return "", 0, false
	}
	src := context[0]
	off := min(column-1, len(src))

	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := strings.IndexByte(src[off:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += off
	}
	line := strings.ReplaceAll(src[start:end], "\t", " ")
	if strings.TrimSpace(line) == "" {
		return "", 0, false
	}
	return line, off - start + 1, true
}

type jsonError struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	DocURL     string    `json:"docUrl,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *UIError) FormatJSON() string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.Encode(jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Location:   e.Location,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	})
	return strings.TrimSuffix(b.String(), "\n")
}

// Fprint writes err to w. Errors carrying a *UIError get the full report.
func Fprint(w io.Writer, err error, color bool) {
	var ue *UIError
	if !stderrors.As(err, &ue) {
		fmt.Fprintf(w, "%s %v\n", painter(color).paint(ansiRed, "error:"), err)
		return
	}
	var b strings.Builder
	ue.write(&b, color)
	io.WriteString(w, b.String())
}

// PrintError prints err to stderr, colored when stderr is a terminal.
func PrintError(err error) {
	fd := os.Stderr.Fd()
	Fprint(os.Stderr, err, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}
