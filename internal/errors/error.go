package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryMarkup   Category = "markup"
	CategoryBuild    Category = "build"
	CategoryToolbar  Category = "toolbar"
	CategoryConfig   Category = "config"
	CategoryProtocol Category = "protocol"
	CategoryCLI      Category = "cli"
)

// Location represents a source location. For markup errors File is
// "markup", Line is the 1-based template fragment and Column the 1-based
// byte offset inside it.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// UIError is a structured error with location, suggestions, and documentation.
type UIError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where the error occurred, if known.
	Location *Location

	// Context holds the markup fragment the Location points into.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *UIError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *UIError) Unwrap() error {
	return e.Wrapped
}

// WithMarkupPosition records a position inside a template. fragment and
// offset are zero-based; the whole fragment becomes the context.
func (e *UIError) WithMarkupPosition(fragment, offset int, source string) *UIError {
	e.Location = &Location{File: "markup", Line: fragment + 1, Column: offset + 1}
	if source != "" {
		e.Context = []string{source}
	}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *UIError) WithSuggestion(s string) *UIError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *UIError) WithExample(ex string) *UIError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *UIError) WithDetail(d string) *UIError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *UIError) Wrap(err error) *UIError {
	e.Wrapped = err
	return e
}

// New creates a UIError from a registered error code.
func New(code string) *UIError {
	template, ok := registry[code]
	if !ok {
		return &UIError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &UIError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new UIError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *UIError {
	return &UIError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a UIError.
func FromError(err error, code string) *UIError {
	if err == nil {
		return nil
	}
	var ue *UIError
	if stderrors.As(err, &ue) {
		return ue
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is, or wraps, a UIError with the given code.
func HasCode(err error, code string) bool {
	var ue *UIError
	for err != nil {
		if !stderrors.As(err, &ue) {
			return false
		}
		if ue.Code == code {
			return true
		}
		err = ue.Wrapped
	}
	return false
}
