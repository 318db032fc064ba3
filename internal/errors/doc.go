// Package errors provides structured, actionable error messages for editorui.
//
// Every error carries a registered code that maps to a category, a short
// message and a longer explanation. Errors can be enriched with a markup
// position, a suggestion and an example before they are shown.
//
// # Error Categories
//
//   - markup: malformed templates handed to the markup binder
//   - build: invalid input to the tree builder
//   - toolbar: toolbar configuration problems
//   - config: configuration file errors
//   - protocol: preview server wire errors
//   - cli: command line errors
//
// Markup and build errors are programmer errors: the packages that raise
// them panic with a *UIError rather than returning one, since they signal a
// static authoring mistake.
//
// # Usage
//
//	err := errors.New("E020").
//	    WithDetail("toolbarItems[3]: got a number").
//	    WithSuggestion("toolbarItems entries must be strings, objects or arrays")
//
//	errors.PrintError(err) // colored when stderr is a terminal
//
// The preview server sends FormatJSON output in its error responses.
package errors
