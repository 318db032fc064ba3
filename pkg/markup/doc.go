// Package markup is a declarative front end over the vdom tree builder.
//
// A template is a list of literal markup fragments interleaved with
// embedded values, the way a tagged template literal is split:
//
//	markup.Default.HTML(
//	    []string{`<div class="te-layer">`, `</div>`},
//	    body,
//	)
//
// Sprint is the same thing with "${}" marking each hole inline:
//
//	markup.Default.Sprint(`<${} ...${} />`, HeadingBody, props)
//
// Supported syntax: elements with explicit close (`</div>` or `<//>`),
// self-closing elements, HTML void tags, tag names supplied by a hole
// (a string or a vdom.Component), quoted, unquoted, boolean and hole
// attribute values, spread props (`...${props}`), holes in child position
// and `<!-- comments -->`.
//
// A Binder is bound to one vdom.Builder. Malformed markup is a programmer
// error: HTML and Sprint panic with a *errors.UIError, Parse returns it.
package markup
