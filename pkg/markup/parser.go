package markup

import (
	"fmt"
	"strings"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/vdom"
)

// parser walks the fragments left to right. The cursor sits at pos in
// fragments[fi]; reaching the end of any fragment but the last means the
// next token is the embedded value values[fi].
type parser struct {
	fragments []string
	values    []any
	build     vdom.Builder
	fi, pos   int
}

// openTag remembers an element start for close matching and errors.
type openTag struct {
	name    string
	comp    vdom.Component
	fi, pos int
}

func (o *openTag) display() string {
	if o.comp != nil {
		return "<${" + vdom.ComponentName(o.comp) + "}>"
	}
	return "<" + o.name + ">"
}

// closeTag is a parsed closing tag.
type closeTag struct {
	name  string
	value any
	hole  bool
	short bool // </> or <//>
}

func (p *parser) cur() string { return p.fragments[p.fi] }

func (p *parser) atEOF() bool {
	return p.fi == len(p.fragments)-1 && p.pos >= len(p.cur())
}

func (p *parser) atHole() bool {
	return p.pos >= len(p.cur()) && p.fi < len(p.fragments)-1
}

func (p *parser) peek() (byte, bool) {
	if p.pos < len(p.cur()) {
		return p.cur()[p.pos], true
	}
	return 0, false
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.cur()[p.pos:], s)
}

func (p *parser) takeHole() any {
	v := p.values[p.fi]
	p.fi++
	p.pos = 0
	return v
}

func (p *parser) skipSpace() {
	s := p.cur()
	for p.pos < len(s) && isSpace(s[p.pos]) {
		p.pos++
	}
}

func (p *parser) fail(code, detail string) *errors.UIError {
	return errors.New(code).
		WithDetail(detail).
		WithMarkupPosition(p.fi, p.pos, p.cur())
}

// parseChildren collects child values until the closing tag of open, or
// until the end of input at the top level.
func (p *parser) parseChildren(open *openTag) ([]any, *closeTag, error) {
	var children []any

	for {
		if p.atEOF() {
			if open != nil {
				return nil, nil, errors.New("E004").
					WithDetail(open.display()+" is never closed").
					WithMarkupPosition(open.fi, open.pos, p.fragments[open.fi]).
					WithSuggestion("Close it with a matching end tag, <//>, or write it as self-closing")
			}
			return children, nil, nil
		}

		if p.atHole() {
			children = append(children, p.takeHole())
			continue
		}

		c, _ := p.peek()
		if c == '<' {
			switch {
			case p.hasPrefix("<!--"):
				if err := p.skipComment(); err != nil {
					return nil, nil, err
				}
			case p.hasPrefix("</"):
				if open == nil {
					return nil, nil, p.fail("E005", "closing tag without an open element")
				}
				p.pos += 2
				ct, err := p.parseCloseTag()
				if err != nil {
					return nil, nil, err
				}
				return children, ct, nil
			default:
				node, err := p.parseElement()
				if err != nil {
					return nil, nil, err
				}
				children = append(children, node)
			}
			continue
		}

		if text, ok := normalizeText(p.readText()); ok {
			children = append(children, text)
		}
	}
}

// readText consumes text up to the next tag or the end of the fragment.
func (p *parser) readText() string {
	s := p.cur()
	start := p.pos
	for p.pos < len(s) && s[p.pos] != '<' {
		p.pos++
	}
	return s[start:p.pos]
}

func (p *parser) skipComment() error {
	rest := p.cur()[p.pos+4:]
	end := strings.Index(rest, "-->")
	if end < 0 {
		return p.fail("E001", "unterminated comment")
	}
	p.pos += 4 + end + 3
	return nil
}

// parseCloseTag parses what follows "</".
func (p *parser) parseCloseTag() (*closeTag, error) {
	ct := &closeTag{}
	switch {
	case p.hasPrefix("/>"):
		p.pos += 2
		ct.short = true
		return ct, nil
	case p.hasPrefix(">"):
		p.pos++
		ct.short = true
		return ct, nil
	case p.atHole():
		ct.value = p.takeHole()
		ct.hole = true
	default:
		ct.name = p.readName()
		if ct.name == "" {
			return nil, p.fail("E001", "expected a tag name after </")
		}
	}

	p.skipSpace()
	if c, ok := p.peek(); !ok || c != '>' {
		return nil, p.fail("E001", "expected > to end the closing tag")
	}
	p.pos++
	return ct, nil
}

// parseElement parses an element starting at '<'.
func (p *parser) parseElement() (*vdom.VNode, error) {
	open := &openTag{fi: p.fi, pos: p.pos}
	p.pos++

	var typ any
	if p.atHole() {
		switch v := p.takeHole().(type) {
		case string:
			if v == "" {
				return nil, p.fail("E002", "embedded tag name is empty")
			}
			typ, open.name = v, v
		case vdom.Component:
			if vdom.IsNilComponent(v) {
				return nil, p.fail("E002", "embedded component is nil")
			}
			typ, open.comp = v, v
		default:
			return nil, p.fail("E002", fmt.Sprintf("cannot use %T as an element type", v))
		}
	} else {
		open.name = p.readName()
		if open.name == "" {
			return nil, p.fail("E001", "expected a tag name after <")
		}
		typ = open.name
	}

	props := vdom.Props{}
	for {
		p.skipSpace()
		if p.atEOF() {
			return nil, errors.New("E004").
				WithDetail(open.display()+" start tag is never finished").
				WithMarkupPosition(open.fi, open.pos, p.fragments[open.fi])
		}
		if p.atHole() {
			return nil, p.fail("E001", "embedded value in attribute position").
				WithSuggestion("Use ...${} to spread props or name=${} to set one")
		}

		if p.hasPrefix("/>") {
			p.pos += 2
			return p.build(typ, props), nil
		}
		if p.hasPrefix(">") {
			p.pos++
			break
		}

		if p.hasPrefix("...") {
			p.pos += 3
			if !p.atHole() {
				return nil, p.fail("E003", "... must be followed by an embedded value")
			}
			if err := spread(props, p.takeHole()); err != nil {
				return nil, err.WithMarkupPosition(p.fi, p.pos, p.cur())
			}
			continue
		}

		name := p.readAttrName()
		if name == "" {
			c, _ := p.peek()
			return nil, p.fail("E001", fmt.Sprintf("unexpected %q in start tag", c))
		}
		if p.hasPrefix("=") {
			p.pos++
			value, err := p.readAttrValue()
			if err != nil {
				return nil, err
			}
			props[name] = value
		} else {
			props[name] = true
		}
	}

	if open.comp == nil && vdom.IsVoidElement(open.name) {
		return p.build(typ, props), nil
	}

	children, ct, err := p.parseChildren(open)
	if err != nil {
		return nil, err
	}
	if !closes(open, ct) {
		return nil, p.fail("E005", "expected a close for "+open.display()).
			WithSuggestion("Close elements in the reverse order they were opened")
	}
	return p.build(typ, props, children...), nil
}

// closes reports whether ct ends the element opened by open.
func closes(open *openTag, ct *closeTag) bool {
	if ct.short {
		return true
	}
	if open.comp != nil {
		if ct.hole {
			c, ok := ct.value.(vdom.Component)
			return ok && vdom.ComponentName(c) == vdom.ComponentName(open.comp)
		}
		return ct.name == vdom.ComponentName(open.comp)
	}
	if ct.hole {
		s, ok := ct.value.(string)
		return ok && s == open.name
	}
	return ct.name == open.name
}

func (p *parser) readName() string {
	s := p.cur()
	start := p.pos
	for p.pos < len(s) && isNameChar(s[p.pos]) {
		p.pos++
	}
	return s[start:p.pos]
}

func (p *parser) readAttrName() string {
	s := p.cur()
	start := p.pos
	for p.pos < len(s) {
		c := s[p.pos]
		if isSpace(c) || c == '=' || c == '>' || c == '/' || c == '"' || c == '\'' || c == '<' {
			break
		}
		p.pos++
	}
	return s[start:p.pos]
}

// valuePart is one piece of an attribute value: literal text or a hole.
type valuePart struct {
	text  string
	value any
	hole  bool
}

// readAttrValue reads a value after '='. A value made of exactly one hole
// keeps the embedded value's type; anything else is concatenated into a
// string.
func (p *parser) readAttrValue() (any, error) {
	var parts []valuePart

	quote, _ := p.peek()
	quoted := quote == '"' || quote == '\''
	if quoted {
		p.pos++
	}

	for {
		if p.atEOF() {
			if quoted {
				return nil, p.fail("E001", "unterminated attribute value")
			}
			break
		}
		if p.atHole() {
			parts = append(parts, valuePart{value: p.takeHole(), hole: true})
			continue
		}

		s := p.cur()
		start := p.pos
		done := false
		for p.pos < len(s) {
			c := s[p.pos]
			if quoted && c == quote {
				done = true
				break
			}
			if !quoted && (isSpace(c) || c == '>' || strings.HasPrefix(s[p.pos:], "/>")) {
				done = true
				break
			}
			p.pos++
		}
		if p.pos > start {
			parts = append(parts, valuePart{text: s[start:p.pos]})
		}
		if done {
			if quoted {
				p.pos++
			}
			break
		}
	}

	if len(parts) == 1 && parts[0].hole {
		return parts[0].value, nil
	}
	if len(parts) == 0 && !quoted {
		return nil, p.fail("E001", "missing attribute value after =")
	}

	var b strings.Builder
	for _, part := range parts {
		if part.hole {
			if part.value != nil {
				fmt.Fprint(&b, part.value)
			}
			continue
		}
		b.WriteString(part.text)
	}
	return b.String(), nil
}

// spread copies a props-like value into props.
func spread(props vdom.Props, v any) *errors.UIError {
	switch m := v.(type) {
	case nil:
		return nil
	case vdom.Props:
		for k, val := range m {
			props[k] = val
		}
	case map[string]any:
		for k, val := range m {
			props[k] = val
		}
	case map[string]string:
		for k, val := range m {
			props[k] = val
		}
	default:
		return errors.New("E003").WithDetail(fmt.Sprintf("cannot spread %T", v))
	}
	return nil
}

// normalizeText trims whitespace runs that contain a newline from both
// ends. Whitespace without a newline is significant and kept.
func normalizeText(s string) (string, bool) {
	if strings.Contains(s, "\n") {
		i := 0
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if strings.Contains(s[:i], "\n") {
			s = s[i:]
		}
		j := len(s)
		for j > 0 && isSpace(s[j-1]) {
			j--
		}
		if strings.Contains(s[j:], "\n") {
			s = s[:j]
		}
	}
	return s, s != ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == ':' || c == '.'
}
