package layer

import (
	"log/slog"

	"github.com/vango-dev/editorui/pkg/i18n"
	"github.com/vango-dev/editorui/pkg/markup"
	"github.com/vango-dev/editorui/pkg/vdom"
)

// Kind identifies a layer variant.
type Kind uint8

const (
	KindHeading Kind = iota + 1
	KindLink
	KindImage
	KindTable
	KindCustom
)

// String returns the canonical trigger name.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindLink:
		return "link"
	case KindImage:
		return "image"
	case KindTable:
		return "table"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its trigger name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind maps a trigger name to a Kind. "table-insert" is the table
// layer, "customLayer" the custom one.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "heading":
		return KindHeading, true
	case "link":
		return KindLink, true
	case "image":
		return KindImage, true
	case "table", "table-insert":
		return KindTable, true
	case "custom", "customLayer":
		return KindCustom, true
	}
	return 0, false
}

// Pos is a layer position relative to the toolbar.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Options are caller-supplied settings of a custom layer.
type Options struct {
	ClassName  string
	HeaderText string

	// Body renders the layer content. Required for custom layers.
	Body vdom.Component

	// Extra holds extension fields copied into the descriptor.
	Extra map[string]any
}

// Payload is the trigger context of a layer.
type Payload struct {
	Anchor  any
	Pos     Pos
	Options *Options
}

// Descriptor is everything a renderer needs to show a layer.
type Descriptor struct {
	Kind       Kind                         `json:"kind"`
	Render     func(vdom.Props) *vdom.VNode `json:"-"`
	ClassName  string                       `json:"className,omitempty"`
	HeaderText string                       `json:"headerText,omitempty"`
	FromEl     any                          `json:"-"`
	Pos        Pos                          `json:"pos"`
	Extra      map[string]any               `json:"extra,omitempty"`
}

// Observer is told about every descriptor the factory returns.
type Observer interface {
	LayerCreated(kind string)
}

// Option configures a Factory.
type Option func(*Factory)

// WithTranslator sets the translator for header texts and body labels.
func WithTranslator(tr i18n.Translator) Option {
	return func(f *Factory) {
		if tr != nil {
			f.translate = tr
		}
	}
}

// WithMarkup sets the binder used by Render.
func WithMarkup(b *markup.Binder) Option {
	return func(f *Factory) {
		if b != nil {
			f.html = b
		}
	}
}

// WithObserver sets a creation observer.
func WithObserver(o Observer) Option {
	return func(f *Factory) { f.observer = o }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Factory creates layer descriptors.
type Factory struct {
	translate i18n.Translator
	html      *markup.Binder
	observer  Observer
	logger    *slog.Logger
	bodies    bodies
}

// NewFactory creates a factory with the given options.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		translate: i18n.Identity,
		html:      markup.Default,
		logger:    slog.Default().With("component", "layer"),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.bodies = newBodies(f.translate, f.html)
	return f
}

// Create resolves the trigger name and builds its descriptor. It reports
// false for names outside the closed set and for a custom layer without a
// body.
func (f *Factory) Create(name string, p Payload) (Descriptor, bool) {
	kind, ok := ParseKind(name)
	if !ok {
		f.logger.Debug("no layer for trigger", "kind", name)
		return Descriptor{}, false
	}
	return f.New(kind, p)
}

// New builds the descriptor for kind.
func (f *Factory) New(kind Kind, p Payload) (Descriptor, bool) {
	d := Descriptor{Kind: kind, FromEl: p.Anchor, Pos: p.Pos}

	switch kind {
	case KindHeading:
		d.Render = f.bind(f.bodies.heading)
		d.ClassName = "te-heading-add"
	case KindLink:
		d.Render = f.bind(f.bodies.link)
		d.ClassName = "te-popup-add-link tui-editor-popup"
		d.HeaderText = f.translate.Get("Insert link")
	case KindImage:
		d.Render = f.bind(f.bodies.image)
		d.ClassName = "te-popup-add-image tui-editor-popup"
		d.HeaderText = f.translate.Get("Insert image")
	case KindTable:
		d.Render = f.bind(f.bodies.table)
		d.ClassName = "te-popup-add-table"
	case KindCustom:
		if p.Options == nil || p.Options.Body == nil {
			f.logger.Warn("custom layer without body")
			return Descriptor{}, false
		}
		body := p.Options.Body
		d.Render = func(props vdom.Props) *vdom.VNode {
			return f.html.Sprint(`<${} ...${} layerBody=${} />`, f.bodies.custom, props, body)
		}
		d.ClassName = p.Options.ClassName
		d.HeaderText = p.Options.HeaderText
		if len(p.Options.Extra) > 0 {
			d.Extra = make(map[string]any, len(p.Options.Extra))
			for k, v := range p.Options.Extra {
				d.Extra[k] = v
			}
		}
	default:
		return Descriptor{}, false
	}

	if f.observer != nil {
		f.observer.LayerCreated(kind.String())
	}
	return d, true
}

func (f *Factory) bind(body vdom.Component) func(vdom.Props) *vdom.VNode {
	return func(props vdom.Props) *vdom.VNode {
		return f.html.Sprint(`<${} ...${} />`, body, props)
	}
}
