package toolbar

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/editorui/pkg/i18n"
)

// Observer is notified about composition activity. The preview server
// plugs its metrics recorder in here.
type Observer interface {
	GroupsBuilt(n int)
	UnknownItem(name string)
}

// Option configures a Registry.
type Option func(*Registry)

// WithTranslator sets the tooltip translator. Default: i18n.Identity.
func WithTranslator(tr i18n.Translator) Option {
	return func(r *Registry) {
		if tr != nil {
			r.translate = tr
		}
	}
}

// WithLogger sets the logger used to report unknown items.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver sets a composition observer.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observer = o
	}
}

// Registry resolves item identifiers against the default catalog.
type Registry struct {
	translate i18n.Translator
	logger    *slog.Logger
	observer  Observer

	mu    sync.Mutex
	built bool
	items map[string]Item
	names []string
}

// NewRegistry creates a registry. The catalog is not built until the
// first lookup.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		translate: i18n.Identity,
		logger:    slog.Default().With("component", "toolbar"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// catalog returns the catalog, building it on first use. The returned
// map is never written after construction.
func (r *Registry) catalog() map[string]Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.built {
		r.items, r.names = buildCatalog(r.translate)
		r.built = true
		r.logger.Debug("toolbar catalog built", "items", len(r.names))
	}
	return r.items
}

// Reset drops the catalog so the next lookup rebuilds it.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.built = false
	r.items = nil
	r.names = nil
}

// Built reports whether the catalog has been constructed.
func (r *Registry) Built() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.built
}

// Resolve turns a spec into a descriptor. A Ref is looked up in the
// catalog and reports false when absent; an Item is returned unchanged
// and is never merged with the catalog entry of the same name.
func (r *Registry) Resolve(spec ItemSpec) (Item, bool) {
	switch s := spec.(type) {
	case Ref:
		it, ok := r.catalog()[string(s)]
		return it, ok
	case Item:
		return s, true
	default:
		return Item{}, false
	}
}

// Lookup resolves an identifier.
func (r *Registry) Lookup(name string) (Item, bool) {
	return r.Resolve(Ref(name))
}

// Names lists catalog identifiers in catalog order.
func (r *Registry) Names() []string {
	r.catalog()
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// DefaultSpecs is the stock toolbar layout.
func DefaultSpecs() []Spec {
	return []Spec{
		ExplicitGroup{Ref("heading"), Ref("bold"), Ref("italic"), Ref("strike")},
		ExplicitGroup{Ref("hr"), Ref("quote")},
		ExplicitGroup{Ref("ul"), Ref("ol"), Ref("task"), Ref("indent"), Ref("outdent")},
		ExplicitGroup{Ref("table"), Ref("image"), Ref("link")},
		ExplicitGroup{Ref("code"), Ref("codeblock")},
		ExplicitGroup{Ref(ScrollSyncName)},
	}
}
