// Package i18n supplies the string lookup used for tooltips and layer
// headers. Lookup is a black box to the rest of the module: anything
// implementing Translator can be injected.
package i18n

import (
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/editorui/internal/errors"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en-US"

// Translator looks up display text for a key.
type Translator interface {
	Get(key string) string
}

// Func adapts a function to Translator.
type Func func(key string) string

// Get implements Translator.
func (f Func) Get(key string) string { return f(key) }

// Identity returns every key unchanged.
var Identity Translator = Func(func(key string) string { return key })

// Catalog holds texts per language. The zero value is empty; lookups of
// missing keys fall back to the default language and then to the key.
type Catalog struct {
	mu    sync.RWMutex
	langs map[string]map[string]string
}

// NewCatalog returns a catalog preloaded with the built-in en-US texts.
func NewCatalog() *Catalog {
	c := &Catalog{langs: make(map[string]map[string]string)}
	c.Add(DefaultLanguage, defaultTexts)
	return c
}

// Add merges texts for a language. Later additions win.
func (c *Catalog) Add(lang string, texts map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.langs == nil {
		c.langs = make(map[string]map[string]string)
	}
	lang = normalizeLang(lang)
	dst := c.langs[lang]
	if dst == nil {
		dst = make(map[string]string, len(texts))
		c.langs[lang] = dst
	}
	for k, v := range texts {
		dst[k] = v
	}
}

// Languages lists the languages present in the catalog, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.langs))
	for lang := range c.langs {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the text for key in lang.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if texts, ok := c.langs[normalizeLang(lang)]; ok {
		if v, ok := texts[key]; ok {
			return v, true
		}
	}
	if texts, ok := c.langs[normalizeLang(DefaultLanguage)]; ok {
		if v, ok := texts[key]; ok {
			return v, true
		}
	}
	return "", false
}

// Translator binds the catalog to one language.
func (c *Catalog) Translator(lang string) Translator {
	return Func(func(key string) string {
		if v, ok := c.Lookup(lang, key); ok {
			return v
		}
		return key
	})
}

// Load reads a YAML file mapping language codes to key/text tables:
//
//	ko-KR:
//	  Bold: 굵게
//	  Italic: 기울임꼴
func (c *Catalog) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New("E124").Wrap(err)
	}
	return c.Parse(data)
}

// Parse merges YAML catalog data.
func (c *Catalog) Parse(data []byte) error {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.New("E124").WithDetail(err.Error()).Wrap(err)
	}
	for lang, texts := range raw {
		c.Add(lang, texts)
	}
	return nil
}

// normalizeLang makes "en_us" and "en-US" the same key.
func normalizeLang(lang string) string {
	return strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
}
