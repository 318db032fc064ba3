package toolbar

import (
	"fmt"

	"github.com/vango-dev/editorui/internal/errors"
)

// Spec is one entry of a toolbar configuration: a Ref, an Item override
// or an ExplicitGroup.
type Spec interface {
	isSpec()
}

// ItemSpec is a single-item entry: a Ref or an Item.
type ItemSpec interface {
	Spec
	isItemSpec()
}

// Ref names a catalog entry.
type Ref string

func (Ref) isSpec()     {}
func (Ref) isItemSpec() {}

func (Item) isSpec()     {}
func (Item) isItemSpec() {}

// ExplicitGroup forces its items into a group of their own.
type ExplicitGroup []ItemSpec

func (ExplicitGroup) isSpec() {}

// Refs is shorthand for a list of single Ref specs.
func Refs(names ...string) []Spec {
	out := make([]Spec, len(names))
	for i, n := range names {
		out[i] = Ref(n)
	}
	return out
}

// ParseSpecs converts decoded configuration values (strings, objects and
// arrays of those, as produced by encoding/json or yaml.v3) into specs.
func ParseSpecs(raw []any) ([]Spec, error) {
	out := make([]Spec, 0, len(raw))
	for i, v := range raw {
		if list, ok := v.([]any); ok {
			group := make(ExplicitGroup, 0, len(list))
			for j, elem := range list {
				spec, err := parseItemSpec(elem)
				if err != nil {
					return nil, err.WithDetail(fmt.Sprintf("toolbarItems[%d][%d]: %s", i, j, err.Detail))
				}
				group = append(group, spec)
			}
			out = append(out, group)
			continue
		}
		spec, err := parseItemSpec(v)
		if err != nil {
			return nil, err.WithDetail(fmt.Sprintf("toolbarItems[%d]: %s", i, err.Detail))
		}
		out = append(out, spec)
	}
	return out, nil
}

// SpecValues is the inverse of ParseSpecs: refs become strings, items
// stay items and groups become nested lists.
func SpecValues(specs []Spec) []any {
	out := make([]any, 0, len(specs))
	for _, spec := range specs {
		switch t := spec.(type) {
		case ExplicitGroup:
			group := make([]any, len(t))
			for i, item := range t {
				group[i] = specValue(item)
			}
			out = append(out, group)
		case ItemSpec:
			out = append(out, specValue(t))
		}
	}
	return out
}

func specValue(spec ItemSpec) any {
	if ref, ok := spec.(Ref); ok {
		return string(ref)
	}
	return spec
}

func parseItemSpec(v any) (ItemSpec, *errors.UIError) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil, errors.New("E020").WithDetail("empty identifier")
		}
		return Ref(t), nil
	case map[string]any:
		return itemFromMap(t)
	default:
		return nil, errors.New("E020").WithDetail(fmt.Sprintf("unsupported value %T", v))
	}
}

func itemFromMap(m map[string]any) (Item, *errors.UIError) {
	var it Item
	for k, v := range m {
		switch k {
		case "name", "className", "tooltip", "activeTooltip", "command", "state":
			s, ok := v.(string)
			if !ok {
				return Item{}, errors.New("E020").WithDetail(fmt.Sprintf("%s must be a string", k))
			}
			switch k {
			case "name":
				it.Name = s
			case "className":
				it.ClassName = s
			case "tooltip":
				it.Tooltip = s
			case "activeTooltip":
				it.ActiveTooltip = s
			case "command":
				it.Command = s
			case "state":
				it.State = s
			}
		case "active", "toggle", "hidden":
			b, ok := v.(bool)
			if !ok {
				return Item{}, errors.New("E020").WithDetail(fmt.Sprintf("%s must be a boolean", k))
			}
			switch k {
			case "active":
				it.Active = b
			case "toggle":
				it.Toggle = b
			case "hidden":
				it.Hidden = b
			}
		default:
			if it.Extra == nil {
				it.Extra = make(map[string]any)
			}
			it.Extra[k] = v
		}
	}
	if it.Name == "" {
		return Item{}, errors.New("E020").WithDetail("item object needs a name")
	}
	return it, nil
}
