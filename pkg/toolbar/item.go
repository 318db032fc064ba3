package toolbar

import "encoding/json"

// ScrollSyncName is the identifier of the scroll-sync toggle item, whose
// visibility is controlled separately from every other item.
const ScrollSyncName = "scrollSync"

// IconClass is appended to the class list of every catalog entry except
// the scroll-sync toggle.
const IconClass = "tui-toolbar-icons"

// Item describes one toolbar button. Name is its identity.
type Item struct {
	Name          string `json:"name" yaml:"name"`
	ClassName     string `json:"className,omitempty" yaml:"className,omitempty"`
	Tooltip       string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	ActiveTooltip string `json:"activeTooltip,omitempty" yaml:"activeTooltip,omitempty"`

	// Command names the action dispatched when the button is activated.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`

	// State names the document-state predicate that drives Active.
	State string `json:"state,omitempty" yaml:"state,omitempty"`

	Active bool `json:"active,omitempty" yaml:"active,omitempty"`
	Toggle bool `json:"toggle,omitempty" yaml:"toggle,omitempty"`
	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`

	// Extra carries caller-defined fields of an override.
	Extra map[string]any `json:"-" yaml:",inline"`
}

// IsScrollSync reports whether this is the scroll-sync toggle.
func (it Item) IsScrollSync() bool {
	return it.Name == ScrollSyncName
}

// MarshalJSON flattens Extra into the object.
func (it Item) MarshalJSON() ([]byte, error) {
	type plain Item
	data, err := json.Marshal(plain(it))
	if err != nil || len(it.Extra) == 0 {
		return data, err
	}
	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range it.Extra {
		if _, taken := merged[k]; !taken {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// UnmarshalJSON collects unknown fields into Extra.
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range knownFields {
		delete(all, k)
	}
	*it = Item(p)
	if len(all) > 0 {
		it.Extra = all
	} else {
		it.Extra = nil
	}
	return nil
}

var knownFields = []string{
	"name", "className", "tooltip", "activeTooltip", "command",
	"state", "active", "toggle", "hidden",
}

// Group is an ordered run of items rendered together. Hidden holds iff
// every item is hidden.
type Group struct {
	Items  []Item `json:"items"`
	Hidden bool   `json:"hidden"`
}

// clone copies the group and its item slice.
func (g Group) clone() Group {
	items := make([]Item, len(g.Items))
	copy(items, g.Items)
	return Group{Items: items, Hidden: g.Hidden}
}
