package toolbar

import "fmt"

// Group partitions specs into toolbar groups in a single left-to-right
// pass. Consecutive single specs coalesce into the last group; an
// ExplicitGroup always becomes a new group and closes the current run.
// Unknown identifiers are skipped. scrollSyncHidden sets the visibility
// of the scroll-sync item; every other item keeps its own Hidden value.
func (r *Registry) Group(specs []Spec, scrollSyncHidden bool) []Group {
	groups := make([]Group, 0, len(specs))
	open := false

	for _, spec := range specs {
		switch s := spec.(type) {
		case ExplicitGroup:
			g := Group{Items: make([]Item, 0, len(s))}
			for _, elem := range s {
				if it, ok := r.resolveKnown(elem); ok {
					g.Items = append(g.Items, withScrollSync(it, scrollSyncHidden))
				}
			}
			groups = append(groups, g)
			open = false

		case ItemSpec:
			it, ok := r.resolveKnown(s)
			if !ok {
				continue
			}
			it = withScrollSync(it, scrollSyncHidden)
			if open {
				last := &groups[len(groups)-1]
				last.Items = append(last.Items, it)
			} else {
				groups = append(groups, Group{Items: []Item{it}})
				open = true
			}

		default:
			r.logger.Warn("skipping toolbar spec", "type", fmt.Sprintf("%T", spec))
			continue
		}

		last := &groups[len(groups)-1]
		last.Hidden = allHidden(last.Items)
	}

	if r.observer != nil {
		r.observer.GroupsBuilt(len(groups))
	}
	return groups
}

// resolveKnown resolves a spec and reports unknown identifiers.
func (r *Registry) resolveKnown(spec ItemSpec) (Item, bool) {
	it, ok := r.Resolve(spec)
	if !ok {
		name := fmt.Sprintf("%v", spec)
		r.logger.Warn("unknown toolbar item", "name", name)
		if r.observer != nil {
			r.observer.UnknownItem(name)
		}
	}
	return it, ok
}

// Retoggle reapplies the scroll-sync visibility rule to every item and
// recomputes each group's Hidden flag, without resolving or regrouping.
// The input is left untouched.
func Retoggle(groups []Group, scrollSyncHidden bool) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		g = g.clone()
		for j := range g.Items {
			g.Items[j] = withScrollSync(g.Items[j], scrollSyncHidden)
		}
		g.Hidden = allHidden(g.Items)
		out[i] = g
	}
	return out
}

// ApplyState sets Active on every stateful, non-toggle item from the
// document-state predicates in states. Missing predicates read as false.
func ApplyState(groups []Group, states map[string]bool) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		g = g.clone()
		for j, it := range g.Items {
			if it.State != "" && !it.Toggle {
				g.Items[j].Active = states[it.State]
			}
		}
		out[i] = g
	}
	return out
}

// SetActive sets Active on every item with the given name.
func SetActive(groups []Group, name string, active bool) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		g = g.clone()
		for j := range g.Items {
			if g.Items[j].Name == name {
				g.Items[j].Active = active
			}
		}
		out[i] = g
	}
	return out
}

// FindItem returns the first item with the given name.
func FindItem(groups []Group, name string) (Item, bool) {
	for _, g := range groups {
		for _, it := range g.Items {
			if it.Name == name {
				return it, true
			}
		}
	}
	return Item{}, false
}

func withScrollSync(it Item, scrollSyncHidden bool) Item {
	if it.IsScrollSync() {
		it.Hidden = scrollSyncHidden
	}
	return it
}

// allHidden reports whether every item is hidden. An empty group counts
// as hidden.
func allHidden(items []Item) bool {
	for _, it := range items {
		if !it.Hidden {
			return false
		}
	}
	return true
}
