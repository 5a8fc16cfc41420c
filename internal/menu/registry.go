package menu

import "github.com/atomicstack/treehouse/internal/command"

// Registry holds named menu definitions.
type Registry struct {
	menus map[string][]Item
	order []string
}

// NewRegistry returns an empty menu registry.
func NewRegistry() *Registry {
	return &Registry{menus: make(map[string][]Item)}
}

// Register stores items under name, replacing any previous definition.
func (r *Registry) Register(name string, items []Item) {
	if _, ok := r.menus[name]; !ok {
		r.order = append(r.order, name)
	}
	cloned := make([]Item, len(items))
	copy(cloned, items)
	r.menus[name] = cloned
}

// Find returns the items registered under name.
func (r *Registry) Find(name string) ([]Item, bool) {
	items, ok := r.menus[name]
	if !ok {
		return nil, false
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out, true
}

// Names lists menu names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries resolves the menu called name against cmds. Items whose When
// predicate is false are dropped. Unknown menus resolve to nil.
func (r *Registry) Entries(name string, cmds *command.Registry) []Entry {
	items, ok := r.menus[name]
	if !ok {
		return nil
	}
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if entry, ok := resolve(item, cmds); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}
