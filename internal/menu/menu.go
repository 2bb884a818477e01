// Package menu models the host's menu bar for GUI activation: named menu
// trees, commands bound to script snippets, and the host's convention of
// inserting unindexed items where they would fall alphabetically.
package menu

import (
	"fmt"
	"sort"
)

// Runner executes a command's script when its menu item is invoked.
type Runner func(script string) error

// Root is the set of top-level menus an interactive session exposes.
type Root struct {
	menus  []*Menu
	byName map[string]*Menu
	runner Runner
}

// NewRoot returns an empty menu bar. Commands invoked under it run through
// runner; a nil runner makes invocation an error.
func NewRoot(runner Runner) *Root {
	return &Root{byName: make(map[string]*Menu), runner: runner}
}

// Menu returns the named top-level menu, creating it on first use, the
// host's menu('name') behavior.
func (r *Root) Menu(name string) *Menu {
	if m, ok := r.byName[name]; ok {
		return m
	}
	m := &Menu{name: name, root: r}
	r.menus = append(r.menus, m)
	r.byName[name] = m
	return m
}

// Menus returns the top-level menu names in creation order.
func (r *Root) Menus() []string {
	names := make([]string, len(r.menus))
	for i, m := range r.menus {
		names[i] = m.name
	}
	return names
}

// Item is a single entry in a menu: a submenu, a command, or a separator.
type Item struct {
	name    string
	script  string
	hotkey  string
	submenu *Menu
	sep     bool
	root    *Root
}

// Name returns the item's display name; separators have none.
func (i *Item) Name() string { return i.name }

// Script returns the command source bound to the item.
func (i *Item) Script() string { return i.script }

// Hotkey returns the item's key binding, if any.
func (i *Item) Hotkey() string { return i.hotkey }

// IsSeparator reports whether the item is a separator line.
func (i *Item) IsSeparator() bool { return i.sep }

// Submenu returns the nested menu, or nil for commands and separators.
func (i *Item) Submenu() *Menu { return i.submenu }

// Invoke runs the item's script through the root's runner.
func (i *Item) Invoke() error {
	if i.sep || i.submenu != nil {
		return fmt.Errorf("menu: %q is not a command", i.name)
	}
	if i.root == nil || i.root.runner == nil {
		return fmt.Errorf("menu: no command runner installed")
	}
	return i.root.runner(i.script)
}

// Menu is an ordered list of items.
type Menu struct {
	name  string
	items []*Item
	root  *Root
}

// Name returns the menu's display name.
func (m *Menu) Name() string { return m.name }

// Items returns the menu's entries in display order.
func (m *Menu) Items() []*Item {
	out := make([]*Item, len(m.items))
	copy(out, m.items)
	return out
}

// FindItem returns the named entry, or nil.
func (m *Menu) FindItem(name string) *Item {
	for _, item := range m.items {
		if !item.sep && item.name == name {
			return item
		}
	}
	return nil
}

// SortedIndex returns the position name would take if the existing entries
// were sorted alphabetically, which is where the host drops unindexed items.
func (m *Menu) SortedIndex(name string) int {
	names := make([]string, 0, len(m.items)+1)
	for _, item := range m.items {
		names = append(names, item.name)
	}
	names = append(names, name)
	sort.Strings(names)
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return len(m.items)
}

// AddMenu inserts a submenu at index; a negative index appends, an index of
// SortedIndex-style placement is the caller's choice. Reusing a name returns
// the existing submenu.
func (m *Menu) AddMenu(name string, index int) *Menu {
	if existing := m.FindItem(name); existing != nil && existing.submenu != nil {
		return existing.submenu
	}
	sub := &Menu{name: name, root: m.root}
	m.insert(&Item{name: name, submenu: sub, root: m.root}, index)
	return sub
}

// AddCommand inserts a command at index; a negative index appends. Adding a
// command name that already exists in this menu is an error, which keeps
// repeated GUI activation from stacking duplicate entries.
func (m *Menu) AddCommand(name, script, hotkey string, index int) (*Item, error) {
	if existing := m.FindItem(name); existing != nil {
		return nil, fmt.Errorf("menu %q: command %q already registered", m.name, name)
	}
	item := &Item{name: name, script: script, hotkey: hotkey, root: m.root}
	m.insert(item, index)
	return item, nil
}

// AddSeparator appends a separator line.
func (m *Menu) AddSeparator() {
	m.items = append(m.items, &Item{sep: true, root: m.root})
}

func (m *Menu) insert(item *Item, index int) {
	if index < 0 || index >= len(m.items) {
		m.items = append(m.items, item)
		return
	}
	m.items = append(m.items[:index], append([]*Item{item}, m.items[index:]...)...)
}
