// Package tabs holds the single-selection state used by tabbed views.
package tabs

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownTab is returned when an identifier is outside the enumerated set.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is one entry of an enumerated tab set.
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Set is a fixed, ordered list of tabs. The first tab is the default.
type Set struct {
	tabs []Tab
}

// NewSet builds a set. It panics on an empty or duplicated list since sets are declared statically.
func NewSet(tabs ...Tab) Set {
	if len(tabs) == 0 {
		panic("tabs: empty tab set")
	}
	seen := make(map[string]struct{}, len(tabs))
	for _, tab := range tabs {
		if _, dup := seen[tab.ID]; dup {
			panic(fmt.Sprintf("tabs: duplicate tab %q", tab.ID))
		}
		seen[tab.ID] = struct{}{}
	}
	return Set{tabs: append([]Tab(nil), tabs...)}
}

// Tabs returns a copy of the tabs in declaration order.
func (s Set) Tabs() []Tab {
	return append([]Tab(nil), s.tabs...)
}

// Default returns the first tab.
func (s Set) Default() Tab {
	return s.tabs[0]
}

// Lookup finds a tab by identifier.
func (s Set) Lookup(id string) (Tab, bool) {
	for _, tab := range s.tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return Tab{}, false
}

// Selector holds the currently selected tab.
type Selector struct {
	set     Set
	current Tab
}

// NewSelector starts on the default tab.
func (s Set) NewSelector() *Selector {
	return &Selector{set: s, current: s.Default()}
}

// Select switches to id. An empty id keeps the current selection; an unknown id
// returns ErrUnknownTab and leaves the selection unchanged.
func (sel *Selector) Select(id string) error {
	if id == "" {
		return nil
	}
	tab, ok := sel.set.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTab, id)
	}
	sel.current = tab
	return nil
}

// Current returns the selected tab.
func (sel *Selector) Current() Tab {
	return sel.current
}

// Tabs returns the selectable tabs.
func (sel *Selector) Tabs() []Tab {
	return sel.set.Tabs()
}

// Block renders the content of one tab.
type Block[T any] func(ctx context.Context) (T, error)

// Render invokes exactly the block registered for the current selection.
func Render[T any](ctx context.Context, sel *Selector, blocks map[string]Block[T]) (T, error) {
	block, ok := blocks[sel.current.ID]
	if !ok {
		var zero T
		return zero, fmt.Errorf("tabs: no block registered for %q", sel.current.ID)
	}
	return block(ctx)
}
