// Package list holds the grocery list and the multi-select state that the
// presentation layer drives. Every operation runs to completion and never
// fails; unknown ids are ignored so stale rows in the view are harmless.
package list

import (
	"strings"

	"github.com/idilsaglam/grocery/internal/model"
)

// SelectionState is a read-only snapshot of the selection mode.
type SelectionState struct {
	Active bool
	IDs    []string
}

// Controller owns the items and the selection. It is single-writer: one
// presentation instance drives it from one goroutine.
type Controller struct {
	items  []model.Item
	active bool
	sel    Selection
	nextID IDSource
}

type options struct {
	ids   IDSource
	seeds []string
}

// Option configures a Controller.
type Option func(*options)

// WithIDSource replaces the default ULID id source.
func WithIDSource(src IDSource) Option {
	return func(o *options) { o.ids = src }
}

// WithItems seeds the list, e.g. from command-line arguments. Seeds go
// through AddItem so blank names are dropped and names are trimmed.
func WithItems(names ...string) Option {
	return func(o *options) { o.seeds = append(o.seeds, names...) }
}

func New(opts ...Option) *Controller {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = ULIDSource()
	}
	c := &Controller{nextID: o.ids}
	for _, n := range o.seeds {
		c.AddItem(n)
	}
	return c
}

// AddItem appends a new unpurchased item named text (trimmed). It returns
// false and leaves the list untouched when text is blank; on true the caller
// should clear its input buffer.
func (c *Controller) AddItem(text string) (model.Item, bool) {
	name := strings.TrimSpace(text)
	if name == "" {
		return model.Item{}, false
	}
	it := model.Item{ID: c.freshID(), Name: name}
	c.items = append(c.items, it)
	return it, true
}

func (c *Controller) freshID() string {
	for {
		id := c.nextID()
		if c.indexOf(id) < 0 {
			return id
		}
	}
}

// TogglePurchased flips the purchased flag of id. Selection is unaffected.
func (c *Controller) TogglePurchased(id string) {
	if i := c.indexOf(id); i >= 0 {
		c.items[i].Purchased = !c.items[i].Purchased
	}
}

// DeleteItem removes id. The view only offers it outside selection mode.
func (c *Controller) DeleteItem(id string) {
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// EnterSelectionMode starts (or restarts) selection with exactly id selected,
// dropping any previous selection. A long-press on a row that no longer
// exists is ignored.
func (c *Controller) EnterSelectionMode(id string) {
	if c.indexOf(id) < 0 {
		return
	}
	c.sel.Clear()
	c.sel.Add(id)
	c.active = true
}

// ToggleSelect flips id's membership while selecting. Deselecting the last
// id leaves selection mode.
func (c *Controller) ToggleSelect(id string) {
	if !c.active {
		return
	}
	if !c.sel.Contains(id) && c.indexOf(id) < 0 {
		return
	}
	c.sel.Toggle(id)
	if c.sel.Len() == 0 {
		c.active = false
	}
}

// Tap is the plain tap gesture: it selects while selecting and toggles the
// purchased flag otherwise.
func (c *Controller) Tap(id string) {
	if c.active {
		c.ToggleSelect(id)
		return
	}
	c.TogglePurchased(id)
}

// DeleteSelected removes every selected item and leaves selection mode.
func (c *Controller) DeleteSelected() int {
	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if c.sel.Contains(it.ID) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
	c.sel.Clear()
	c.active = false
	return removed
}

// Items returns a copy of the list in insertion order.
func (c *Controller) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller) Item(id string) (model.Item, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return model.Item{}, false
}

func (c *Controller) Len() int { return len(c.items) }

func (c *Controller) Selection() SelectionState {
	return SelectionState{Active: c.active, IDs: c.sel.IDs()}
}

func (c *Controller) Selecting() bool { return c.active }

func (c *Controller) IsSelected(id string) bool {
	return c.active && c.sel.Contains(id)
}

// Counts reports how many items are still to buy and how many are purchased.
func (c *Controller) Counts() (toBuy, purchased int) {
	for _, it := range c.items {
		if it.Purchased {
			purchased++
		} else {
			toBuy++
		}
	}
	return
}

// ShareText is FormatShareText over the current list.
func (c *Controller) ShareText() string { return FormatShareText(c.items) }

func (c *Controller) indexOf(id string) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
