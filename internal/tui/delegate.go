package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/ui"
)

// row adapts a grocery item to bubbles/list.Item. The selection flags are
// copied in on every sync; the row never outlives one render pass.
type row struct {
	item      model.Item
	selecting bool
	selected  bool
}

func (r row) Title() string       { return r.item.Name }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.item.Name }

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	if r.item.Purchased {
		box = t.Success.Render(t.BoxChecked)
	}

	focused := index == m.Index()
	trailer := ""
	if focused && !r.selecting {
		trailer = "  " + t.Muted.Render(t.Trash+" d")
	}

	// prefix, box, space, trailer
	room := m.Width() - 4 - lipgloss.Width(trailer)
	name := r.item.Name
	if room > 1 && runewidth.StringWidth(name) > room {
		name = runewidth.Truncate(name, room, "…")
	}
	switch {
	case r.selecting && r.selected:
		name = t.Selected.Render(name)
	case r.item.Purchased:
		name = t.Purchased.Render(name)
	}

	prefix := "  "
	if focused {
		prefix = t.Accent.Render(t.Cursor)
	}
	line := fmt.Sprintf("%s %s", box, name)
	if r.selecting && r.selected {
		line = t.SelectedRow.Render(line)
	}
	fmt.Fprint(w, prefix+line+trailer)
}
