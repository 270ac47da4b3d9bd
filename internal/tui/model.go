// Package tui is the full-screen grocery list. It owns no domain data: every
// key press is forwarded to the list controller and the rows are rebuilt
// from the controller afterwards.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	grocery "github.com/idilsaglam/grocery/internal/list"
	"github.com/idilsaglam/grocery/internal/share"
	"github.com/idilsaglam/grocery/internal/ui"
)

// Sharer hands the formatted list to another application.
type Sharer interface {
	Share(ctx context.Context, text string) share.Outcome
}

// Options configures a Model. Zero sizes mean "ask the terminal".
type Options struct {
	Context context.Context
	Logger  *slog.Logger
	Width   int
	Height  int
}

// shareResultMsg reports a finished handoff. It is logged only; the list
// never changes because of it.
type shareResultMsg struct {
	outcome share.Outcome
}

type Model struct {
	ctrl   *grocery.Controller
	sharer Sharer
	ctx    context.Context
	log    *slog.Logger

	list list.Model
	keys *keyMap

	// inline add
	adding bool
	ti     textinput.Model

	width, height int
}

func New(ctrl *grocery.Controller, sharer Sharer, opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = termSize()
	}

	t := ui.Current()
	keys := newKeyMap()

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.helpKeys
	l.AdditionalFullHelpKeys = keys.helpKeys
	// quitting is ours; esc must stay free to clear a filter
	l.KeyMap.Quit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add new item"
	ti.CharLimit = 200

	m := Model{
		ctrl:   ctrl,
		sharer: sharer,
		ctx:    opts.Context,
		log:    opts.Logger.With(slog.String("component", "tui")),
		list:   l,
		keys:   keys,
		ti:     ti,
		width:  opts.Width,
		height: opts.Height,
	}
	m.sync()
	m.resize()
	return m
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(ctrl *grocery.Controller, sharer Sharer, opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	p := tea.NewProgram(New(ctrl, sharer, opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case shareResultMsg:
		m.log.Info("share finished", slog.String("outcome", msg.outcome.String()))
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	// keys typed into the filter box belong to the list
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKey maps a key to a gesture. Keys that belong to a gesture that the
// current mode does not offer are swallowed so the list does not act on them.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.ti.SetValue("")
		m.resize()
		return true, m.ti.Focus()

	case key.Matches(msg, m.keys.Share):
		return true, m.shareCmd()

	case key.Matches(msg, m.keys.Tap):
		if id, ok := m.currentID(); ok {
			m.ctrl.Tap(id)
			return true, m.sync()
		}
		return true, nil

	case key.Matches(msg, m.keys.Select):
		if id, ok := m.currentID(); ok {
			m.ctrl.EnterSelectionMode(id)
			return true, m.sync()
		}
		return true, nil

	case key.Matches(msg, m.keys.Delete):
		if m.ctrl.Selecting() {
			return true, nil
		}
		if id, ok := m.currentID(); ok {
			m.ctrl.DeleteItem(id)
			m.log.Debug("deleted item", slog.String("id", id))
			return true, m.sync()
		}
		return true, nil

	case key.Matches(msg, m.keys.DeleteSelected):
		if !m.ctrl.Selecting() {
			return true, nil
		}
		n := m.ctrl.DeleteSelected()
		m.log.Debug("deleted selection", slog.Int("count", n))
		return true, m.sync()
	}
	return false, nil
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			// blank input is ignored and the bar stays open
			if _, added := m.ctrl.AddItem(m.ti.Value()); added {
				m.ti.SetValue("")
				cmd := m.sync()
				m.list.Select(len(m.list.Items()) - 1)
				return m, cmd
			}
			return m, nil
		case "esc":
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			m.resize()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) shareCmd() tea.Cmd {
	if m.sharer == nil || m.ctrl.Len() == 0 {
		return nil
	}
	sharer, ctx, text := m.sharer, m.ctx, m.ctrl.ShareText()
	return func() tea.Msg {
		return shareResultMsg{outcome: sharer.Share(ctx, text)}
	}
}

func (m *Model) currentID() (string, bool) {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return "", false
	}
	return r.item.ID, true
}

// sync rebuilds the rows and header from the controller.
func (m *Model) sync() tea.Cmd {
	sel := m.ctrl.Selection()
	chosen := make(map[string]bool, len(sel.IDs))
	for _, id := range sel.IDs {
		chosen[id] = true
	}

	items := m.ctrl.Items()
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{item: it, selecting: sel.Active, selected: chosen[it.ID]})
	}

	idx := m.list.Index()
	cmd := m.list.SetItems(rows)
	if n := len(m.list.VisibleItems()); n > 0 && idx >= n {
		m.list.Select(n - 1)
	}

	m.keys.setSelecting(sel.Active)
	m.list.Title = m.header()
	m.resize()
	return cmd
}

func (m Model) header() string {
	t := ui.Current()
	toBuy, purchased := m.ctrl.Counts()
	return fmt.Sprintf("%s   %s %d to buy  %s %d purchased",
		t.Title.Render("Grocery List"),
		t.Pending.Render(t.Bullet), toBuy,
		t.Success.Render(t.SymOK), purchased,
	)
}

// resize fits the list between the panel border and the footers.
func (m *Model) resize() {
	h := m.height - 2
	if m.ctrl.Selecting() {
		h -= 2
	}
	if m.adding {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
	m.ti.Width = w - 6
}

func termSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
