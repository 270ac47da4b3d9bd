package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, glyphs and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, SelectedRow, Purchased, Danger      lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	Bullet, Cursor           string
	Basket, Trash, Share     string
	SymOK, SymFail           string
}

var current = themeFor("classic")

// Themes lists the names SetTheme understands.
var Themes = []string{"classic", "neon", "mono"}

// SetTheme switches the active theme. Unknown names fall back to classic.
// mono also turns colour off.
func SetTheme(name string) {
	current = themeFor(name)
	if current.Name == "mono" {
		SetColorForcing(false, true)
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			SelectedRow:  lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("17")),
			Purchased:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Danger:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Padding(0, 1),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			Bullet:       "•",
			Cursor:       "▸ ",
			Basket:       "🧺",
			Trash:        "🗑",
			Share:        "⇪",
			SymOK:        "✔",
			SymFail:      "✖",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:         "mono",
			Title:        plain.Bold(true),
			Muted:        plain,
			Accent:       plain,
			Success:      plain,
			Error:        plain,
			Pending:      plain,
			Selected:     plain.Bold(true),
			SelectedRow:  plain.Reverse(true),
			Purchased:    plain.Strikethrough(true),
			Danger:       plain.Reverse(true).Padding(0, 1),
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			Bullet:       "-",
			Cursor:       "> ",
			Basket:       "(empty)",
			Trash:        "del",
			Share:        "share",
			SymOK:        "ok",
			SymFail:      "x",
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
			SelectedRow:  lipgloss.NewStyle().Bold(true).Reverse(true),
			Purchased:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Danger:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("196")).Padding(0, 1),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
			BoxUnchecked: "○",
			BoxChecked:   "●",
			Bullet:       "•",
			Cursor:       "> ",
			Basket:       "🧺",
			Trash:        "🗑",
			Share:        "⇪",
			SymOK:        "✔",
			SymFail:      "✖",
		}
	}
}
