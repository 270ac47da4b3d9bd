package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/grocery/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()

	var body string
	if m.ctrl.Len() == 0 {
		body = m.emptyView()
	} else {
		body = m.list.View()
	}
	parts := []string{body}

	if sel := m.ctrl.Selection(); sel.Active && len(sel.IDs) > 0 {
		button := t.Danger.Render(fmt.Sprintf("%s Delete Selected (%d)", t.Trash, len(sel.IDs)))
		parts = append(parts, "", button+"  "+t.Muted.Render("x to delete · v to restart selection"))
	}

	if m.adding {
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		parts = append(parts, bar.Render("Add item\n"+m.ti.View()))
	}

	return ui.PanelString([]string{lipgloss.JoinVertical(lipgloss.Left, parts...)})
}

func (m Model) emptyView() string {
	t := ui.Current()
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)

	lines := []string{
		m.header(),
		"",
		center.Render(t.Basket),
		center.Render(t.Title.Render("Your list is empty")),
		center.Render(t.Muted.Render("Start adding items to your grocery list")),
	}
	if !m.adding {
		lines = append(lines, "", center.Render(t.Muted.Render("press a to add · q to quit")))
	}
	return strings.Join(lines, "\n")
}
