package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHelp renders the full-screen key reference.
func (m Model) renderHelp() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Title.Render(" bookdesk — keys "))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []key.Binding
	}{
		{"Navigate", []key.Binding{m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom, m.keys.SwitchView}},
		{"Books", []key.Binding{m.keys.AddBook, m.keys.EditBook, m.keys.Delete}},
		{"Rentals", []key.Binding{m.keys.RentBook, m.keys.MarkReturned, m.keys.Delete}},
		{"General", []key.Binding{m.keys.Refresh, m.keys.DismissError, m.keys.CycleTheme, m.keys.Help, m.keys.Quit}},
	}

	for _, sec := range sections {
		b.WriteString(s.Accent.Render(sec.name))
		b.WriteString("\n")
		for _, binding := range sec.bindings {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				s.Text.Render(fmt.Sprintf("%-12s", h.Key)),
				s.MutedText.Render(h.Desc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(s.FaintText.Render("press any key to close"))
	return b.String()
}
