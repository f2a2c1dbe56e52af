package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain assembles the full frame: title bar, error banner, content
// or modal, and footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if banner := m.renderBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch m.mode {
	case modeAddBook, modeEditBook:
		b.WriteString(m.centered(m.renderBookForm()))
	case modeRentBook:
		b.WriteString(m.centered(m.renderRentalForm()))
	case modeConfirm:
		b.WriteString(m.centered(m.renderConfirm()))
	default:
		if m.view == ViewBooks {
			b.WriteString(m.renderBooks())
		} else {
			b.WriteString(m.renderRentals())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	s := m.theme.Styles()

	title := s.Title.Render(" bookdesk ")

	books := "Books"
	rentals := "Rentals"
	if m.view == ViewBooks {
		books = s.Accent.Render("[" + books + "]")
		rentals = s.MutedText.Render(" " + rentals + " ")
	} else {
		books = s.MutedText.Render(" " + books + " ")
		rentals = s.Accent.Render("[" + rentals + "]")
	}

	status := ""
	if m.snapshot.Loading() || m.busy {
		status = s.MutedText.Render(m.spin.View() + " working")
	}

	left := fmt.Sprintf("%s  %s %s", title, books, rentals)
	right := fmt.Sprintf("%s  %s", status, s.FaintText.Render(m.theme.Name))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderBanner renders the single error banner slot. It stays until
// dismissed or replaced by a newer failure.
func (m Model) renderBanner() string {
	if m.snapshot.LastError == "" {
		return ""
	}
	s := m.theme.Styles()
	return s.Banner.Render(fmt.Sprintf(" %s  (backspace to dismiss) ", m.snapshot.LastError))
}

func (m Model) renderFooter() string {
	s := m.theme.Styles()

	hints := "a add  e edit  d delete  r rent  tab switch  h help  q quit"
	if m.view == ViewRentals {
		hints = "r rent  x mark returned  d delete  tab switch  h help  q quit"
	}

	counts := fmt.Sprintf("%d books (%d available), %d rentals",
		len(m.snapshot.Books), len(m.availableBooks()), len(m.snapshot.Rentals))

	gap := m.width - len(hints) - len(counts) - 2
	if gap < 1 {
		gap = 1
	}
	return s.Footer.Render(" " + hints + strings.Repeat(" ", gap) + counts + " ")
}

func (m Model) centered(content string) string {
	if m.width <= 0 {
		return content
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}
