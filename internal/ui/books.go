package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/bookrental"
)

// renderBooks renders the book collection as rows with availability chips.
func (m Model) renderBooks() string {
	s := m.theme.Styles()
	var b strings.Builder

	if m.snapshot.LoadingBooks && len(m.snapshot.Books) == 0 {
		b.WriteString(s.MutedText.Render(m.spin.View() + " Loading books..."))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.snapshot.Books) == 0 {
		b.WriteString(s.MutedText.Render("No books yet. Press 'a' to add one."))
		b.WriteString("\n")
		return b.String()
	}

	titleW, authorW := m.bookColumnWidths()

	header := fmt.Sprintf("  %-*s  %-*s  %-12s  %s", titleW, "TITLE", authorW, "AUTHOR", "GENRE", "STATUS")
	b.WriteString(s.Header.Render(header))
	b.WriteString("\n")

	for i, book := range m.snapshot.Books {
		chip := s.AvailableChip.Render("AVAILABLE")
		if !book.Available() {
			chip = s.UnavailableChip.Render("UNAVAILABLE")
		}

		row := fmt.Sprintf("%-*s  %-*s  %-12s",
			titleW, truncate(book.Title, titleW),
			authorW, truncate(book.Author, authorW),
			truncate(book.Genre, 12))

		if i == m.bookCursor {
			b.WriteString(s.Selected.Render("> " + row))
		} else {
			b.WriteString(s.Text.Render("  " + row))
		}
		b.WriteString("  ")
		b.WriteString(chip)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) bookColumnWidths() (titleW, authorW int) {
	titleW, authorW = 28, 20
	if m.width > 100 {
		titleW, authorW = 40, 26
	}
	return titleW, authorW
}

// handleBookFormKey processes keyboard input while the add or edit book
// form is open.
func (m Model) handleBookFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &m.addForm
	if m.mode == modeEditBook {
		form = &m.editForm
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeEditBook {
			m.editingBookID = 0
		}
		m.mode = modeBrowse
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		// On the status field enter toggles instead of submitting.
		if form.showStatus && form.focus == bookFieldStatus {
			form.toggleStatus()
			return m, nil
		}
		return m.submitBookForm(form)

	case msg.String() == "tab", msg.String() == "down":
		form.focusNext()
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		form.focusPrev()
		return m, nil

	case msg.String() == "left", msg.String() == "right":
		if form.showStatus && form.focus == bookFieldStatus {
			form.toggleStatus()
			return m, nil
		}
	}

	cmd := form.update(msg)
	return m, cmd
}

func (m Model) submitBookForm(form *bookForm) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if !form.validate() {
		return m, nil
	}

	req := form.request()
	m.busy = true
	coord, ctx := m.coord, m.ctx

	if m.mode == modeEditBook {
		id := m.editingBookID
		return m, func() tea.Msg {
			return mutationMsg{ok: coord.UpdateBook(ctx, id, req)}
		}
	}
	return m, func() tea.Msg {
		return mutationMsg{ok: coord.AddBook(ctx, req)}
	}
}

// renderBookForm renders the add or edit book modal.
func (m Model) renderBookForm() string {
	s := m.theme.Styles()
	form := m.addForm
	title := "Add Book"
	if m.mode == modeEditBook {
		form = m.editForm
		title = "Edit Book"
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n\n")

	labels := [3]string{"Title", "Author", "Genre"}
	for i, input := range form.inputs {
		b.WriteString(s.MutedText.Render(fmt.Sprintf("%-8s", labels[i])))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if form.showStatus {
		label := s.MutedText.Render(fmt.Sprintf("%-8s", "Status"))
		value := s.AvailableChip.Render("AVAILABLE")
		if form.status == bookrental.StatusUnavailable {
			value = s.UnavailableChip.Render("UNAVAILABLE")
		}
		if form.focus == bookFieldStatus {
			value = s.Selected.Render("< ") + value + s.Selected.Render(" >")
		}
		b.WriteString(label)
		b.WriteString(value)
		b.WriteString("\n")
	}

	if form.err != "" {
		b.WriteString("\n")
		b.WriteString(s.DangerText.Render(form.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.FaintText.Render("enter save  esc cancel  tab next field"))

	return s.Modal.Render(b.String())
}
