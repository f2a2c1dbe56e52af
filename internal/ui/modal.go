package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmKind int

const (
	confirmDeleteBook confirmKind = iota
	confirmDeleteRental
)

// confirmState holds a pending delete awaiting explicit confirmation.
type confirmState struct {
	kind   confirmKind
	id     int64
	prompt string
}

// startDelete opens the confirmation modal for the selected record.
// Nothing is sent to the server until the user confirms.
func (m Model) startDelete() (tea.Model, tea.Cmd) {
	if m.view == ViewBooks {
		book := m.selectedBook()
		if book == nil {
			return m, nil
		}
		m.confirm = confirmState{
			kind:   confirmDeleteBook,
			id:     book.ID,
			prompt: fmt.Sprintf("Delete book %q?", book.Title),
		}
		m.mode = modeConfirm
		return m, nil
	}

	rental := m.selectedRental()
	if rental == nil {
		return m, nil
	}
	m.confirm = confirmState{
		kind:   confirmDeleteRental,
		id:     rental.ID,
		prompt: fmt.Sprintf("Delete rental of %q by %s?", rental.Book.Title, rental.Username),
	}
	m.mode = modeConfirm
	return m, nil
}

// handleConfirmKey processes input while the confirmation modal is open.
// Declining leaves the record untouched.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.busy = true
		coord, ctx := m.coord, m.ctx
		confirm := m.confirm
		return m, func() tea.Msg {
			switch confirm.kind {
			case confirmDeleteBook:
				return mutationMsg{ok: coord.DeleteBook(ctx, confirm.id)}
			default:
				return mutationMsg{ok: coord.DeleteRental(ctx, confirm.id)}
			}
		}
	case "n", "N", "esc", "q":
		m.mode = modeBrowse
		return m, nil
	}
	return m, nil
}

func (m Model) renderConfirm() string {
	s := m.theme.Styles()

	var b strings.Builder
	b.WriteString(s.WarningText.Render("Confirm"))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(m.confirm.prompt))
	b.WriteString("\n\n")
	b.WriteString(s.FaintText.Render("y confirm  n cancel"))

	return s.Modal.Render(b.String())
}
