package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/state"
)

// renderRentals renders the rental collection split into active and
// returned sections, in server order within each section.
func (m Model) renderRentals() string {
	s := m.theme.Styles()
	var b strings.Builder

	if m.snapshot.LoadingRentals && len(m.snapshot.Rentals) == 0 {
		b.WriteString(s.MutedText.Render(m.spin.View() + " Loading rentals..."))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.snapshot.Rentals) == 0 {
		b.WriteString(s.MutedText.Render("No rentals yet. Press 'r' to rent a book."))
		b.WriteString("\n")
		return b.String()
	}

	active, returned := state.PartitionRentals(m.snapshot.Rentals)

	header := fmt.Sprintf("  %-14s  %-28s  %-12s  %-12s", "USER", "BOOK", "RENTED", "RETURNED")
	b.WriteString(s.Header.Render(header))
	b.WriteString("\n")

	idx := 0
	if len(active) > 0 {
		b.WriteString(s.Accent.Render("Active"))
		b.WriteString("\n")
		for _, r := range active {
			m.writeRentalRow(&b, s, idx, r.Username, r.Book.Title, r.RentalDate, "", s.ActiveChip.Render("ACTIVE"))
			idx++
		}
	}
	if len(returned) > 0 {
		b.WriteString(s.MutedText.Render("Returned"))
		b.WriteString("\n")
		for _, r := range returned {
			m.writeRentalRow(&b, s, idx, r.Username, r.Book.Title, r.RentalDate, r.ReturnDate, s.ReturnedChip.Render("RETURNED"))
			idx++
		}
	}

	return b.String()
}

func (m Model) writeRentalRow(b *strings.Builder, s Styles, idx int, user, title, rented, returned string, chip string) {
	if returned == "" {
		returned = "-"
	}
	row := fmt.Sprintf("%-14s  %-28s  %-12s  %-12s",
		truncate(user, 14), truncate(title, 28), rented, returned)

	if idx == m.rentalCursor {
		b.WriteString(s.Selected.Render("> " + row))
	} else {
		b.WriteString(s.Text.Render("  " + row))
	}
	b.WriteString("  ")
	b.WriteString(chip)
	b.WriteString("\n")
}

// handleRentalFormKey processes keyboard input while the rent book form
// is open.
func (m Model) handleRentalFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &m.rentForm
	available := m.availableBooks()

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitRentalForm(form)

	case msg.String() == "tab", msg.String() == "down":
		form.focusNext()
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		form.focusPrev()
		return m, nil

	case msg.String() == "left":
		if form.focus == rentalFieldBook {
			form.cyclePick(-1, len(available))
			return m, nil
		}

	case msg.String() == "right":
		if form.focus == rentalFieldBook {
			form.cyclePick(1, len(available))
			return m, nil
		}
	}

	cmd := form.update(msg)
	return m, cmd
}

func (m Model) submitRentalForm(form *rentalForm) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	available := m.availableBooks()
	if !form.validate(len(available)) {
		return m, nil
	}

	book := available[form.pickIdx]
	req := form.request(book)
	m.busy = true
	coord, ctx := m.coord, m.ctx
	return m, func() tea.Msg {
		return mutationMsg{ok: coord.RentBook(ctx, req)}
	}
}

// renderRentalForm renders the rent book modal. The book picker cycles
// over the currently available books only.
func (m Model) renderRentalForm() string {
	s := m.theme.Styles()
	form := m.rentForm
	available := m.availableBooks()

	var b strings.Builder
	b.WriteString(s.Title.Render("Rent Book"))
	b.WriteString("\n\n")

	b.WriteString(s.MutedText.Render(fmt.Sprintf("%-12s", "Username")))
	b.WriteString(form.inputs[0].View())
	b.WriteString("\n")

	pick := s.MutedText.Render("no available books")
	if len(available) > 0 {
		idx := form.pickIdx
		if idx >= len(available) {
			idx = 0
		}
		label := fmt.Sprintf("%s (%d/%d)", truncate(available[idx].Title, 30), idx+1, len(available))
		pick = s.Text.Render(label)
	}
	if form.focus == rentalFieldBook {
		pick = s.Selected.Render("< ") + pick + s.Selected.Render(" >")
	}
	b.WriteString(s.MutedText.Render(fmt.Sprintf("%-12s", "Book")))
	b.WriteString(pick)
	b.WriteString("\n")

	b.WriteString(s.MutedText.Render(fmt.Sprintf("%-12s", "Rented")))
	b.WriteString(form.inputs[1].View())
	b.WriteString("\n")

	b.WriteString(s.MutedText.Render(fmt.Sprintf("%-12s", "Returned")))
	b.WriteString(form.inputs[2].View())
	b.WriteString("\n")

	if form.err != "" {
		b.WriteString("\n")
		b.WriteString(s.DangerText.Render(form.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.FaintText.Render("enter save  esc cancel  left/right pick book"))

	return s.Modal.Render(b.String())
}
