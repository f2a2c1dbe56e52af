package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/bookrental"
)

// bookForm holds in-progress input for the add-book and edit-book forms.
// The same shape serves both; edit additionally exposes the status field.
type bookForm struct {
	inputs     [3]textinput.Model // title, author, genre
	status     bookrental.Status
	showStatus bool
	focus      int
	err        string
}

const (
	bookFieldTitle = iota
	bookFieldAuthor
	bookFieldGenre
	bookFieldStatus
)

func newBookForm(showStatus bool) bookForm {
	title := textinput.New()
	title.Placeholder = "e.g. Dune"
	title.CharLimit = 120
	title.Width = 32

	author := textinput.New()
	author.Placeholder = "e.g. Frank Herbert"
	author.CharLimit = 120
	author.Width = 32

	genre := textinput.New()
	genre.Placeholder = "e.g. Science Fiction"
	genre.CharLimit = 60
	genre.Width = 32

	f := bookForm{
		status:     bookrental.StatusAvailable,
		showStatus: showStatus,
	}
	f.inputs[bookFieldTitle] = title
	f.inputs[bookFieldAuthor] = author
	f.inputs[bookFieldGenre] = genre
	f.inputs[0].Focus()
	return f
}

// newEditForm pre-populates a form from the selected book snapshot.
func newEditForm(book bookrental.Book) bookForm {
	f := newBookForm(true)
	f.inputs[bookFieldTitle].SetValue(book.Title)
	f.inputs[bookFieldAuthor].SetValue(book.Author)
	f.inputs[bookFieldGenre].SetValue(book.Genre)
	f.status = book.AvailabilityStatus
	if !f.status.Valid() {
		f.status = bookrental.StatusAvailable
	}
	return f
}

func (f *bookForm) fieldCount() int {
	if f.showStatus {
		return 4
	}
	return 3
}

func (f *bookForm) focusNext() {
	f.setFocus((f.focus + 1) % f.fieldCount())
}

func (f *bookForm) focusPrev() {
	f.setFocus((f.focus - 1 + f.fieldCount()) % f.fieldCount())
}

func (f *bookForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *bookForm) toggleStatus() {
	if f.status == bookrental.StatusAvailable {
		f.status = bookrental.StatusUnavailable
	} else {
		f.status = bookrental.StatusAvailable
	}
}

func (f *bookForm) update(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// validate checks the required fields and records a hint on failure.
func (f *bookForm) validate() bool {
	if strings.TrimSpace(f.inputs[bookFieldTitle].Value()) == "" ||
		strings.TrimSpace(f.inputs[bookFieldAuthor].Value()) == "" ||
		strings.TrimSpace(f.inputs[bookFieldGenre].Value()) == "" {
		f.err = "Title, author, and genre are required"
		return false
	}
	f.err = ""
	return true
}

// request builds the payload. Status is included only for edits; creates
// leave it to the server default.
func (f *bookForm) request() bookrental.BookRequest {
	req := bookrental.BookRequest{
		Title:  strings.TrimSpace(f.inputs[bookFieldTitle].Value()),
		Author: strings.TrimSpace(f.inputs[bookFieldAuthor].Value()),
		Genre:  strings.TrimSpace(f.inputs[bookFieldGenre].Value()),
	}
	if f.showStatus {
		req.AvailabilityStatus = f.status
	}
	return req
}

// rentalForm holds in-progress input for the create-rental form. The book
// is picked from the currently available subset; pickIdx indexes into the
// caller-supplied available list at render and submit time.
type rentalForm struct {
	inputs  [3]textinput.Model // username, rental date, return date
	pickIdx int
	focus   int
	err     string
}

const (
	rentalFieldUsername = iota
	rentalFieldBook
	rentalFieldRentalDate
	rentalFieldReturnDate
	rentalFieldCount
)

func newRentalForm() rentalForm {
	username := textinput.New()
	username.Placeholder = "e.g. alice"
	username.CharLimit = 60
	username.Width = 32

	rentalDate := textinput.New()
	rentalDate.Placeholder = bookrental.DateLayout
	rentalDate.CharLimit = 10
	rentalDate.Width = 32
	rentalDate.SetValue(bookrental.Today())

	returnDate := textinput.New()
	returnDate.Placeholder = "leave blank for active rental"
	returnDate.CharLimit = 10
	returnDate.Width = 32

	f := rentalForm{}
	f.inputs[0] = username
	f.inputs[1] = rentalDate
	f.inputs[2] = returnDate
	f.inputs[0].Focus()
	return f
}

// inputIndex maps a field index to its textinput slot, or -1 for the book
// picker.
func rentalInputIndex(field int) int {
	switch field {
	case rentalFieldUsername:
		return 0
	case rentalFieldRentalDate:
		return 1
	case rentalFieldReturnDate:
		return 2
	default:
		return -1
	}
}

func (f *rentalForm) focusNext() {
	f.setFocus((f.focus + 1) % rentalFieldCount)
}

func (f *rentalForm) focusPrev() {
	f.setFocus((f.focus - 1 + rentalFieldCount) % rentalFieldCount)
}

func (f *rentalForm) setFocus(field int) {
	f.focus = field
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if idx := rentalInputIndex(field); idx >= 0 {
		f.inputs[idx].Focus()
	}
}

func (f *rentalForm) cyclePick(delta, available int) {
	if available <= 0 {
		f.pickIdx = 0
		return
	}
	f.pickIdx = (f.pickIdx + delta + available) % available
}

func (f *rentalForm) update(msg tea.Msg) tea.Cmd {
	idx := rentalInputIndex(f.focus)
	if idx < 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[idx], cmd = f.inputs[idx].Update(msg)
	return cmd
}

// validate checks required fields against the available books shown in the
// picker. availableCount is the length of the picker list.
func (f *rentalForm) validate(availableCount int) bool {
	if strings.TrimSpace(f.inputs[0].Value()) == "" {
		f.err = "Username is required"
		return false
	}
	if availableCount == 0 || f.pickIdx >= availableCount {
		f.err = "Pick an available book"
		return false
	}
	if !bookrental.ValidDate(strings.TrimSpace(f.inputs[1].Value())) {
		f.err = "Rental date must be YYYY-MM-DD"
		return false
	}
	if ret := strings.TrimSpace(f.inputs[2].Value()); ret != "" && !bookrental.ValidDate(ret) {
		f.err = "Return date must be YYYY-MM-DD or blank"
		return false
	}
	f.err = ""
	return true
}

// request builds the payload for the picked book. A blank return date stays
// blank so the client omits the field entirely.
func (f *rentalForm) request(book bookrental.Book) bookrental.RentalRequest {
	return bookrental.RentalRequest{
		Username:   strings.TrimSpace(f.inputs[0].Value()),
		BookID:     book.ID,
		RentalDate: strings.TrimSpace(f.inputs[1].Value()),
		ReturnDate: strings.TrimSpace(f.inputs[2].Value()),
	}
}
