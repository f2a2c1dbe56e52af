package ui

import (
	"testing"

	"bookdesk/internal/bookrental"
)

func TestBookFormValidate(t *testing.T) {
	tests := []struct {
		name                 string
		title, author, genre string
		want                 bool
	}{
		{"all fields", "Dune", "Frank Herbert", "Sci-Fi", true},
		{"missing title", "", "Frank Herbert", "Sci-Fi", false},
		{"missing author", "Dune", "", "Sci-Fi", false},
		{"missing genre", "Dune", "Frank Herbert", "", false},
		{"whitespace only", "   ", "Frank Herbert", "Sci-Fi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookForm(false)
			f.inputs[bookFieldTitle].SetValue(tt.title)
			f.inputs[bookFieldAuthor].SetValue(tt.author)
			f.inputs[bookFieldGenre].SetValue(tt.genre)

			if got := f.validate(); got != tt.want {
				t.Errorf("validate() = %v, want %v", got, tt.want)
			}
			if !tt.want && f.err == "" {
				t.Error("expected a validation hint on failure")
			}
			if tt.want && f.err != "" {
				t.Errorf("unexpected validation hint %q", f.err)
			}
		})
	}
}

func TestBookFormRequestOmitsStatusForCreate(t *testing.T) {
	f := newBookForm(false)
	f.inputs[bookFieldTitle].SetValue("Dune")
	f.inputs[bookFieldAuthor].SetValue("Frank Herbert")
	f.inputs[bookFieldGenre].SetValue("Sci-Fi")
	f.status = bookrental.StatusUnavailable

	req := f.request()
	if req.AvailabilityStatus != "" {
		t.Errorf("create request carries status %q, want empty", req.AvailabilityStatus)
	}
}

func TestNewEditFormPrepopulates(t *testing.T) {
	book := bookrental.Book{
		ID:                 7,
		Title:              "Dune",
		Author:             "Frank Herbert",
		Genre:              "Sci-Fi",
		AvailabilityStatus: bookrental.StatusUnavailable,
	}

	f := newEditForm(book)
	if got := f.inputs[bookFieldTitle].Value(); got != "Dune" {
		t.Errorf("title = %q, want Dune", got)
	}
	if got := f.inputs[bookFieldAuthor].Value(); got != "Frank Herbert" {
		t.Errorf("author = %q", got)
	}
	if got := f.inputs[bookFieldGenre].Value(); got != "Sci-Fi" {
		t.Errorf("genre = %q", got)
	}
	if f.status != bookrental.StatusUnavailable {
		t.Errorf("status = %q, want UNAVAILABLE", f.status)
	}
	if !f.showStatus {
		t.Error("edit form should expose the status field")
	}

	req := f.request()
	if req.AvailabilityStatus != bookrental.StatusUnavailable {
		t.Errorf("edit request status = %q, want UNAVAILABLE", req.AvailabilityStatus)
	}
}

func TestBookFormToggleStatus(t *testing.T) {
	f := newBookForm(true)
	if f.status != bookrental.StatusAvailable {
		t.Fatalf("initial status = %q", f.status)
	}
	f.toggleStatus()
	if f.status != bookrental.StatusUnavailable {
		t.Errorf("after toggle status = %q", f.status)
	}
	f.toggleStatus()
	if f.status != bookrental.StatusAvailable {
		t.Errorf("after second toggle status = %q", f.status)
	}
}

func TestRentalFormValidate(t *testing.T) {
	valid := func() rentalForm {
		f := newRentalForm()
		f.inputs[0].SetValue("alice")
		f.inputs[1].SetValue("2024-01-01")
		return f
	}

	t.Run("valid with blank return date", func(t *testing.T) {
		f := valid()
		if !f.validate(3) {
			t.Errorf("validate failed: %s", f.err)
		}
	})

	t.Run("valid with return date", func(t *testing.T) {
		f := valid()
		f.inputs[2].SetValue("2024-02-01")
		if !f.validate(3) {
			t.Errorf("validate failed: %s", f.err)
		}
	})

	t.Run("missing username", func(t *testing.T) {
		f := valid()
		f.inputs[0].SetValue("  ")
		if f.validate(3) {
			t.Error("expected failure")
		}
	})

	t.Run("no available books", func(t *testing.T) {
		f := valid()
		if f.validate(0) {
			t.Error("expected failure with nothing to pick")
		}
	})

	t.Run("bad rental date", func(t *testing.T) {
		f := valid()
		f.inputs[1].SetValue("01/01/2024")
		if f.validate(3) {
			t.Error("expected failure on malformed rental date")
		}
	})

	t.Run("bad return date", func(t *testing.T) {
		f := valid()
		f.inputs[2].SetValue("soon")
		if f.validate(3) {
			t.Error("expected failure on malformed return date")
		}
	})
}

func TestRentalFormDefaultsRentalDateToToday(t *testing.T) {
	f := newRentalForm()
	if got := f.inputs[1].Value(); got != bookrental.Today() {
		t.Errorf("rental date = %q, want %q", got, bookrental.Today())
	}
	if got := f.inputs[2].Value(); got != "" {
		t.Errorf("return date = %q, want blank", got)
	}
}

func TestRentalFormRequestKeepsBlankReturnDate(t *testing.T) {
	f := newRentalForm()
	f.inputs[0].SetValue("alice")

	book := bookrental.Book{ID: 42, Title: "Dune"}
	req := f.request(book)
	if req.BookID != 42 {
		t.Errorf("bookId = %d, want 42", req.BookID)
	}
	if req.ReturnDate != "" {
		t.Errorf("returnDate = %q, want blank", req.ReturnDate)
	}
}

func TestRentalFormCyclePick(t *testing.T) {
	f := newRentalForm()

	f.cyclePick(1, 3)
	if f.pickIdx != 1 {
		t.Errorf("pickIdx = %d, want 1", f.pickIdx)
	}
	f.cyclePick(-1, 3)
	f.cyclePick(-1, 3)
	if f.pickIdx != 2 {
		t.Errorf("wrap backwards: pickIdx = %d, want 2", f.pickIdx)
	}
	f.cyclePick(1, 3)
	if f.pickIdx != 0 {
		t.Errorf("wrap forwards: pickIdx = %d, want 0", f.pickIdx)
	}

	f.cyclePick(1, 0)
	if f.pickIdx != 0 {
		t.Errorf("with no available books pickIdx = %d, want 0", f.pickIdx)
	}
}
