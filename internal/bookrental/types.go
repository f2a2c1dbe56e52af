package bookrental

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all rental dates.
const DateLayout = "2006-01-02"

// Status enumerates the availability states a book can be in.
// The API never produces other values, and the client never invents any.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusUnavailable Status = "UNAVAILABLE"
)

// Valid reports whether the status is one of the two known values.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusUnavailable
}

// Book mirrors a book record returned by /api/books.
type Book struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	Author             string `json:"author"`
	Genre              string `json:"genre"`
	AvailabilityStatus Status `json:"availabilityStatus"`
}

// Available reports whether the book can currently be rented.
func (b Book) Available() bool {
	return b.AvailabilityStatus == StatusAvailable
}

// BookRequest is the payload for creating or updating a book.
// AvailabilityStatus is omitted on create; the server assigns AVAILABLE.
type BookRequest struct {
	Title              string `json:"title"`
	Author             string `json:"author"`
	Genre              string `json:"genre"`
	AvailabilityStatus Status `json:"availabilityStatus,omitempty"`
}

// Rental mirrors a rental record returned by /api/rentals. Book is a
// denormalized snapshot supplied by the server at fetch time; it is not kept
// in sync with the books collection between refreshes.
type Rental struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	RentalDate string `json:"rentalDate"`
	ReturnDate string `json:"returnDate,omitempty"`
	Book       Book   `json:"book"`
}

// Active reports whether the rental has not been returned yet.
func (r Rental) Active() bool {
	return r.ReturnDate == ""
}

// ParsedRentalDate returns the rental date as time.Time, or zero when unset
// or malformed.
func (r Rental) ParsedRentalDate() time.Time {
	return parseDate(r.RentalDate)
}

// ParsedReturnDate returns the return date as time.Time, or zero for an
// active rental.
func (r Rental) ParsedReturnDate() time.Time {
	return parseDate(r.ReturnDate)
}

// RentalRequest is the payload for creating a rental. ReturnDate carries
// omitempty so a blank value is absent from the JSON body rather than sent
// as an empty string; omission means the rental starts active.
type RentalRequest struct {
	Username   string `json:"username"`
	BookID     int64  `json:"bookId"`
	RentalDate string `json:"rentalDate"`
	ReturnDate string `json:"returnDate,omitempty"`
}

// ReturnRequest is the partial-update payload for marking a rental returned.
type ReturnRequest struct {
	ReturnDate string `json:"returnDate"`
}

// Today returns the current local calendar day in wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate reports whether value parses as a YYYY-MM-DD date.
func ValidDate(value string) bool {
	if value == "" {
		return false
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// ParseDate parses a wire-format date, failing on anything else.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
