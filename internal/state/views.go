package state

import "bookdesk/internal/bookrental"

// AvailableBooks returns the books that can currently be rented, preserving
// the order of the source list. It is a pure function of the book list and
// holds no state of its own; callers recompute it whenever the list changes.
func AvailableBooks(books []bookrental.Book) []bookrental.Book {
	var out []bookrental.Book
	for _, b := range books {
		if b.Available() {
			out = append(out, b)
		}
	}
	return out
}

// PartitionRentals splits rentals into active (no return date) and returned,
// preserving order within each partition.
func PartitionRentals(rentals []bookrental.Rental) (active, returned []bookrental.Rental) {
	for _, r := range rentals {
		if r.Active() {
			active = append(active, r)
		} else {
			returned = append(returned, r)
		}
	}
	return active, returned
}
