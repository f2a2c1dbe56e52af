package state

import (
	"sync"
	"time"

	"bookdesk/internal/bookrental"
)

// Snapshot represents the latest collection data available to the UI.
type Snapshot struct {
	Books          []bookrental.Book
	Rentals        []bookrental.Rental
	LoadingBooks   bool
	LoadingRentals bool
	LastError      string
	BooksUpdated   time.Time
	RentalsUpdated time.Time
}

// Loading reports whether any collection refresh is still in flight.
func (s Snapshot) Loading() bool {
	return s.LoadingBooks || s.LoadingRentals
}

// Store coordinates concurrent updates to the collection snapshot. It owns
// the canonical in-memory book and rental lists; refreshes replace a list
// wholesale, so the store is always consistent with the last successful
// fetch and never partially updated.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// BeginBooks marks a book refresh as in flight and clears any prior error.
func (s *Store) BeginBooks() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LoadingBooks = true
	s.snapshot.LastError = ""
}

// FinishBooks completes a book refresh. On success the book list is replaced
// wholesale; on failure the previous list is kept and msg is recorded. The
// loading flag clears either way.
func (s *Store) FinishBooks(books []bookrental.Book, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LoadingBooks = false
	if msg != "" {
		s.snapshot.LastError = msg
		return
	}
	s.snapshot.Books = cloneBooks(books)
	s.snapshot.BooksUpdated = time.Now()
}

// BeginRentals marks a rental refresh as in flight and clears any prior error.
func (s *Store) BeginRentals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LoadingRentals = true
	s.snapshot.LastError = ""
}

// FinishRentals completes a rental refresh with the same semantics as
// FinishBooks.
func (s *Store) FinishRentals(rentals []bookrental.Rental, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LoadingRentals = false
	if msg != "" {
		s.snapshot.LastError = msg
		return
	}
	s.snapshot.Rentals = cloneRentals(rentals)
	s.snapshot.RentalsUpdated = time.Now()
}

// SetError records an action failure message for the banner. A newer error
// replaces any lingering one; successes do not clear it.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = msg
}

// ClearError dismisses the current error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = ""
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	snap.Rentals = cloneRentals(s.snapshot.Rentals)
	return snap
}

func cloneBooks(books []bookrental.Book) []bookrental.Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]bookrental.Book, len(books))
	copy(dup, books)
	return dup
}

func cloneRentals(rentals []bookrental.Rental) []bookrental.Rental {
	if len(rentals) == 0 {
		return nil
	}
	dup := make([]bookrental.Rental, len(rentals))
	copy(dup, rentals)
	return dup
}
