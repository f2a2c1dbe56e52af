package actions

import (
	"context"
	"log"
	"sync"

	"bookdesk/internal/bookrental"
	"bookdesk/internal/state"
)

// Banner messages, one per user-facing action.
const (
	msgLoadBooks    = "Failed to load books"
	msgLoadRentals  = "Failed to load rentals"
	msgAddBook      = "Failed to add book"
	msgUpdateBook   = "Failed to update book"
	msgDeleteBook   = "Failed to delete book"
	msgCreateRental = "Failed to create rental"
	msgMarkReturned = "Failed to mark returned"
	msgDeleteRental = "Failed to delete rental"
)

// Coordinator sequences write calls with the refreshes needed to reconcile
// the store with server truth afterward. Book mutations refresh books only;
// rental mutations refresh both collections, because rental state changes
// affect a book's availability on the server side.
//
// There are no optimistic updates, so a failed mutation needs no rollback:
// the store keeps whatever the last successful fetch produced, and the
// failure is recorded as a short action-specific banner message.
type Coordinator struct {
	client bookrental.API
	store  *state.Store
}

// New builds a Coordinator over the given API client and store.
func New(client bookrental.API, store *state.Store) *Coordinator {
	return &Coordinator{client: client, store: store}
}

// RefreshBooks reloads the book collection, replacing it wholesale on
// success and recording a load failure otherwise.
func (c *Coordinator) RefreshBooks(ctx context.Context) {
	c.store.BeginBooks()
	c.fetchBooks(ctx)
}

// RefreshRentals reloads the rental collection, symmetric to RefreshBooks.
func (c *Coordinator) RefreshRentals(ctx context.Context) {
	c.store.BeginRentals()
	c.fetchRentals(ctx)
}

// RefreshAll reloads both collections concurrently and waits for both to
// settle. Either side may fail independently without affecting the other's
// store slice. Both loading flags are raised before either fetch starts so
// a fast failure cannot be cleared by the slower refresh beginning.
func (c *Coordinator) RefreshAll(ctx context.Context) {
	c.store.BeginBooks()
	c.store.BeginRentals()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.fetchBooks(ctx)
	}()
	go func() {
		defer wg.Done()
		c.fetchRentals(ctx)
	}()
	wg.Wait()
}

func (c *Coordinator) fetchBooks(ctx context.Context) {
	books, err := c.client.ListBooks(ctx)
	if err != nil {
		log.Printf("book refresh failed: %v", err)
		c.store.FinishBooks(nil, msgLoadBooks)
		return
	}
	c.store.FinishBooks(books, "")
}

func (c *Coordinator) fetchRentals(ctx context.Context) {
	rentals, err := c.client.ListRentals(ctx)
	if err != nil {
		log.Printf("rental refresh failed: %v", err)
		c.store.FinishRentals(nil, msgLoadRentals)
		return
	}
	c.store.FinishRentals(rentals, "")
}

// AddBook creates a book and reloads the book collection.
func (c *Coordinator) AddBook(ctx context.Context, req bookrental.BookRequest) bool {
	if err := c.client.CreateBook(ctx, req); err != nil {
		log.Printf("add book failed: %v", err)
		c.store.SetError(msgAddBook)
		return false
	}
	c.RefreshBooks(ctx)
	return true
}

// UpdateBook replaces a book's mutable fields and reloads the book
// collection.
func (c *Coordinator) UpdateBook(ctx context.Context, id int64, req bookrental.BookRequest) bool {
	if err := c.client.UpdateBook(ctx, id, req); err != nil {
		log.Printf("update book %d failed: %v", id, err)
		c.store.SetError(msgUpdateBook)
		return false
	}
	c.RefreshBooks(ctx)
	return true
}

// DeleteBook removes a book and reloads the book collection. Callers must
// have confirmed the deletion with the user before invoking this.
func (c *Coordinator) DeleteBook(ctx context.Context, id int64) bool {
	if err := c.client.DeleteBook(ctx, id); err != nil {
		log.Printf("delete book %d failed: %v", id, err)
		c.store.SetError(msgDeleteBook)
		return false
	}
	c.RefreshBooks(ctx)
	return true
}

// RentBook creates a rental and reloads both collections, since the server
// flips the rented book to UNAVAILABLE.
func (c *Coordinator) RentBook(ctx context.Context, req bookrental.RentalRequest) bool {
	if err := c.client.CreateRental(ctx, req); err != nil {
		log.Printf("create rental failed: %v", err)
		c.store.SetError(msgCreateRental)
		return false
	}
	c.RefreshAll(ctx)
	return true
}

// MarkReturned sets a rental's return date to the current local calendar day
// and reloads both collections.
func (c *Coordinator) MarkReturned(ctx context.Context, id int64) bool {
	if err := c.client.ReturnRental(ctx, id, bookrental.Today()); err != nil {
		log.Printf("mark rental %d returned failed: %v", id, err)
		c.store.SetError(msgMarkReturned)
		return false
	}
	c.RefreshAll(ctx)
	return true
}

// DeleteRental removes a rental and reloads both collections. Deleting an
// active rental frees its book on the server. Callers must have confirmed
// the deletion with the user before invoking this.
func (c *Coordinator) DeleteRental(ctx context.Context, id int64) bool {
	if err := c.client.DeleteRental(ctx, id); err != nil {
		log.Printf("delete rental %d failed: %v", id, err)
		c.store.SetError(msgDeleteRental)
		return false
	}
	c.RefreshAll(ctx)
	return true
}
