// Package bookrental provides an HTTP client for the Book Rental API.
//
// # Overview
//
// This package defines the API client for communicating with the book rental
// backend. It handles HTTP communication, JSON serialization, and type-safe
// representation of books and rentals.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the Book Rental API schema
//
// # Client Usage
//
// Create a client using the API base address from configuration:
//
//	client, err := bookrental.NewClient("127.0.0.1:8080")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	books, err := client.ListBooks(ctx)
//	if err != nil {
//		log.Printf("book list failed: %v", err)
//	}
//
// # API Endpoints
//
// The client covers the full CRUD surface of the backend:
//
//   - GET    /api/books        List all books
//   - POST   /api/books        Create a book (server assigns id and status)
//   - PUT    /api/books/{id}   Replace a book's mutable fields
//   - DELETE /api/books/{id}   Delete a book
//   - GET    /api/rentals      List all rentals (active and returned)
//   - POST   /api/rentals      Create a rental
//   - PUT    /api/rentals/{id} Mark a rental returned
//   - DELETE /api/rentals/{id} Delete a rental
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent: bookdesk/0.1 headers
//   - Have a 10-second timeout (configurable via http.Client)
//   - Return wrapped errors with context about what failed
//
// Every non-2xx response is a single uniform failure; the client does not
// parse structured error bodies. Callers surface a short operation-specific
// message to the user and nothing more.
//
// # Payload Semantics
//
// Two payload details matter for correctness:
//
//   - RentalRequest.ReturnDate uses omitempty. A rental created without a
//     return date must omit the field entirely, not send an empty string;
//     omission is what makes the rental active.
//   - BookRequest.AvailabilityStatus uses omitempty. Creates leave it out
//     (the server defaults to AVAILABLE); updates always set it.
//
// # Dates
//
// All dates travel as plain YYYY-MM-DD strings with no timezone component.
// Today() computes the local calendar day, which is what the mark-returned
// flow sends. Rental provides ParsedRentalDate/ParsedReturnDate helpers that
// return the zero time for unset or malformed values.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally.
//
// # Design Rationale
//
// The client is intentionally minimal:
//   - No caching (the state store holds the last-fetched snapshot)
//   - No retries (every failure is terminal for that user action)
//   - No batching (each operation is one request/response exchange)
//
// This keeps the client simple and predictable while meeting all current needs.
package bookrental
