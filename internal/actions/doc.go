// Package actions implements the mutation coordinator for bookdesk.
//
// # Overview
//
// Every write against the Book Rental API follows the same sequence:
//
//  1. The form layer has already validated required fields
//  2. Invoke the corresponding API client call
//  3. On success, refresh the affected collection(s) so the store is
//     reconciled with server truth before the action settles
//  4. On failure, record a short action-specific banner message and leave
//     prior state untouched
//
// # Refresh Scope
//
// Which collections a mutation can invalidate decides what gets reloaded:
//
//   - Add/update/delete book → books only
//   - Create rental, mark returned, delete rental → books and rentals,
//     because the server flips book availability as a side effect
//
// Paired refreshes run concurrently and are joined before the mutation is
// considered complete, so the UI re-enables interaction only once it shows
// fully reconciled state.
//
// # Error Policy
//
// There is exactly one error kind surfaced to the user: a request failed.
// Network errors, server errors, and rejected writes all collapse into the
// same generic message tied to the attempted action ("Failed to add book",
// "Failed to load rentals", ...). The underlying error goes to the stderr
// log for diagnosis; it is never parsed or retried.
//
// # The Server Is Authoritative
//
// The client makes no speculative availability checks beyond populating the
// rental form's book picker from the available subset at render time. If a
// book becomes unavailable between render and submit, the server rejects
// the create and the failure surfaces as the generic message.
package actions
