package bookrental

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBase {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBase)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

type recordedRequest struct {
	method      string
	path        string
	contentType string
	body        string
}

func TestClient_ListsCollections(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/books":
			_ = json.NewEncoder(w).Encode([]Book{
				{ID: 1, Title: "Dune", Author: "Herbert", Genre: "SF", AvailabilityStatus: StatusAvailable},
				{ID: 2, Title: "Emma", Author: "Austen", Genre: "Classic", AvailabilityStatus: StatusUnavailable},
			})
		case "/api/rentals":
			_ = json.NewEncoder(w).Encode([]Rental{
				{ID: 7, Username: "alice", RentalDate: "2024-01-01", Book: Book{ID: 2, Title: "Emma"}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	books, err := c.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks returned error: %v", err)
	}
	if len(books) != 2 || books[0].ID != 1 || books[0].AvailabilityStatus != StatusAvailable {
		t.Fatalf("ListBooks = %#v, want 2 books starting with id=1 AVAILABLE", books)
	}

	rentals, err := c.ListRentals(ctx)
	if err != nil {
		t.Fatalf("ListRentals returned error: %v", err)
	}
	if len(rentals) != 1 || rentals[0].Username != "alice" || rentals[0].Book.ID != 2 {
		t.Fatalf("ListRentals = %#v, want 1 rental by alice for book 2", rentals)
	}
	if !rentals[0].Active() {
		t.Fatalf("rental with no return date should be active: %#v", rentals[0])
	}

	if !strings.HasPrefix(gotUserAgent, "bookdesk/") {
		t.Fatalf("User-Agent = %q, want bookdesk/*", gotUserAgent)
	}
}

func TestClient_MutationsUseExpectedWireFormat(t *testing.T) {
	t.Parallel()

	var got []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = append(got, recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		})
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	if err := c.CreateBook(ctx, BookRequest{Title: "Dune", Author: "Herbert", Genre: "SF"}); err != nil {
		t.Fatalf("CreateBook returned error: %v", err)
	}
	if err := c.UpdateBook(ctx, 4, BookRequest{Title: "Dune", Author: "Herbert", Genre: "SF", AvailabilityStatus: StatusUnavailable}); err != nil {
		t.Fatalf("UpdateBook returned error: %v", err)
	}
	if err := c.DeleteBook(ctx, 4); err != nil {
		t.Fatalf("DeleteBook returned error: %v", err)
	}
	if err := c.CreateRental(ctx, RentalRequest{Username: "alice", BookID: 1, RentalDate: "2024-01-01"}); err != nil {
		t.Fatalf("CreateRental returned error: %v", err)
	}
	if err := c.ReturnRental(ctx, 9, "2024-02-01"); err != nil {
		t.Fatalf("ReturnRental returned error: %v", err)
	}
	if err := c.DeleteRental(ctx, 9); err != nil {
		t.Fatalf("DeleteRental returned error: %v", err)
	}

	want := []recordedRequest{
		{http.MethodPost, "/api/books", "application/json", `{"title":"Dune","author":"Herbert","genre":"SF"}`},
		{http.MethodPut, "/api/books/4", "application/json", `{"title":"Dune","author":"Herbert","genre":"SF","availabilityStatus":"UNAVAILABLE"}`},
		{http.MethodDelete, "/api/books/4", "", ""},
		{http.MethodPost, "/api/rentals", "application/json", `{"username":"alice","bookId":1,"rentalDate":"2024-01-01"}`},
		{http.MethodPut, "/api/rentals/9", "application/json", `{"returnDate":"2024-02-01"}`},
		{http.MethodDelete, "/api/rentals/9", "", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("recorded %d requests, want %d", len(got), len(want))
	}
	for i, w := range want {
		g := got[i]
		if g.method != w.method || g.path != w.path {
			t.Errorf("request %d = %s %s, want %s %s", i, g.method, g.path, w.method, w.path)
		}
		if g.contentType != w.contentType {
			t.Errorf("request %d Content-Type = %q, want %q", i, g.contentType, w.contentType)
		}
		if strings.TrimSpace(g.body) != w.body {
			t.Errorf("request %d body = %q, want %q", i, g.body, w.body)
		}
	}
}

func TestClient_BlankReturnDateIsOmitted(t *testing.T) {
	t.Parallel()

	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.CreateRental(context.Background(), RentalRequest{
		Username:   "alice",
		BookID:     1,
		RentalDate: "2024-01-01",
		ReturnDate: "",
	})
	if err != nil {
		t.Fatalf("CreateRental returned error: %v", err)
	}
	if strings.Contains(gotBody, "returnDate") {
		t.Fatalf("payload %q contains returnDate, want field absent for blank value", gotBody)
	}

	err = c.CreateRental(context.Background(), RentalRequest{
		Username:   "bob",
		BookID:     2,
		RentalDate: "2024-01-01",
		ReturnDate: "2024-01-15",
	})
	if err != nil {
		t.Fatalf("CreateRental returned error: %v", err)
	}
	if !strings.Contains(gotBody, `"returnDate":"2024-01-15"`) {
		t.Fatalf("payload %q missing provided returnDate", gotBody)
	}
}

func TestClient_RequiresPositiveIDs(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	if err := c.UpdateBook(ctx, 0, BookRequest{}); err == nil {
		t.Fatalf("UpdateBook(0) returned nil error, want error")
	}
	if err := c.DeleteBook(ctx, -1); err == nil {
		t.Fatalf("DeleteBook(-1) returned nil error, want error")
	}
	if err := c.ReturnRental(ctx, 0, "2024-01-01"); err == nil {
		t.Fatalf("ReturnRental(0) returned nil error, want error")
	}
	if err := c.DeleteRental(ctx, 0); err == nil {
		t.Fatalf("DeleteRental(0) returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/books":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/rentals":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListBooks(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("ListBooks error = %v, want decode response error", err)
	}

	_, err = c.ListRentals(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("ListRentals error = %v, want status 500 error", err)
	}

	if err := c.CreateBook(context.Background(), BookRequest{Title: "x"}); err == nil {
		t.Fatalf("CreateBook to unknown path returned nil error, want 404 error")
	}
}
