package bookrental

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API defines the operations the Book Rental service exposes.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	ListBooks(ctx context.Context) ([]Book, error)
	CreateBook(ctx context.Context, req BookRequest) error
	UpdateBook(ctx context.Context, id int64, req BookRequest) error
	DeleteBook(ctx context.Context, id int64) error
	ListRentals(ctx context.Context) ([]Rental, error)
	CreateRental(ctx context.Context, req RentalRequest) error
	ReturnRental(ctx context.Context, id int64, returnDate string) error
	DeleteRental(ctx context.Context, id int64) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the Book Rental HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "127.0.0.1:8080"
	defaultUserAgent = "bookdesk/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client using the provided host:port or URL base value.
func NewClient(apiBase string) (*Client, error) {
	return NewClientWithTimeout(apiBase, requestTimeout)
}

// NewClientWithTimeout builds a Client with an explicit per-request timeout.
// Non-positive timeouts fall back to the default.
func NewClientWithTimeout(apiBase string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListBooks retrieves the full book collection.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Book
	if err := c.do(ctx, http.MethodGet, "/api/books", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CreateBook registers a new book. The server assigns the id and the
// AVAILABLE default status.
func (c *Client) CreateBook(ctx context.Context, req BookRequest) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/books", req, nil)
}

// UpdateBook replaces the mutable fields of a book, including its status.
func (c *Client) UpdateBook(ctx context.Context, id int64, req BookRequest) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("book id required")
	}
	return c.do(ctx, http.MethodPut, bookPath(id), req, nil)
}

// DeleteBook removes a book record.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("book id required")
	}
	return c.do(ctx, http.MethodDelete, bookPath(id), nil, nil)
}

// ListRentals retrieves the full rental collection, active and returned.
func (c *Client) ListRentals(ctx context.Context) ([]Rental, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Rental
	if err := c.do(ctx, http.MethodGet, "/api/rentals", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CreateRental opens a new rental. A blank ReturnDate in req is omitted from
// the payload so the rental starts active.
func (c *Client) CreateRental(ctx context.Context, req RentalRequest) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/rentals", req, nil)
}

// ReturnRental marks a rental returned as of returnDate.
func (c *Client) ReturnRental(ctx context.Context, id int64, returnDate string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("rental id required")
	}
	return c.do(ctx, http.MethodPut, rentalPath(id), ReturnRequest{ReturnDate: returnDate}, nil)
}

// DeleteRental removes a rental record.
func (c *Client) DeleteRental(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("rental id required")
	}
	return c.do(ctx, http.MethodDelete, rentalPath(id), nil, nil)
}

func bookPath(id int64) string {
	return "/api/books/" + strconv.FormatInt(id, 10)
}

func rentalPath(id int64) string {
	return "/api/rentals/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
