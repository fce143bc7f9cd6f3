package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-success response from the catalog API. Message is
// taken from the JSON body's "details" field, then "error", then the
// HTTP status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog api: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to the external catalog API. The API owns all
// persistence and validation; the client only shapes requests and
// surfaces failures. No retries: every failure is terminal for the
// user action that triggered it.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// List fetches the full item collection.
func (c *Client) List(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/data", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create posts a new item (no id) and returns the stored record with
// its server-assigned id.
func (c *Client) Create(ctx context.Context, item MenuItem) (MenuItem, error) {
	var created MenuItem
	if err := c.do(ctx, http.MethodPost, "/data", item, &created); err != nil {
		return MenuItem{}, err
	}
	return created, nil
}

// Update puts an existing item to its per-item endpoint.
func (c *Client) Update(ctx context.Context, item MenuItem) (MenuItem, error) {
	var updated MenuItem
	path := "/data/" + item.ID
	if err := c.do(ctx, http.MethodPut, path, item, &updated); err != nil {
		return MenuItem{}, err
	}
	return updated, nil
}

// Delete removes the item with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/data/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog response decode failed: %w", err)
	}
	return nil
}

// readAPIError parses the error body best-effort. Bodies are expected
// to be JSON with optional "details" or "error" string fields.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var body struct {
		Details string `json:"details"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Details != "" {
			apiErr.Message = body.Details
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}

	return apiErr
}
