package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client speaks the document store wire protocol: whole JSON documents read
// and written at <base>/<name>.json. There is no partial update; PUT replaces
// the entire document and GET of an absent document yields JSON null.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

// ClientOption customises Client construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithMaxRetries sets how many times transient read failures are retried.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// NewClient constructs a document store client rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("docstore: base URL is required")
	}

	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// GetJSON fetches the document named name and decodes it into out. A remote
// null (or 404) leaves out untouched at its zero value.
func (c *Client) GetJSON(ctx context.Context, name string, out any) error {
	op := "docstore.get " + name

	body, err := c.getWithRetry(ctx, name)
	if err != nil {
		return WrapError(op, err)
	}
	if body == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return WrapError(op, fmt.Errorf("decode document: %w", err))
	}
	return nil
}

// PutJSON replaces the document named name with the JSON encoding of value.
func (c *Client) PutJSON(ctx context.Context, name string, value any) error {
	op := "docstore.put " + name

	payload, err := json.Marshal(value)
	if err != nil {
		return WrapError(op, fmt.Errorf("encode document: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.documentURL(name), bytes.NewReader(payload))
	if err != nil {
		return WrapError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WrapError(op, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(op, resp.StatusCode)
	}
	return nil
}

// DeleteJSON removes the document named name. Absent documents are not an error.
func (c *Client) DeleteJSON(ctx context.Context, name string) error {
	op := "docstore.delete " + name

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.documentURL(name), nil)
	if err != nil {
		return WrapError(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WrapError(op, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(op, resp.StatusCode)
	}
	return nil
}

// getWithRetry returns the raw document body, nil when the document is absent.
func (c *Client) getWithRetry(ctx context.Context, name string) ([]byte, error) {
	var lastErr error
	attempts := c.maxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
			}
		}

		body, err := c.getOnce(ctx, name)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var storeErr *Error
		if errors.As(err, &storeErr) && !storeErr.IsUnavailable() {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentURL(name), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		drain(resp.Body)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		drain(resp.Body)
		return nil, newStatusError("", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	return trimmed, nil
}

func (c *Client) documentURL(name string) string {
	return c.baseURL + "/" + strings.Trim(name, "/") + ".json"
}

func drainAndClose(body io.ReadCloser) {
	drain(body)
	_ = body.Close()
}

func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<16))
}
