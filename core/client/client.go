package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/lumacafe/cafekit/core/session"
	"github.com/lumacafe/cafekit/core/store"
)

// LogoutFunc is invoked when a token refresh fails and the session must be
// forced closed. It runs at most once per failed refresh.
type LogoutFunc func(ctx context.Context)

// Client is the API gateway client. One instance is shared by all entity
// services; it is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	store    store.Store
	log      *slog.Logger
	onLogout LogoutFunc
	refresh  *refresher
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for refresh-cycle events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithLogoutFunc installs the forced-logout callback.
func WithLogoutFunc(fn LogoutFunc) Option {
	return func(c *Client) {
		c.onLogout = fn
	}
}

// New creates a gateway client for the configured base URL, persisting and
// reading tokens through st.
func New(cfg Config, st store.Store, opts ...Option) (*Client, error) {
	if st == nil {
		return nil, ErrNilStore
	}
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("client: invalid base URL %q: %w", cfg.BaseURL, err)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		store:   st,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.refresh = newRefresher(c)

	return c, nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into
// out (which may be nil).
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into
// out (which may be nil).
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request, ignoring any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do performs one request against the backend. On a 401 it runs the refresh
// protocol and replays the request once with the fresh token; a second 401 is
// terminal. Other error statuses are returned as *Error without retries.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request body: %w", err)
		}
		payload = raw
	}

	token, err := store.GetJSON[string](ctx, c.store, session.KeyAccessToken)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, payload, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)

		freshToken, refreshErr := c.refresh.run(ctx)
		if refreshErr != nil {
			return fmt.Errorf("%w: %w", ErrSessionExpired, refreshErr)
		}

		// One-shot retry: this replay is never itself replayed.
		resp, err = c.send(ctx, method, path, payload, freshToken)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			apiErr := readError(resp)
			return fmt.Errorf("%w: %w", ErrSessionExpired, apiErr)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readError(resp)
	}

	if out == nil {
		drain(resp)
		return nil
	}
	return decodeBody(resp, out)
}

// send performs one HTTP round trip with the bearer token (when present) and
// a correlation id attached.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	return resp, nil
}

// readError turns a non-2xx response into an *Error, picking up the server
// message when the body carries one.
func readError(resp *http.Response) error {
	defer resp.Body.Close()

	apiErr := &Error{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}
	return apiErr
}

// decodeBody decodes a JSON response body into out and closes it.
func decodeBody(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
	resp.Body.Close()
}
