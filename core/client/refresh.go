package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/lumacafe/cafekit/core/logger"
	"github.com/lumacafe/cafekit/core/session"
	"github.com/lumacafe/cafekit/core/store"
)

const refreshPath = "/usuarios/refresh-token"

// ErrNoRefreshToken is returned when a refresh is attempted without a stored
// refresh token.
var ErrNoRefreshToken = errors.New("client: no refresh token")

// refreshCall is one in-flight token refresh. The done channel is closed once
// the outcome fields are set, releasing every parked waiter at the same time.
type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

// refresher coalesces concurrent refresh attempts onto a single in-flight
// call. Invariant: at most one refresh request is outstanding at any time,
// and every 401 that arrives while it is pending observes its outcome
// exactly once.
type refresher struct {
	client *Client

	mu       sync.Mutex
	inflight *refreshCall
}

func newRefresher(c *Client) *refresher {
	return &refresher{client: c}
}

// run returns a fresh access token, either by performing the refresh call
// itself or by parking behind one already in flight.
func (r *refresher) run(ctx context.Context) (string, error) {
	r.mu.Lock()
	if call := r.inflight; call != nil {
		r.mu.Unlock()
		select {
		case <-call.done:
			return call.token, call.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	r.inflight = call
	r.mu.Unlock()

	call.token, call.err = r.exchange(ctx)
	if call.err != nil && r.client.onLogout != nil {
		// Forced logout fires once per failed refresh; parked waiters only
		// observe the error.
		r.client.onLogout(ctx)
	}
	close(call.done)

	r.mu.Lock()
	r.inflight = nil
	r.mu.Unlock()

	return call.token, call.err
}

// exchange performs the refresh-token call and persists the new access token
// so every store reader, the request path included, sees it immediately.
func (r *refresher) exchange(ctx context.Context) (string, error) {
	c := r.client

	refreshToken, err := store.GetJSON[string](ctx, c.store, session.KeyRefreshToken)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		c.log.WarnContext(ctx, "token refresh attempted without refresh token")
		return "", ErrNoRefreshToken
	}

	c.log.DebugContext(ctx, "refreshing access token")

	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return "", err
	}
	resp, err := c.send(ctx, http.MethodPost, refreshPath, payload, "")
	if err != nil {
		c.log.ErrorContext(ctx, "token refresh failed", logger.Error(err))
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := readError(resp)
		c.log.ErrorContext(ctx, "token refresh rejected", logger.Error(apiErr))
		return "", apiErr
	}

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	if err := decodeBody(resp, &body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("client: refresh response missing accessToken")
	}

	if err := store.SetJSON(ctx, c.store, session.KeyAccessToken, body.AccessToken); err != nil {
		return "", err
	}

	c.log.DebugContext(ctx, "access token refreshed")
	return body.AccessToken, nil
}
