// Package backend is the HTTP client for the remote storefront API.
// All durable state (products, orders, users, addresses) lives behind
// this API; the client only ever consumes it.
package backend

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

	"github.com/google/uuid"
)

// ErrUnauthorized is returned when the backend rejects the bearer
// token. Callers redirect to sign-in; the attempted action is not
// queued for replay.
var ErrUnauthorized = errors.New("authentication required")

// TokenSource supplies the current bearer token, or "" when signed out.
// The session satisfies this.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
	}
}

// apiError is the backend's error envelope. Some endpoints use
// "message", older ones "error".
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// doJSON sends a JSON request and decodes a JSON response into out
// (which may be nil). When authed is set the current bearer token is
// attached; a missing token fails fast with ErrUnauthorized.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if authed {
		token := c.tokens.Token()
		if token == "" {
			return ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 300 {
		var e apiError
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil {
			if e.Message != "" {
				return errors.New(e.Message)
			}
			if e.Error != "" {
				return errors.New(e.Error)
			}
		}
		return fmt.Errorf("%s %s failed (%s)", method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// get downloads a raw response body, for file exports.
func (c *Client) get(ctx context.Context, path string, authed bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed {
		token := c.tokens.Token()
		if token == "" {
			return nil, ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s failed (%s)", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
