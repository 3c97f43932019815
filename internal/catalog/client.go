// Package catalog is the console's transport to the catalogue API: one
// request helper plus a typed operation per endpoint. It attaches the
// operator's bearer token when present, maps error envelopes to APIError,
// and invalidates the session on 401 before the error reaches the caller.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gTurboflex/supermarket-console/internal/log"
	"github.com/gTurboflex/supermarket-console/internal/session"
)

// APIError is a non-2xx response from the catalogue API. Message carries the
// server's "error" field, falling back to "message", then "HTTP <status>".
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *session.Session
}

func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Session: sess,
	}
}

// errEnvelope is the error body convention shared by every endpoint.
type errEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one call. Body, when non-nil, is serialized as JSON; out, when
// non-nil, receives the decoded 2xx response. No retries, no deadline beyond
// the injected http.Client and ctx.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	if tok := c.Session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Upstream(reqID, method, path, 0, time.Since(start), err)
		return err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		log.Upstream(reqID, method, path, resp.StatusCode, time.Since(start), err)
		return fmt.Errorf("read response: %w", err)
	}
	raw := buf.Bytes()
	log.Upstream(reqID, method, path, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Session invalidation is ordered before the error so callers that
		// observe the failure already see a logged-out session.
		if resp.StatusCode == http.StatusUnauthorized {
			_ = c.Session.Clear()
		}
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the server's error text: "error", then "message",
// then the raw body when it is not JSON, then a generic HTTP line.
func errorMessage(status int, raw []byte) string {
	var env errEnvelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
	} else if s := strings.TrimSpace(string(raw)); s != "" {
		return s
	}
	return fmt.Sprintf("HTTP %d", status)
}
