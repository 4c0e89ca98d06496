// Package gateway is the boundary component issuing requests to the hosted
// backend: auth, per-table CRUD, and object storage. Every request carries
// the project api key plus, when a session exists, the session's bearer
// token. All failures map to RemoteError; callers are expected to surface
// the message and leave retrying to the user.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies the current session credential for outbound requests.
// The session store implements it; an empty token means no active session.
type TokenSource interface {
	AccessToken() string
	UserID() string
}

type Config struct {
	// BaseURL is the backend project URL; auth, rest, and storage endpoints
	// hang off it.
	BaseURL string
	// AnonKey is the project api key, sent on every request and used as the
	// bearer credential when no session exists.
	AnonKey string
	// Timeout bounds each request. Zero means no client-side timeout,
	// matching the source design; callers may still cancel via context.
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	anonKey string
	timeout time.Duration
	http    *http.Client
	tokens  TokenSource
}

func New(cfg Config, tokens TokenSource) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		anonKey: cfg.AnonKey,
		timeout: cfg.Timeout,
		http:    hc,
		tokens:  tokens,
	}
}

// bearer returns the credential for the Authorization header: the session
// token when present, the anon key otherwise.
func (c *Client) bearer() string {
	if tok := c.tokens.AccessToken(); tok != "" {
		return tok
	}
	return c.anonKey
}

func (c *Client) hasSession() bool {
	return c.tokens.AccessToken() != "" && c.tokens.UserID() != ""
}

// do issues one JSON request and decodes the response into out (skipped when
// out is nil or the body is empty). Transport failures and non-2xx statuses
// are mapped to RemoteError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, headers map[string]string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Reason: ReasonTransport, Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Reason: ReasonTransport, Message: "reading response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RemoteError{Reason: ReasonBackend, Message: "decoding response", Err: err}
	}
	return nil
}

// statusError extracts the backend's error message. The auth and rest APIs
// use different field names, so all known ones are tried.
func statusError(status int, data []byte) *RemoteError {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	_ = json.Unmarshal(data, &payload)

	msg := payload.Message
	for _, alt := range []string{payload.Msg, payload.ErrorDescription, payload.Error} {
		if msg == "" {
			msg = alt
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	reason := ReasonBackend
	if status == http.StatusNotFound || status == http.StatusNotAcceptable {
		reason = ReasonNotFound
	}
	return &RemoteError{Reason: reason, Message: msg}
}
