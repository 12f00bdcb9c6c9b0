// Package api is the HTTP client for the marketplace backend. Every call
// site is a thin verb+path wrapper; the only cross-cutting behaviour is the
// request interceptor, which attaches the stored bearer credential and a
// request id to each outgoing request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

// DefaultBaseURL is the local-development fallback used when no base
// address is configured.
const DefaultBaseURL = "http://localhost:5000"

// APIError is a backend-reported failure: a non-2xx response with the
// structured message pulled out of the body when one is present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// errorEnvelope matches the two error body shapes the backend produces:
// a single message, or a list of per-field validation errors.
type errorEnvelope struct {
	Message string `json:"message"`
	Errors  []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

const genericErrorMessage = "request failed"

var _ ports.Backend = (*Client)(nil)

// Client implements ports.Backend over net/http. A cookie jar is enabled so
// cookie-based credentials ride along with the bearer header (the backend
// decides which to honour).
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// New builds a Client. creds is read on every request by the interceptor;
// an empty token simply omits the Authorization header.
func New(baseURL string, creds ports.CredentialStore, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Jar: jar,
			Transport: &authTransport{
				creds: creds,
				next:  http.DefaultTransport,
				log:   log,
			},
		},
		log: log,
	}
}

// authTransport is the request interceptor: it reads the stored bearer
// credential per request and, when present, sets the Authorization header.
// Absent token means the request goes out unauthenticated and the backend
// decides whether to reject it.
type authTransport struct {
	creds ports.CredentialStore
	next  http.RoundTripper
	log   zerolog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-ID", uuid.NewString())
	if token := t.creds.Token(); token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(clone)
	evt := t.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Dur("elapsed", time.Since(start))
	if err != nil {
		evt.Err(err).Msg("backend request failed")
		return nil, err
	}
	evt.Int("status", resp.StatusCode).Msg("backend request")
	return resp, nil
}

// do executes one request. body (when non-nil) is sent as JSON; out (when
// non-nil) receives the decoded 2xx response body. Non-2xx responses become
// *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// newAPIError extracts the structured message from an error body: the
// joined per-field validation messages when present, otherwise the message
// field, otherwise a generic string.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: genericErrorMessage}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}
	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			if e.Msg != "" {
				msgs = append(msgs, e.Msg)
			}
		}
		if len(msgs) > 0 {
			apiErr.Message = strings.Join(msgs, ", ")
			return apiErr
		}
	}
	if env.Message != "" {
		apiErr.Message = env.Message
	}
	return apiErr
}
