package luxebid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/luxebid/luxebid/pkg/model"
)

// CredentialSource supplies the credential attached to outgoing
// requests. It is read at dispatch time, so a logout between dispatch
// and response does not retroactively affect in-flight calls.
type CredentialSource interface {
	// Token returns the current credential, or "" when logged out.
	Token() string

	// Invalidate clears the session if token is still the current
	// credential and reports whether anything was cleared. A stale
	// token (already replaced or already cleared) is a no-op, which
	// keeps the clear-on-401 path idempotent.
	Invalidate(token string) bool
}

// Client dispatches HTTP calls to the LuxeBid backend. Every call is
// stamped with the current credential if one is present; calls without
// a credential go out unauthenticated, which is legitimate for public
// endpoints.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *slog.Logger

	creds         CredentialSource
	onAuthFailure func()
}

// NewClient creates a LuxeBid API client with the given configuration.
func NewClient(config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
		logger: logger.With("component", "luxebid-client"),
	}
}

// SetCredentials binds the credential source consulted on every
// dispatch. Passing nil detaches it; subsequent calls go out
// unauthenticated.
func (c *Client) SetCredentials(creds CredentialSource) {
	c.creds = creds
}

// OnAuthFailure registers a callback invoked when a credential is
// rejected by the backend and the session has been cleared. The caller
// typically schedules navigation to the login destination. The
// callback runs at most once per cleared session.
func (c *Client) OnAuthFailure(fn func()) {
	c.onAuthFailure = fn
}

// token returns the credential snapshot for the current dispatch.
func (c *Client) token() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}

// do performs a single HTTP request against the backend and decodes a
// successful response into out (which may be nil). Failures are
// returned as *model.APIError for backend-reported errors, or a plain
// wrapped error for transport failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.config.BaseURL + path
	requestID := uuid.NewString()
	logger := c.logger.With("method", method, "path", path, "request_id", requestID)

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	// Credential snapshot at dispatch time.
	token := c.token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("sending request", "authenticated", token != "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	logger.Debug("response received", "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		// The backend rejected the credential. Clear the session once;
		// the Invalidate no-op on stale tokens keeps repeated 401s from
		// re-firing the navigation callback.
		if token != "" && c.creds != nil && c.creds.Invalidate(token) {
			logger.Info("credential rejected, session cleared")
			if c.onAuthFailure != nil {
				c.onAuthFailure()
			}
		}
		return decodeError(resp.StatusCode, respBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}

// get performs a GET request, decoding into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post performs a POST request with a JSON body, decoding into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put performs a PUT request with a JSON body, decoding into out.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// getList performs a GET against a list endpoint and normalizes the
// payload, which the backend returns either as a bare array or as an
// envelope with a "results" field.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeList[T](raw)
}

// decodeError builds a *model.APIError from a non-2xx response body.
// Validation failures arrive as a mapping from field name to an array
// of message strings; other failures carry "detail", "message", or
// "error" keys. Anything unparseable is kept verbatim.
func decodeError(status int, body []byte) *model.APIError {
	apiErr := &model.APIError{Status: status}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		apiErr.Message = http.StatusText(status)
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		apiErr.Message = strings.TrimSpace(string(trimmed))
		return apiErr
	}

	fields := make(map[string][]string)
	for key, raw := range payload {
		switch key {
		case "detail", "message", "error":
			var msg string
			if json.Unmarshal(raw, &msg) == nil {
				apiErr.Message = msg
				continue
			}
		}

		// Field errors come as either a list of messages or a single
		// string, depending on the endpoint.
		var msgs []string
		if json.Unmarshal(raw, &msgs) == nil {
			fields[key] = msgs
			continue
		}
		var msg string
		if json.Unmarshal(raw, &msg) == nil {
			fields[key] = []string{msg}
		}
	}

	if len(fields) > 0 {
		apiErr.Fields = fields
		if apiErr.Message == "" {
			apiErr.Message = "validation failed"
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
