// internal/infrastructure/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/pkg/session"
)

// APIError represents a non-2xx response from the backend, carrying the
// server-provided error message
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Client is the REST client for the storefront backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *session.Session
	logger     *logrus.Logger
}

// NewClient creates an API client bound to the configured backend
func NewClient(cfg *config.Config, sess *session.Session, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.API.RequestTimeout,
		},
		baseURL: cfg.GetAPIURL(""),
		session: sess,
		logger:  logger,
	}
}

// do executes an API request, transparently renewing an expired access
// token: a 401 on a non-credential endpoint triggers one refresh attempt
// and a single retry.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	err := c.doOnce(ctx, method, path, query, body, out)
	if !c.shouldRefresh(ctx, path, err) {
		return err
	}
	if refreshErr := c.RefreshSession(ctx); refreshErr != nil {
		c.logger.WithError(refreshErr).Debug("Token refresh failed")
		return err
	}
	return c.doOnce(ctx, method, path, query, body, out)
}

// shouldRefresh reports whether a failed request is worth retrying after a
// token refresh. Credential endpoints return 401 for bad credentials, not
// expired tokens, so they never trigger a refresh.
func (c *Client) shouldRefresh(ctx context.Context, path string, err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		return false
	}
	if path == "/auth/login" || path == "/auth/register" {
		return false
	}
	return c.session.RefreshToken(ctx) != ""
}

// doOnce executes one API request. The bearer token is attached when a
// session token exists; out, when non-nil, receives the decoded 2xx body.
// Non-2xx responses become *APIError with the body's error message.
func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     method,
			"path":       path,
		}).WithError(err).Warn("API request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
		"latency":     time.Since(start),
	}).Debug("API request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody, resp.StatusCode),
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeBody decodes a JSON response body into out
func decodeBody(resp *http.Response, out interface{}) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the server's error field, falling back to the
// HTTP status text for non-JSON bodies
func errorMessage(body []byte, statusCode int) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return http.StatusText(statusCode)
}
