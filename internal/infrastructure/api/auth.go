// internal/infrastructure/api/auth.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/your-org/storefront-client/internal/pkg/session"
)

// LoginRequest is the credentials payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the signup payload for POST /api/auth/register
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// authResponse is the token payload returned by login and register
type authResponse struct {
	Message      string        `json:"message"`
	User         *session.User `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}

// Login authenticates and stores the returned token pair in the session
func (c *Client) Login(ctx context.Context, req LoginRequest) (*session.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login response missing access token")
	}
	if err := c.session.SetTokens(ctx, resp.AccessToken, resp.RefreshToken, resp.User); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Register creates an account and stores the returned token pair
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*session.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("register response missing access token")
	}
	if err := c.session.SetTokens(ctx, resp.AccessToken, resp.RefreshToken, resp.User); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout clears the persisted session. Purely local; the backend keeps
// stateless JWTs.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

// CurrentUser fetches the authenticated user's profile
func (c *Client) CurrentUser(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the authenticated user's profile. Only the fields
// present in the map are changed server-side.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]interface{}) (*session.User, error) {
	var resp struct {
		Message string        `json:"message"`
		User    *session.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/me", nil, fields, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// ChangePassword changes the authenticated user's password
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	payload := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.do(ctx, http.MethodPost, "/auth/change-password", nil, payload, nil)
}

// RefreshSession exchanges the refresh token for a new access token
func (c *Client) RefreshSession(ctx context.Context) error {
	refreshToken := c.session.RefreshToken(ctx)
	if refreshToken == "" {
		return fmt.Errorf("no refresh token stored")
	}

	// The refresh endpoint authenticates with the refresh token
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+refreshToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := decodeBody(resp, &payload); err != nil {
		return err
	}
	if payload.AccessToken == "" {
		return fmt.Errorf("refresh response missing access token")
	}
	return c.session.SetAccessToken(ctx, payload.AccessToken)
}
