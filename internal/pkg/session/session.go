// internal/pkg/session/session.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/your-org/storefront-client/internal/infrastructure/storage"
)

// User represents the authenticated user's profile as returned by the Auth API
type User struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
}

// Session holds the persisted auth state: access token, refresh token
// and user profile, set on login/register and cleared on logout.
type Session struct {
	storage storage.Store
}

// New creates a session backed by the given store
func New(st storage.Store) *Session {
	return &Session{storage: st}
}

// Token returns the stored access token, or "" when logged out
func (s *Session) Token(ctx context.Context) string {
	token, err := s.storage.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return ""
	}
	return token
}

// RefreshToken returns the stored refresh token, or "" when logged out
func (s *Session) RefreshToken(ctx context.Context) string {
	token, err := s.storage.Get(ctx, storage.KeyRefreshToken)
	if err != nil {
		return ""
	}
	return token
}

// IsAuthenticated reports whether a usable access token is stored.
// A JWT-shaped token with a past exp claim counts as logged out; an
// opaque token counts as logged in and the server has the final say.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token := s.Token(ctx)
	if token == "" {
		return false
	}

	// The client holds no signing secret, so only inspect claims
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now().UTC()) {
		return false
	}
	return true
}

// SetTokens stores the token pair and user profile after login/register
func (s *Session) SetTokens(ctx context.Context, accessToken, refreshToken string, user *User) error {
	if err := s.storage.Set(ctx, storage.KeyAccessToken, accessToken); err != nil {
		return fmt.Errorf("failed to store access token: %w", err)
	}
	if refreshToken != "" {
		if err := s.storage.Set(ctx, storage.KeyRefreshToken, refreshToken); err != nil {
			return fmt.Errorf("failed to store refresh token: %w", err)
		}
	}
	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to serialize user profile: %w", err)
		}
		if err := s.storage.Set(ctx, storage.KeyUser, string(data)); err != nil {
			return fmt.Errorf("failed to store user profile: %w", err)
		}
	}
	return nil
}

// SetAccessToken replaces only the access token, used after a refresh
func (s *Session) SetAccessToken(ctx context.Context, accessToken string) error {
	return s.storage.Set(ctx, storage.KeyAccessToken, accessToken)
}

// User returns the stored user profile, or nil when none is stored
func (s *Session) User(ctx context.Context) *User {
	data, err := s.storage.Get(ctx, storage.KeyUser)
	if err != nil {
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil
	}
	return &user
}

// Clear removes all session state, used on logout
func (s *Session) Clear(ctx context.Context) error {
	return s.storage.Delete(ctx,
		storage.KeyAccessToken,
		storage.KeyRefreshToken,
		storage.KeyUser,
	)
}
