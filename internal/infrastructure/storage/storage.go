// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/storefront-client/internal/config"
)

// Well-known keys for persisted client state
const (
	KeyCart         = "cart"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
)

// ErrNotFound is returned when a key has no persisted value
var ErrNotFound = errors.New("storage: key not found")

// Store is the client-side key/value persistence collaborator.
// Values are opaque strings; callers own serialization.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Health(ctx context.Context) error
	Close() error
}

// New creates the store selected by STORAGE_PROVIDER
func New(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Provider {
	case "file":
		return NewFileStore(cfg.Storage.FilePath)
	case "redis":
		return NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Storage.Provider)
	}
}
