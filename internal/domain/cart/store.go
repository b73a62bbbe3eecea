// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/product"
	"github.com/your-org/storefront-client/internal/infrastructure/storage"
)

// ErrNegativeQuantity is returned when a caller passes a quantity below zero.
// Negative quantities are rejected rather than clamped so caller bugs surface.
var ErrNegativeQuantity = fmt.Errorf("cart: quantity cannot be negative")

// ErrLineNotFound is returned when updating a product that is not in the cart
var ErrLineNotFound = fmt.Errorf("cart: item not found in cart")

// Store owns the cart lines, persists them after every mutation and
// notifies subscribers. Safe for concurrent use; each mutation holds the
// lock across read-modify-persist so two mutations never interleave.
type Store struct {
	mu          sync.Mutex
	lines       []Line
	storage     storage.Store
	logger      *logrus.Logger
	subscribers []func()
}

// NewStore creates a cart store, rehydrating persisted state. A missing or
// malformed persisted cart starts empty rather than failing startup.
func NewStore(ctx context.Context, st storage.Store, logger *logrus.Logger) *Store {
	s := &Store{
		storage: st,
		logger:  logger,
	}

	data, err := st.Get(ctx, storage.KeyCart)
	if err == nil {
		if err := json.Unmarshal([]byte(data), &s.lines); err != nil {
			logger.WithError(err).Warn("Persisted cart is malformed, starting empty")
			s.lines = nil
		}
	} else if err != storage.ErrNotFound {
		logger.WithError(err).Warn("Failed to load persisted cart, starting empty")
	}

	return s
}

// Subscribe registers a listener invoked after each successful mutation+persist
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// AddItem adds one unit of a product to the cart, merging by product id
func (s *Store) AddItem(ctx context.Context, p product.Product) error {
	s.mu.Lock()
	prev := s.snapshot()

	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			UnitPrice: p.Price,
			Image:     p.Image,
			Quantity:  1,
		})
	}

	err := s.persist(ctx, prev)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// RemoveItem deletes the matching line. Removing an absent product is a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID uint) error {
	s.mu.Lock()
	prev := s.snapshot()

	found := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil
	}

	err := s.persist(ctx, prev)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// SetQuantity replaces a line's quantity. Zero removes the line; negative
// values are rejected with ErrNegativeQuantity.
func (s *Store) SetQuantity(ctx context.Context, productID uint, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	s.mu.Lock()
	prev := s.snapshot()

	found := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			if quantity == 0 {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			} else {
				s.lines[i].Quantity = quantity
			}
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		if quantity == 0 {
			// Same outcome as removing an absent item
			return nil
		}
		return ErrLineNotFound
	}

	err := s.persist(ctx, prev)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Clear empties the cart and persists
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	prev := s.snapshot()
	s.lines = nil
	err := s.persist(ctx, prev)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Lines returns a copy of the current cart lines in insertion order
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Totals derives subtotal, shipping and total from the current cart state
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculateTotals(s.lines)
}

// IsEmpty reports whether the cart has no lines
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// ItemCount returns the total quantity across all lines
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// snapshot copies the current lines. Caller must hold the lock.
func (s *Store) snapshot() []Line {
	if s.lines == nil {
		return nil
	}
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// persist serializes the full cart to storage. Caller must hold the lock
// and pass the pre-mutation snapshot; on failure the in-memory lines are
// restored to it so state and storage never diverge.
func (s *Store) persist(ctx context.Context, prev []Line) error {
	data, err := json.Marshal(s.lines)
	if err != nil {
		s.lines = prev
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	if err := s.storage.Set(ctx, storage.KeyCart, string(data)); err != nil {
		s.lines = prev
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	return nil
}

// notify invokes subscribers without holding the mutation lock, so a
// listener may read the store
func (s *Store) notify() {
	s.mu.Lock()
	subscribers := make([]func(), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
