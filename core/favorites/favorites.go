package favorites

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/lumacafe/cafekit/core/store"
)

// Key is the storage key owned by this package.
const Key = "mis_favoritos"

// ErrNilStore is returned when a Set is created without a backing store.
var ErrNilStore = errors.New("favorites: nil store")

// Set is the in-memory favorites collection, mirrored to the store on every
// mutation. Safe for concurrent use.
type Set struct {
	mu    sync.RWMutex
	store store.Store
	ids   []int64
}

// New creates an empty favorites set backed by st. Call Load to restore
// persisted entries.
func New(st store.Store) (*Set, error) {
	if st == nil {
		return nil, ErrNilStore
	}
	return &Set{store: st}, nil
}

// Load replaces the in-memory set with the persisted one. A malformed
// persisted payload resets the set to empty.
func (s *Set) Load(ctx context.Context) error {
	ids, err := store.GetJSON[[]int64](ctx, s.store, Key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = ids
	return nil
}

// IDs returns the favorite product ids in insertion order.
func (s *Set) IDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ids)
}

// Add inserts the product id. Adding an id already in the set is a no-op.
func (s *Set) Add(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.ids, productID) {
		s.ids = append(s.ids, productID)
	}
	return s.persist(ctx)
}

// Remove deletes the product id. Removing an absent id is a no-op.
func (s *Set) Remove(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = slices.DeleteFunc(s.ids, func(id int64) bool {
		return id == productID
	})
	return s.persist(ctx)
}

// Contains reports whether the product id is in the set.
func (s *Set) Contains(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ids, productID)
}

// Len returns the number of favorites.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// persist rewrites the whole set. Caller must hold s.mu.
func (s *Set) persist(ctx context.Context) error {
	ids := s.ids
	if ids == nil {
		ids = []int64{}
	}
	return store.SetJSON(ctx, s.store, Key, ids)
}
