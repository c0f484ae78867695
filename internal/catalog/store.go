package catalog

import (
	"sync"

	"github.com/Luchito30/ShopCart/internal/domain"
)

// Store holds the fetched product list in memory. Reads vastly outnumber
// the single write, hence the RWMutex.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[int64]domain.Product
}

func NewStore() *Store {
	return &Store{byID: make(map[int64]domain.Product)}
}

// SetProducts replaces the catalog contents.
func (s *Store) SetProducts(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]domain.Product, len(products))
	copy(s.products, products)

	s.byID = make(map[int64]domain.Product, len(products))
	for _, p := range products {
		s.byID[p.ID] = p
	}
}

// Products returns a snapshot of the catalog. Empty until the fetch has
// delivered.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks a product up by id.
func (s *Store) Get(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok
}

// Len is the number of products currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
