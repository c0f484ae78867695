// Package cart owns the authoritative cart state. All operations are total:
// conditions like removing an absent product are no-ops, not errors.
package cart

import (
	"math"
	"sync"

	"github.com/Luchito30/ShopCart/internal/domain"
)

// Direction of a quantity adjustment.
type Direction string

const (
	Increment Direction = "increment"
	Decrement Direction = "decrement"
)

func (d Direction) Valid() bool {
	return d == Increment || d == Decrement
}

// Store is an in-memory cart: an ordered list of lines, one per product id,
// in the order products were first added.
type Store struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

func NewStore() *Store {
	return &Store{}
}

// Add puts a product in the cart. An existing line has its quantity
// incremented; otherwise a new line with quantity 1 is appended. The second
// return value is true only when a brand-new line was inserted, which is the
// signal for the presentation layer to open the cart view.
func (s *Store) Add(p domain.Product) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity++
			return s.lines[i], false
		}
	}

	line := domain.CartLine{Product: p, Quantity: 1}
	s.lines = append(s.lines, line)
	return line, true
}

// Remove deletes the line for the given product id. Absent id is a no-op.
func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Adjust changes a line's quantity by one. Increment is unbounded; decrement
// floors at 1 and never removes the line. Absent id or an invalid direction
// is a no-op.
func (s *Store) Adjust(productID int64, d Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}
		switch d {
		case Increment:
			s.lines[i].Quantity++
		case Decrement:
			if s.lines[i].Quantity > 1 {
				s.lines[i].Quantity--
			}
		}
		return
	}
}

// Lines returns a snapshot copy of the cart contents.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len is the number of distinct lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Total is the sum of price*quantity over all lines, rounded to 2 decimal
// places. It is always recomputed from source values, never stored, so no
// rounding drift accumulates.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return math.Round(total*100) / 100
}

// Clear empties the cart unconditionally. Used by logout and by a
// successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}
