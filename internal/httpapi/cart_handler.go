package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Luchito30/ShopCart/internal/cart"
	"github.com/Luchito30/ShopCart/internal/domain"
	"github.com/Luchito30/ShopCart/internal/notify"
	"github.com/go-chi/chi/v5"
)

type addItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type adjustQuantityRequestDTO struct {
	Direction cart.Direction `json:"direction"`
}

type cartViewDTO struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

type addItemResponseDTO struct {
	Line       domain.CartLine `json:"line"`
	CartOpened bool            `json:"cart_opened"`
	Cart       cartViewDTO     `json:"cart"`
}

// requireAuth enforces the session gate on cart-mutating endpoints. An
// anonymous caller gets a "must log in" notification and the cart stays
// untouched.
func (s *Server) requireAuth(w http.ResponseWriter) bool {
	if s.gate.Authenticated() {
		return true
	}

	col := &collector{}
	col.Notify(notify.Notification{
		Kind:    notify.Error,
		Title:   "Not logged in",
		Message: "You must log in to add products to the cart.",
	})
	respondJSON(w, http.StatusUnauthorized, response{Notifications: col.notes})
	return false
}

func (s *Server) cartView() cartViewDTO {
	return cartViewDTO{
		Lines: s.cart.Lines(),
		Total: s.cart.Total(),
	}
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w) {
		return
	}
	respondJSON(w, http.StatusOK, response{Data: s.cartView()})
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w) {
		return
	}

	var req addItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, ok := s.catalog.Get(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	line, opened := s.cart.Add(product)
	respondJSON(w, http.StatusCreated, response{Data: addItemResponseDTO{
		Line:       line,
		CartOpened: opened,
		Cart:       s.cartView(),
	}})
}

func (s *Server) adjustQuantity(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w) {
		return
	}

	productID, ok := parseProductID(w, r)
	if !ok {
		return
	}

	var req adjustQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !req.Direction.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_direction", "direction must be increment or decrement")
		return
	}

	s.cart.Adjust(productID, req.Direction)
	respondJSON(w, http.StatusOK, response{Data: s.cartView()})
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w) {
		return
	}

	productID, ok := parseProductID(w, r)
	if !ok {
		return
	}

	// Removing an absent product is a no-op, not an error.
	s.cart.Remove(productID)
	respondJSON(w, http.StatusOK, response{Data: s.cartView()})
}

func parseProductID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return id, true
}
