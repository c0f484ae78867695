package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	// Lazy one-shot load: an empty catalog triggers a fetch, but a failed
	// fetch still serves the empty list. "No products yet" is not an error.
	if err := s.loader.Ensure(r.Context()); err != nil {
		s.logger.Warn("catalog load failed",
			"error", err,
			"request_id", getRequestID(r.Context()),
		)
	}

	respondJSON(w, http.StatusOK, response{Data: s.catalog.Products()})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	p, ok := s.catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	respondJSON(w, http.StatusOK, response{Data: p})
}
