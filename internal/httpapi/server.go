// Package httpapi is the presentation boundary: a JSON API over the cart,
// session and checkout operations. It owns no business rules; it translates
// requests into core calls and core notifications into response payloads.
package httpapi

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Luchito30/ShopCart/internal/cart"
	"github.com/Luchito30/ShopCart/internal/catalog"
	"github.com/Luchito30/ShopCart/internal/checkout"
	"github.com/Luchito30/ShopCart/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	logger  *slog.Logger
	cart    *cart.Store
	gate    *session.Gate
	catalog *catalog.Store
	loader  *catalog.Loader

	// active is the in-flight checkout attempt, at most one per session.
	mu     sync.Mutex
	active *checkout.Process
}

func NewServer(
	logger *slog.Logger,
	cartStore *cart.Store,
	gate *session.Gate,
	catalogStore *catalog.Store,
	loader *catalog.Loader,
) *Server {
	return &Server{
		logger:  logger,
		cart:    cartStore,
		gate:    gate,
		catalog: catalogStore,
		loader:  loader,
	}
}

// Router builds the chi router with the global middleware stack.
func (s *Server) Router(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", s.listProducts)
		r.Get("/products/{product_id}", s.getProduct)

		r.Post("/login", s.login)
		r.Post("/logout", s.logout)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.getCart)
			r.Post("/items", s.addItem)
			r.Put("/items/{product_id}", s.adjustQuantity)
			r.Delete("/items/{product_id}", s.removeItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", s.beginCheckout)
			r.Put("/method", s.setCheckoutMethod)
			r.Put("/fields", s.setCheckoutFields)
			r.Post("/submit", s.submitCheckout)
			r.Delete("/", s.cancelCheckout)
		})
	})

	return r
}

// CloseCheckout drops the active checkout attempt, if any. Called when the
// session ends: logging out closes any open checkout view.
func (s *Server) CloseCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil && !s.active.State().IsTerminal() {
		_ = s.active.Cancel()
	}
	s.active = nil
}

func (s *Server) activeCheckout() *checkout.Process {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Server) setActiveCheckout(p *checkout.Process) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = p
}
