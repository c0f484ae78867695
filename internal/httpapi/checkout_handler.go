package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Luchito30/ShopCart/internal/checkout"
	"github.com/Luchito30/ShopCart/internal/domain"
)

type beginCheckoutRequestDTO struct {
	// Confirm is the finalize-or-keep-shopping decision.
	Confirm bool `json:"confirm"`
}

type setMethodRequestDTO struct {
	Method domain.PaymentMethod `json:"method"`
}

type checkoutStateDTO struct {
	Started bool                 `json:"started"`
	State   checkout.State       `json:"state,omitempty"`
	Method  domain.PaymentMethod `json:"method,omitempty"`
	Fields  *checkout.Fields     `json:"fields,omitempty"`
}

func (s *Server) beginCheckout(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w) {
		return
	}

	var req beginCheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if active := s.activeCheckout(); active != nil && !active.State().IsTerminal() {
		respondError(w, http.StatusConflict, "checkout_in_progress", "a checkout is already in progress")
		return
	}

	col := &collector{confirm: req.Confirm}

	p, err := checkout.Begin(s.cart, col)
	if errors.Is(err, checkout.ErrEmptyCart) {
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
		return
	}
	if p == nil {
		// Declined: keep shopping, nothing started.
		respondJSON(w, http.StatusOK, response{
			Data:          checkoutStateDTO{Started: false},
			Notifications: col.notes,
		})
		return
	}

	s.setActiveCheckout(p)
	respondJSON(w, http.StatusCreated, response{
		Data:          s.checkoutState(p),
		Notifications: col.notes,
	})
}

func (s *Server) setCheckoutMethod(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireActiveCheckout(w)
	if !ok {
		return
	}

	var req setMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := p.SetMethod(req.Method); err != nil {
		switch {
		case errors.Is(err, checkout.ErrUnknownMethod):
			respondError(w, http.StatusBadRequest, "invalid_method", err.Error())
		case errors.Is(err, checkout.ErrCheckoutFinished):
			respondError(w, http.StatusConflict, "checkout_finished", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to set method")
		}
		return
	}

	respondJSON(w, http.StatusOK, response{Data: s.checkoutState(p)})
}

func (s *Server) setCheckoutFields(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireActiveCheckout(w)
	if !ok {
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	for name, value := range fields {
		if err := p.SetField(name, value); err != nil {
			switch {
			case errors.Is(err, checkout.ErrUnknownField):
				respondError(w, http.StatusBadRequest, "invalid_field", err.Error())
			case errors.Is(err, checkout.ErrCheckoutFinished):
				respondError(w, http.StatusConflict, "checkout_finished", err.Error())
			default:
				respondError(w, http.StatusInternalServerError, "internal_error", "failed to set field")
			}
			return
		}
	}

	// Echo the filtered field values so the client renders exactly what the
	// core stored (formatted card number, truncated postal code, ...).
	respondJSON(w, http.StatusOK, response{Data: s.checkoutState(p)})
}

func (s *Server) submitCheckout(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireActiveCheckout(w)
	if !ok {
		return
	}

	col := &collector{}

	order, err := p.Submit(col)
	switch {
	case errors.Is(err, checkout.ErrValidationFailed):
		respondJSON(w, http.StatusUnprocessableEntity, response{
			Data:          s.checkoutState(p),
			Notifications: col.notes,
		})
		return
	case errors.Is(err, checkout.ErrCheckoutFinished):
		respondError(w, http.StatusConflict, "checkout_finished", err.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "internal_error", "checkout failed")
		return
	}

	s.setActiveCheckout(nil)
	s.logger.Info("order completed",
		"order_id", order.ID,
		"method", order.Method.String(),
		"total", order.Total,
	)
	respondJSON(w, http.StatusOK, response{
		Data:          order,
		Notifications: col.notes,
	})
}

func (s *Server) cancelCheckout(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireActiveCheckout(w)
	if !ok {
		return
	}

	if err := p.Cancel(); err != nil {
		respondError(w, http.StatusConflict, "checkout_finished", err.Error())
		return
	}

	s.setActiveCheckout(nil)
	respondJSON(w, http.StatusOK, response{Data: checkoutStateDTO{Started: false}})
}

func (s *Server) requireActiveCheckout(w http.ResponseWriter) (*checkout.Process, bool) {
	if !s.requireAuth(w) {
		return nil, false
	}

	p := s.activeCheckout()
	if p == nil {
		respondError(w, http.StatusNotFound, "no_active_checkout", "no checkout in progress")
		return nil, false
	}
	return p, true
}

func (s *Server) checkoutState(p *checkout.Process) checkoutStateDTO {
	fields := p.Fields()
	return checkoutStateDTO{
		Started: true,
		State:   p.State(),
		Method:  p.Method(),
		Fields:  &fields,
	}
}
