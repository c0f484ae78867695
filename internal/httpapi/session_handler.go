package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Luchito30/ShopCart/internal/notify"
	"github.com/Luchito30/ShopCart/internal/session"
)

type loginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	col := &collector{}

	err := s.gate.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, session.ErrLoginPending):
		respondError(w, http.StatusConflict, "login_pending", "a login attempt is already in progress")
		return
	case errors.Is(err, session.ErrBadCredentials):
		col.Notify(notify.Notification{
			Kind:    notify.Error,
			Title:   "Incorrect credentials",
			Message: "Please check your username and password.",
		})
		respondJSON(w, http.StatusUnauthorized, response{Notifications: col.notes})
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "internal_error", "login failed")
		return
	}

	col.Notify(notify.Notification{
		Kind:    notify.Success,
		Title:   "Welcome!",
		Message: fmt.Sprintf("Logged in successfully, %s!", req.Username),
	})
	respondJSON(w, http.StatusOK, response{
		Data:          map[string]bool{"authenticated": true},
		Notifications: col.notes,
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	// Logout clears the cart (gate hook) and closes any open checkout view.
	s.gate.Logout()
	s.CloseCheckout()

	respondJSON(w, http.StatusOK, response{
		Data: map[string]bool{"authenticated": false},
	})
}
