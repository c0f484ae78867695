package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Luchito30/ShopCart/internal/notify"
)

// ErrorResponse is the error payload shape.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// response is the success envelope: the payload plus any notifications the
// core raised while handling the request.
type response struct {
	Data          any                   `json:"data,omitempty"`
	Notifications []notify.Notification `json:"notifications,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
