package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"inventaris-backend-go/internal/services"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Role    string `json:"role,omitempty"`
	Exists  *bool  `json:"exists,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func WriteExists(w http.ResponseWriter, exists bool) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Exists: &exists})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Message: message})
}

// WriteServiceError maps a services error to its status; anything that is
// not a ServiceError becomes a 500 with the given fallback message.
func WriteServiceError(w http.ResponseWriter, err error, fallback string) {
	var svcErr services.ServiceError
	if errors.As(err, &svcErr) {
		WriteError(w, svcErr.Status, svcErr.Message)
		return
	}
	WriteError(w, http.StatusInternalServerError, fallback)
}
