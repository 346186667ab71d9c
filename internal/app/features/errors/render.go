// internal/app/features/errors/render.go
package errors

import (
	"encoding/json"
	"net/http"
)

// Body is the JSON shape of every error response.
type Body struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Body{Error: msg})
}

// WriteErrorDetails writes {"error": msg, "details": details}.
func WriteErrorDetails(w http.ResponseWriter, status int, msg string, details any) {
	WriteJSON(w, status, Body{Error: msg, Details: details})
}

// NotFound is the router's fallback handler.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "not found")
}

// MethodNotAllowed is the router's fallback for unsupported methods.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
}
