package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// FieldErrors maps a request field name to what is wrong with it.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, reason string) { fe[field] = reason }

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: chimw.GetReqID(r.Context()),
	})
}

// WriteFieldErrors reports a 400 with per-field reasons under details.fields.
func WriteFieldErrors(w http.ResponseWriter, r *http.Request, msg string, fe FieldErrors) {
	WriteError(w, r, http.StatusBadRequest, msg, map[string]any{"fields": fe})
}
