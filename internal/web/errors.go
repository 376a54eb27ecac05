package web

// errors.go maps core errors onto HTTP responses.
//
// Every error body carries core.MapError's message, action and code.
// Lookup errors (unknown table or column) are the caller's fault
// and come back as 4xx. Anything else is logged with the request ID and
// returned as 5xx without the underlying error text, so store details do
// not leak to clients.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JonMunkholm/wfm/internal/core"
	"github.com/JonMunkholm/wfm/internal/logging"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// statusFor picks the HTTP status for err.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrUnknownTable):
		return http.StatusNotFound
	case errors.Is(err, core.ErrUnknownColumn):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrImportInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the matching JSON error response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := core.MapError(err)

	logger := logging.FromContext(r.Context())
	args := []any{"path", r.URL.Path, "status", status, "code", msg.Code, "error", err}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", args...)
	} else {
		logger.Warn("bad request", args...)
	}

	body := ErrorResponse{Error: msg.Message, Message: msg.Message, Action: msg.Action, Code: msg.Code}
	if status < http.StatusInternalServerError {
		// Client errors name the offending table or parameter.
		body.Error = err.Error()
	}
	writeErrorBody(w, status, body)
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeErrorBody(w, status, ErrorResponse{Error: message, Message: message, Code: code})
}

func writeErrorBody(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
