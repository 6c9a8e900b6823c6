package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
)

// ErrorDetail is the inner payload of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope every error body uses:
//
//	{"error":{"code":"not_found","message":"trip not found"}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON serializes v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// notFound writes a 404 response. The caller supplies the human-readable
// message (e.g. "trip not found") because the handler is the layer that
// knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}})
}

// validationFailed writes a 422 response with the message extracted from the
// wrapped domain.ErrValidation error.
func validationFailed(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}})
}

// badRequest writes a 422 response for a request rejected before reaching
// the service layer (e.g. missing or malformed body, bad UUID in the path).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}})
}

// unauthorized writes a 401 response with the message from the wrapped
// domain.ErrUnauthorized error.
func unauthorized(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: ErrorDetail{Code: "unauthorized", Message: unwrapMessage(err)}})
}

// upstreamFailed writes a 400 response for failures in the external geo and
// places APIs. Auth-service failures map to 401 instead, so callers check
// ErrUnauthorized first.
func upstreamFailed(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{Code: "upstream_error", Message: unwrapMessage(err)}})
}

// serviceError maps a service-layer error to the right response. Handlers
// call it after checking any statuses they want to customise (usually 404
// messages) themselves.
func serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		validationFailed(w, err)
	case errors.Is(err, domain.ErrUnauthorized):
		unauthorized(w, err)
	case errors.Is(err, domain.ErrUpstream):
		upstreamFailed(w, err)
	default:
		internalError(w, r, err)
	}
}

// internalError logs the underlying error and writes a generic 500 body.
// The real error never reaches the client.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{
		"validation error: ",
		"unauthorized: ",
		"upstream failure: ",
	} {
		if idx := strings.LastIndex(msg, marker); idx >= 0 {
			return msg[idx+len(marker):]
		}
	}
	return msg
}
