// Package httputil centralizes JSON encoding and domain error translation for
// HTTP handlers so every endpoint emits the same envelopes.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "cotejo/pkg/domain-errors"
)

// errorResponse is the JSON error envelope. The description is omitted for
// internal errors so implementation detail never reaches clients.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the shared error envelope.
// Non-domain errors are reported as internal without detail.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	resp := errorResponse{Error: string(code)}
	if code != dErrors.CodeInternal {
		resp.ErrorDescription = dErrors.MessageOf(err)
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), resp)
}

// Validatable is implemented by request types that validate and parse
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// DecodeAndPrepare decodes the request body into T, runs its Validate method,
// and writes the appropriate error response on failure. The boolean reports
// whether the handler should proceed.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (PT, bool) {
	req := PT(new(T))
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logger.WarnContext(ctx, "invalid request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	if err := req.Validate(); err != nil {
		logger.WarnContext(ctx, "request validation failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		WriteError(w, err)
		return nil, false
	}
	return req, true
}
