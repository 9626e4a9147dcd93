package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cotejo/internal/platform/middleware"
	"cotejo/internal/validate"
	"cotejo/pkg/platform/httputil"
	"cotejo/pkg/requestcontext"
	"cotejo/pkg/spain"
)

// Service defines the interface for validation operations.
type Service interface {
	ValidateIdentity(ctx context.Context, req validate.IdentityRequest) spain.Result
	ValidateBankAccount(ctx context.Context, value string) spain.Result
	ValidatePostalCode(ctx context.Context, value string) bool
	ValidatePhoneNumber(ctx context.Context, value string) bool
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validate/identity", h.handleIdentity)
	r.Post("/validate/bank-account", h.handleBankAccount)
	r.Post("/validate/postal-code", h.handlePostalCode)
	r.Post("/validate/phone", h.handlePhoneNumber)
}

// handleIdentity handles POST /validate/identity requests.
func (h *Handler) handleIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[IdentityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.ValidateIdentity(ctx, validate.IdentityRequest{
		Value:   req.Value,
		OnlyNIF: req.OnlyNIF,
	})

	h.logger.InfoContext(ctx, "identity validated",
		"request_id", requestID,
		"client_id", middleware.GetClientID(ctx),
		"kind", string(result.Kind),
		"valid", result.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// handleBankAccount handles POST /validate/bank-account requests.
func (h *Handler) handleBankAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValueRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.ValidateBankAccount(ctx, req.Value)

	h.logger.InfoContext(ctx, "bank account validated",
		"request_id", requestID,
		"valid", result.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// handlePostalCode handles POST /validate/postal-code requests.
func (h *Handler) handlePostalCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValueRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	valid := h.service.ValidatePostalCode(ctx, req.Value)
	httputil.WriteJSON(w, http.StatusOK, &CheckResponse{Valid: valid})
}

// handlePhoneNumber handles POST /validate/phone requests.
func (h *Handler) handlePhoneNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValueRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	valid := h.service.ValidatePhoneNumber(ctx, req.Value)
	httputil.WriteJSON(w, http.StatusOK, &CheckResponse{Valid: valid})
}
