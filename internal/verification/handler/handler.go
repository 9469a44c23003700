package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medicinna/internal/verification"
	"medicinna/pkg/platform/httputil"
	"medicinna/pkg/requestcontext"
)

// Service defines the interface for verification operations.
type Service interface {
	Verify(ctx context.Context, batchCode string) (*verification.Result, error)
}

// Handler wires the verification endpoint to the engine.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a verification handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts verification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/verify", h.HandleVerify)
}

// HandleVerify handles POST /verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[VerifyRequest](w, r)
	if !ok {
		return
	}

	result, err := h.service.Verify(ctx, req.BatchCode)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch verification failed",
			"request_id", requestcontext.RequestID(ctx),
			"batch_code", req.BatchCode,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
