package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medicinna/internal/scanlog"
	"medicinna/pkg/platform/httputil"
	"medicinna/pkg/requestcontext"
)

// Service defines the interface for reporting queries.
type Service interface {
	Stats(ctx context.Context) (scanlog.Summary, error)
	History(ctx context.Context) ([]scanlog.Entry, error)
}

// Handler wires reporting endpoints to the reporting service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a reporting handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts reporting endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/stats", h.HandleStats)
	r.Get("/history", h.HandleHistory)
}

// HandleStats handles GET /stats requests.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "stats query failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, summary)
}

// HandleHistory handles GET /history requests.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.service.History(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "history query failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	// Serialize an empty history as [] rather than null.
	if entries == nil {
		entries = []scanlog.Entry{}
	}
	httputil.WriteJSON(w, http.StatusOK, entries)
}
