package detector

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "medicinna/pkg/domain-errors"
	"medicinna/pkg/platform/httputil"
	"medicinna/pkg/requestcontext"
)

// maxUploadBytes caps scan uploads; phone camera frames fit comfortably.
const maxUploadBytes = 10 << 20

// Detector defines the interface for image detection calls.
type Detector interface {
	Detect(ctx context.Context, filename string, image []byte) (json.RawMessage, error)
}

// Handler accepts image uploads and relays the detection verdict.
type Handler struct {
	detector Detector
	logger   *slog.Logger
}

// NewHandler constructs a detector handler with its dependencies.
func NewHandler(detector Detector, logger *slog.Logger) *Handler {
	return &Handler{detector: detector, logger: logger}
}

// Register mounts detection endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/scan/ai", h.HandleScan)
}

// HandleScan handles POST /scan/ai multipart uploads.
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "image file is required"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "could not read image file"))
		return
	}

	verdict, err := h.detector.Detect(ctx, header.Filename, image)
	if err != nil {
		h.logger.ErrorContext(ctx, "image detection failed",
			"request_id", requestcontext.RequestID(ctx),
			"filename", header.Filename,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(verdict)
}
