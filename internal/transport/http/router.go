// Package httptransport assembles the public router. It wires middleware and
// mounts each module's handler; business logic stays in the services.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authmw "medicinna/pkg/platform/middleware/auth"
	request "medicinna/pkg/platform/middleware/request"
	"medicinna/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by module handlers that mount their own routes.
type Registrar interface {
	Register(r chi.Router)
}

// Deps collects everything the router needs from main.
type Deps struct {
	Logger         *slog.Logger
	TokenValidator authmw.TokenValidator

	Auth      Registrar
	Reporting Registrar
	Detector  Registrar

	// Verification is mounted behind optional auth: authenticated scans carry
	// the caller's identity into the audit trail, anonymous ones pass through.
	Verification Registrar
}

// NewRouter builds the chi router with shared middleware and all module routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Middleware)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	deps.Auth.Register(r)
	deps.Reporting.Register(r)
	deps.Detector.Register(r)

	r.Group(func(gr chi.Router) {
		gr.Use(authmw.OptionalAuth(deps.TokenValidator, deps.Logger))
		deps.Verification.Register(gr)
	})

	return r
}
