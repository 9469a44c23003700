// Package request assigns a correlation ID to every incoming request so log
// lines across middleware, handlers, and services can be stitched together.
package request

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"medicinna/pkg/requestcontext"
)

// HeaderRequestID is echoed back so clients and proxies can correlate.
const HeaderRequestID = "X-Request-Id"

// Middleware reuses an inbound X-Request-Id when present, otherwise mints one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the correlation ID from context.
func GetRequestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}
