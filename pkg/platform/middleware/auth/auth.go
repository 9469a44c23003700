package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	request "medicinna/pkg/platform/middleware/request"
	"medicinna/pkg/requestcontext"
)

// TokenValidator defines the interface for validating bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims represents the claims we expect from the token validator.
type TokenClaims struct {
	Login string
	Role  string
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","message":"%s"}`, errCode, errDesc))
}

func bearerToken(r *http.Request) (string, bool) {
	const bearerPrefix = "Bearer "
	return strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token identity in the request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.WarnContext(r.Context(), "unauthorized access - missing token",
					"request_id", request.GetRequestID(r.Context()),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", request.GetRequestID(r.Context()),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ctx := requestcontext.WithLogin(r.Context(), claims.Login)
			ctx = requestcontext.WithRole(ctx, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves a bearer token into a context identity when one is
// present and valid, and lets the request through anonymously otherwise.
// Scan endpoints use this: IoT devices call without credentials, but an
// authenticated caller's identity should reach the audit trail.
func OptionalAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				// An invalid token on an open endpoint degrades to anonymous
				// rather than blocking the scan.
				logger.WarnContext(r.Context(), "ignoring invalid token on open endpoint",
					"error", err,
					"request_id", request.GetRequestID(r.Context()),
				)
				next.ServeHTTP(w, r)
				return
			}

			ctx := requestcontext.WithLogin(r.Context(), claims.Login)
			ctx = requestcontext.WithRole(ctx, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
