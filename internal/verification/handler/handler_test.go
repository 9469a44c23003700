package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicinna/internal/registry"
	"medicinna/internal/verification"
	"medicinna/internal/verification/handler"
	dErrors "medicinna/pkg/domain-errors"
)

type stubService struct {
	result *verification.Result
	err    error
}

func (s *stubService) Verify(_ context.Context, _ string) (*verification.Result, error) {
	return s.result, s.err
}

func newRouter(svc handler.Service) chi.Router {
	r := chi.NewRouter()
	h := handler.New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.Register(r)
	return r
}

func postVerify(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleVerify(t *testing.T) {
	t.Run("valid verdict includes batch data", func(t *testing.T) {
		svc := &stubService{result: &verification.Result{
			Status:  verification.VerdictValid,
			Details: "Batch is authentic and safe.",
			Batch: &registry.Batch{
				BatchCode:    "MED-2025-001",
				MedicineName: "Paracetamol 500mg",
				Manufacturer: "PharmaCorp",
				ExpiryDate:   registry.Date(2026, time.December, 31),
				Purity:       99.9,
			},
		}}

		rec := postVerify(t, newRouter(svc), `{"batch_code":"MED-2025-001"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.VerifyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "VALID", resp.Status)
		assert.Equal(t, "Batch is authentic and safe.", resp.Details)
		require.NotNil(t, resp.Data)
		assert.Equal(t, "MED-2025-001", resp.Data.BatchCode)
		assert.Equal(t, "2026-12-31", resp.Data.ExpiryDate)
	})

	t.Run("fake verdict serializes data as null", func(t *testing.T) {
		svc := &stubService{result: &verification.Result{
			Status:  verification.VerdictFake,
			Details: "Batch not found in manufacturer database.",
		}}

		rec := postVerify(t, newRouter(svc), `{"batch_code":"NOT-A-REAL-CODE"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":null`)
	})

	t.Run("malformed body returns bad request", func(t *testing.T) {
		svc := &stubService{result: &verification.Result{Status: verification.VerdictFake}}

		rec := postVerify(t, newRouter(svc), `{"batch_code":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_request")
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		svc := &stubService{result: &verification.Result{Status: verification.VerdictFake}}

		rec := postVerify(t, newRouter(svc), `{"batch_code":"X","bogus":true}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("engine failure maps to internal error", func(t *testing.T) {
		svc := &stubService{err: dErrors.New(dErrors.CodeInternal, "scan audit write failed")}

		rec := postVerify(t, newRouter(svc), `{"batch_code":"MED-2025-001"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "internal"))
	})
}
