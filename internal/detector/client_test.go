package detector_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicinna/internal/detector"
	"medicinna/internal/platform/config"
	dErrors "medicinna/pkg/domain-errors"
)

func newClient(baseURL string) *detector.Client {
	return detector.NewClient(config.DetectorConfig{
		BaseURL: baseURL,
		ModelID: "medicine-detect/3",
		APIKey:  "test-api-key",
		Timeout: 5 * time.Second,
	})
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	t.Run("relays the detection verdict verbatim", func(t *testing.T) {
		verdict := `{"predictions":[{"class":"barcode","confidence":0.91}]}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/medicine-detect/3", r.URL.Path)
			assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))
			assert.Equal(t, "40", r.URL.Query().Get("confidence"))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "scan.jpg", header.Filename)
			payload, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, []byte("fake-image-bytes"), payload)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(verdict))
		}))
		defer srv.Close()

		raw, err := newClient(srv.URL).Detect(ctx, "scan.jpg", []byte("fake-image-bytes"))
		require.NoError(t, err)
		assert.JSONEq(t, verdict, string(raw))
	})

	t.Run("non-2xx response is an internal error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model not found", http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Detect(ctx, "scan.jpg", []byte("x"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("unreachable service is an internal error", func(t *testing.T) {
		_, err := newClient("http://127.0.0.1:1").Detect(ctx, "scan.jpg", []byte("x"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func TestHandleScan(t *testing.T) {
	newRouter := func(upstream http.HandlerFunc) (chi.Router, func()) {
		srv := httptest.NewServer(upstream)
		r := chi.NewRouter()
		h := detector.NewHandler(newClient(srv.URL), slog.New(slog.NewTextHandler(io.Discard, nil)))
		h.Register(r)
		return r, srv.Close
	}

	upload := func(t *testing.T, r chi.Router, withFile bool) *httptest.ResponseRecorder {
		t.Helper()
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		if withFile {
			part, err := writer.CreateFormFile("file", "scan.jpg")
			require.NoError(t, err)
			_, err = part.Write([]byte("fake-image-bytes"))
			require.NoError(t, err)
		}
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/scan/ai", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("relays the upstream verdict", func(t *testing.T) {
		r, cleanup := newRouter(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"predictions":[]}`))
		})
		defer cleanup()

		rec := upload(t, r, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"predictions":[]}`, rec.Body.String())
	})

	t.Run("missing file part returns 400", func(t *testing.T) {
		r, cleanup := newRouter(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})
		defer cleanup()

		rec := upload(t, r, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upstream failure returns 500", func(t *testing.T) {
		r, cleanup := newRouter(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		})
		defer cleanup()

		rec := upload(t, r, true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
