package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicinna/internal/auth"
	"medicinna/internal/auth/handler"
	"medicinna/internal/jwttoken"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	tokens := jwttoken.NewService("test-signing-key", "medicinna")
	svc, err := auth.NewService(auth.NewInMemoryUserStore(), tokens, time.Hour,
		"medicinna.app", slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func post(t *testing.T, r chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleRegister(t *testing.T) {
	t.Run("valid registration returns 201", func(t *testing.T) {
		r := newRouter(t)
		rec := post(t, r, "/auth/register",
			`{"username":"lakeside","password":"s3cret","hospital_name":"Lakeside Clinic"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "User created successfully")
	})

	t.Run("duplicate registration returns 409", func(t *testing.T) {
		r := newRouter(t)
		body := `{"username":"lakeside","password":"s3cret","hospital_name":"Lakeside Clinic"}`
		require.Equal(t, http.StatusCreated, post(t, r, "/auth/register", body).Code)

		rec := post(t, r, "/auth/register", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "user already exists")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		r := newRouter(t)
		for _, body := range []string{
			`{"password":"x","hospital_name":"Y"}`,
			`{"username":"x","hospital_name":"Y"}`,
			`{"username":"x","password":"y"}`,
		} {
			rec := post(t, r, "/auth/register", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		}
	})

	t.Run("unknown role returns 400", func(t *testing.T) {
		r := newRouter(t)
		rec := post(t, r, "/auth/register",
			`{"username":"x","password":"y","hospital_name":"Z","role":"root"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	registerBody := `{"username":"lakeside","password":"s3cret","hospital_name":"Lakeside Clinic"}`

	t.Run("valid credentials return token, role and username", func(t *testing.T) {
		r := newRouter(t)
		require.Equal(t, http.StatusCreated, post(t, r, "/auth/register", registerBody).Code)

		rec := post(t, r, "/auth/login", `{"username":"lakeside","password":"s3cret"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])
		assert.Equal(t, "hospital", resp["role"])
		assert.Equal(t, "lakeside@medicinna.app", resp["username"])
	})

	t.Run("wrong password returns 401 with a generic message", func(t *testing.T) {
		r := newRouter(t)
		require.Equal(t, http.StatusCreated, post(t, r, "/auth/register", registerBody).Code)

		rec := post(t, r, "/auth/login", `{"username":"lakeside","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("unknown user returns 401", func(t *testing.T) {
		r := newRouter(t)
		rec := post(t, r, "/auth/login", `{"username":"nobody","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		r := newRouter(t)
		rec := post(t, r, "/auth/login", `{"username":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
