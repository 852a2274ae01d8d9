package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benx421/payment-gateway/pos/internal/api"
	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
	})
}

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	var seen string
	handler := RequestLogger(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	handler := RequestLogger(testLogger())(testHandler(http.StatusOK, "ok"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestCORS(t *testing.T) {
	cfg := &config.AppConfig{CORSAllowedOrigins: []string{"http://localhost:4200"}}
	handler := CORS(cfg)(testHandler(http.StatusOK, "ok"))

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/transactions", nil)
		req.Header.Set("Origin", "http://localhost:4200")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader)
	})

	t.Run("preflight from unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/transactions", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("simple request from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
		req.Header.Set("Origin", "http://localhost:4200")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request without origin", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func newValidator(t *testing.T, next http.Handler) http.Handler {
	t.Helper()
	doc, err := api.GetSwagger()
	require.NoError(t, err)
	mw, err := OpenAPIValidator(doc, testLogger())
	require.NoError(t, err)
	return mw(next)
}

func TestOpenAPIValidator(t *testing.T) {
	t.Run("valid transaction request passes with body intact", func(t *testing.T) {
		var body map[string]any
		handler := newValidator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions",
			strings.NewReader(`{"amount":125.50,"brand":"VISA","cardNumber":"4532015112830366"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "VISA", body["brand"])
	})

	t.Run("wrong body type is rejected", func(t *testing.T) {
		handler := newValidator(t, testHandler(http.StatusOK, "ok"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions",
			strings.NewReader(`{"amount":"lots","term":"six"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var errBody api.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
		assert.Equal(t, api.ErrorCodeValidationFailed, errBody.Error)
	})

	t.Run("invalid query parameter is rejected", func(t *testing.T) {
		handler := newValidator(t, testHandler(http.StatusOK, "ok"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transactions?limit=-3", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var errBody api.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
		require.NotNil(t, errBody.Field)
		assert.Equal(t, "limit", *errBody.Field)
	})

	t.Run("undocumented path passes through", func(t *testing.T) {
		handler := newValidator(t, testHandler(http.StatusTeapot, ""))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestFailureInjection(t *testing.T) {
	t.Run("always failing", func(t *testing.T) {
		cfg := &config.SimulatorConfig{FailureRate: 1}
		handler := FailureInjection(cfg, testLogger())(testHandler(http.StatusOK, "ok"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/transactions", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("never failing", func(t *testing.T) {
		cfg := &config.SimulatorConfig{FailureRate: 0}
		handler := FailureInjection(cfg, testLogger())(testHandler(http.StatusOK, "ok"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/transactions", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health is never disturbed", func(t *testing.T) {
		cfg := &config.SimulatorConfig{FailureRate: 1}
		handler := FailureInjection(cfg, testLogger())(testHandler(http.StatusOK, "ok"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("latency stops when the request is cancelled", func(t *testing.T) {
		cfg := &config.SimulatorConfig{MinLatencyMS: 5000, MaxLatencyMS: 5000}
		handler := FailureInjection(cfg, testLogger())(testHandler(http.StatusOK, "ok"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/transactions", nil).WithContext(ctx))

		assert.Less(t, time.Since(start), 2*time.Second)
	})
}
