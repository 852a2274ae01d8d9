package simulator

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/benx421/payment-gateway/pos/internal/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()

	sim, err := New(&config.SimulatorConfig{ApprovalLimit: "5000.00"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return sim
}

func authorize(t *testing.T, sim http.Handler, req gateway.AuthorizationRequest) (*httptest.ResponseRecorder, gateway.AuthorizationResponse) {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, gateway.AuthorizePath, bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	sim.ServeHTTP(rec, httpReq)

	var resp gateway.AuthorizationResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func validRequest() gateway.AuthorizationRequest {
	return gateway.AuthorizationRequest{
		Amount:         decimal.RequireFromString("120.00"),
		POSCode:        "POS001",
		MerchantCode:   "MER001",
		Type:           "PAG",
		Brand:          "VISA",
		Modality:       "SIM",
		Currency:       "USD",
		Country:        "EC",
		CardNumber:     "4111111111111111",
		CardholderName: "ADA LOVELACE",
		Expiration:     "12/99",
		CorrelationID:  "corr-123",
	}
}

func TestNew_RejectsInvalidLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := New(&config.SimulatorConfig{ApprovalLimit: "lots"}, logger)
	assert.Error(t, err)

	_, err = New(&config.SimulatorConfig{ApprovalLimit: "0"}, logger)
	assert.Error(t, err)
}

func TestAuthorize_Approves(t *testing.T) {
	sim := newTestSimulator(t)

	rec, resp := authorize(t, sim, validRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gateway.StatusApproved, resp.Status)
	assert.True(t, resp.Approved())
	assert.Len(t, resp.ApprovalCode, 6)
	assert.NotEmpty(t, resp.TransactionID)
	assert.Equal(t, "corr-123", resp.CorrelationID)
}

func TestAuthorize_Declines(t *testing.T) {
	tests := []struct {
		mutate     func(r *gateway.AuthorizationRequest)
		name       string
		wantReason string
	}{
		{
			name:       "luhn failure",
			mutate:     func(r *gateway.AuthorizationRequest) { r.CardNumber = "4111111111111112" },
			wantReason: ReasonInvalidCard,
		},
		{
			name:       "expired card",
			mutate:     func(r *gateway.AuthorizationRequest) { r.Expiration = "01/20" },
			wantReason: ReasonExpiredCard,
		},
		{
			name:       "missing expiration",
			mutate:     func(r *gateway.AuthorizationRequest) { r.Expiration = "" },
			wantReason: ReasonExpiredCard,
		},
		{
			name:       "zero amount",
			mutate:     func(r *gateway.AuthorizationRequest) { r.Amount = decimal.Zero },
			wantReason: ReasonInvalidAmount,
		},
		{
			name:       "amount above limit",
			mutate:     func(r *gateway.AuthorizationRequest) { r.Amount = decimal.RequireFromString("5000.01") },
			wantReason: ReasonOverLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSimulator(t)
			req := validRequest()
			tt.mutate(&req)

			rec, resp := authorize(t, sim, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, gateway.StatusRejected, resp.Status)
			assert.Equal(t, tt.wantReason, resp.Message)
			assert.Empty(t, resp.ApprovalCode)
		})
	}
}

func TestAuthorize_AmountAtLimitIsApproved(t *testing.T) {
	sim := newTestSimulator(t)
	req := validRequest()
	req.Amount = decimal.RequireFromString("5000")

	_, resp := authorize(t, sim, req)

	assert.Equal(t, gateway.StatusApproved, resp.Status)
}

func TestAuthorize_CorrelationFromHeader(t *testing.T) {
	sim := newTestSimulator(t)
	req := validRequest()
	req.CorrelationID = ""
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, gateway.AuthorizePath, bytes.NewReader(payload))
	httpReq.Header.Set(gateway.RequestIDHeader, "from-header")
	rec := httptest.NewRecorder()
	sim.ServeHTTP(rec, httpReq)

	var resp gateway.AuthorizationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "from-header", resp.CorrelationID)
}

func TestAuthorize_MalformedBody(t *testing.T) {
	sim := newTestSimulator(t)

	httpReq := httptest.NewRequest(http.MethodPost, gateway.AuthorizePath, strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	sim.ServeHTTP(rec, httpReq)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR")
}

func TestHealth(t *testing.T) {
	sim := newTestSimulator(t)

	rec := httptest.NewRecorder()
	sim.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestSimulator_WorksWithGatewayClient(t *testing.T) {
	server := httptest.NewServer(newTestSimulator(t))
	defer server.Close()

	client := gateway.NewHTTPClient(&config.GatewayConfig{URL: server.URL, Country: "EC", Timeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	req := validRequest()

	resp, err := client.Authorize(t.Context(), req.CorrelationID, &req)

	require.NoError(t, err)
	assert.True(t, resp.Approved())
}
