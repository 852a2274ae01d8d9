// Package simulator is a local stand-in for the external payment gateway.
package simulator

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/benx421/payment-gateway/pos/internal/gateway"
	"github.com/benx421/payment-gateway/pos/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxRequestBytes = 64 << 10

// Decline reasons
const (
	ReasonInvalidCard   = "invalid card number"
	ReasonExpiredCard   = "card expired"
	ReasonInvalidAmount = "invalid amount"
	ReasonOverLimit     = "amount exceeds approval limit"
	approvedMessage     = "approved"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Simulator answers authorization requests the way the real gateway would.
type Simulator struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	approvalLimit decimal.Decimal
}

// New builds a simulator from cfg. The approval limit must be a positive decimal.
func New(cfg *config.SimulatorConfig, logger *slog.Logger) (*Simulator, error) {
	limit, err := decimal.NewFromString(cfg.ApprovalLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid approval limit %q: %w", cfg.ApprovalLimit, err)
	}
	if !limit.IsPositive() {
		return nil, fmt.Errorf("approval limit must be positive, got %s", limit)
	}

	s := &Simulator{
		mux:           http.NewServeMux(),
		logger:        logger,
		approvalLimit: limit,
	}
	s.mux.HandleFunc("POST "+gateway.AuthorizePath, s.handleAuthorize)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	return s, nil
}

func (s *Simulator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Simulator) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	var req gateway.AuthorizationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "ERR", Message: "malformed request body"})
		return
	}

	correlationID := req.CorrelationID
	if correlationID == "" {
		correlationID = r.Header.Get(gateway.RequestIDHeader)
	}

	resp := gateway.AuthorizationResponse{
		CorrelationID: correlationID,
		TransactionID: uuid.NewString(),
	}

	if reason := s.decline(&req); reason != "" {
		resp.Status = gateway.StatusRejected
		resp.Message = reason
		s.logger.Info("authorization rejected",
			"correlation_id", correlationID,
			"pos_code", req.POSCode,
			"reason", reason,
		)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	code, err := approvalCode()
	if err != nil {
		s.logger.Error("failed to generate approval code", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Status: "ERR", Message: "approval code unavailable"})
		return
	}

	resp.Status = gateway.StatusApproved
	resp.Message = approvedMessage
	resp.ApprovalCode = code

	s.logger.Info("authorization approved",
		"correlation_id", correlationID,
		"pos_code", req.POSCode,
		"amount", req.Amount.String(),
		"approval_code", code,
	)
	writeJSON(w, http.StatusOK, resp)
}

// decline returns the rejection reason for req, or "" when it is approvable.
func (s *Simulator) decline(req *gateway.AuthorizationRequest) string {
	if err := service.ValidateLuhn(req.CardNumber); err != nil {
		return ReasonInvalidCard
	}

	month, year, err := service.ParseExpiration(req.Expiration)
	if err != nil {
		return ReasonExpiredCard
	}
	if err := service.ValidateExpiry(month, year); err != nil {
		return ReasonExpiredCard
	}

	if !req.Amount.IsPositive() {
		return ReasonInvalidAmount
	}
	if req.Amount.GreaterThan(s.approvalLimit) {
		return ReasonOverLimit
	}

	return ""
}

func (s *Simulator) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func approvalCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // client disconnects are not actionable here
	json.NewEncoder(w).Encode(body)
}
