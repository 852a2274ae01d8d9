// Package gateway talks to the external payment gateway that authorizes card payments.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/shopspring/decimal"
)

// AuthorizePath is the gateway endpoint receiving authorization requests.
const AuthorizePath = "/v1/transactions"

// Gateway reply statuses
const (
	StatusApproved = "APR"
	StatusRejected = "REJ"
)

// RequestIDHeader carries the correlation id of the submission.
const RequestIDHeader = "X-Request-ID"

// AuthorizationRequest is the payload sent to the gateway
type AuthorizationRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	SecurityCode   *int            `json:"securityCode,omitempty"`
	Term           *int            `json:"term,omitempty"`
	FrequencyDays  *int            `json:"frequencyDays"`
	POSCode        string          `json:"posCode"`
	MerchantCode   string          `json:"merchantCode"`
	Type           string          `json:"type"`
	Brand          string          `json:"brand"`
	Modality       string          `json:"modality"`
	Currency       string          `json:"currency"`
	Country        string          `json:"country"`
	CardNumber     string          `json:"cardNumber"`
	CardholderName string          `json:"cardholderName"`
	Expiration     string          `json:"expiration,omitempty"`
	CorrelationID  string          `json:"correlationId"`
	Reference      string          `json:"reference,omitempty"`
	Recurring      bool            `json:"recurring"`
}

// AuthorizationResponse is the gateway decision
type AuthorizationResponse struct {
	ApprovalCode  string `json:"approvalCode"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	TransactionID string `json:"transactionId"`
}

// Approved reports whether the gateway authorized the payment.
func (r *AuthorizationResponse) Approved() bool {
	return r.Status == StatusApproved
}

// Client sends authorization requests to the gateway.
type Client interface {
	Authorize(ctx context.Context, correlationID string, req *AuthorizationRequest) (*AuthorizationResponse, error)
}

// CommunicationError means no usable reply was obtained from the gateway.
type CommunicationError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *CommunicationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// HTTPClient is the JSON over HTTP implementation of Client
type HTTPClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string
}

// NewHTTPClient creates a client for the gateway configured in cfg
func NewHTTPClient(cfg *config.GatewayConfig, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		},
		logger:   logger,
		endpoint: strings.TrimRight(cfg.URL, "/") + AuthorizePath,
	}
}

// Authorize performs a single POST to the gateway. Any failure to obtain a
// decodable 2xx reply is returned as *CommunicationError.
func (c *HTTPClient) Authorize(ctx context.Context, correlationID string, req *AuthorizationRequest) (*AuthorizationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &CommunicationError{Message: "failed to encode gateway request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &CommunicationError{Message: "failed to build gateway request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, correlationID)

	c.logger.Debug("sending authorization request",
		"correlation_id", correlationID,
		"pos_code", req.POSCode,
		"modality", req.Modality,
		"amount", req.Amount.String(),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &CommunicationError{Message: "gateway request failed", Err: err}
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck // body already consumed
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &CommunicationError{Message: "failed to read gateway response", Err: err, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &CommunicationError{
			Message:    fmt.Sprintf("gateway returned status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	var out AuthorizationResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, &CommunicationError{Message: "failed to decode gateway response", Err: err, StatusCode: resp.StatusCode}
	}

	c.logger.Debug("gateway replied",
		"correlation_id", correlationID,
		"status", out.Status,
		"approval_code", out.ApprovalCode,
	)

	return &out, nil
}

var _ Client = (*HTTPClient)(nil)
