// Package service implements the POS terminal business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/benx421/payment-gateway/pos/internal/gateway"
	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/benx421/payment-gateway/pos/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Outcome code suffixes appended to the ENV row code
const (
	responseCodeSuffix = "-RESP"
	errorCodeSuffix    = "-ERROR"
)

// Search limits
const (
	DefaultSearchLimit = 100
	MaxSearchLimit     = 500
)

const (
	authorizedDetail     = "transaction authorized"
	communicationPrefix  = "communication error: "
	maxStoredDetailRunes = 255
)

// TransactionService runs payments through the gateway. Every processed payment
// leaves an ENV row and exactly one outcome row that share a correlation id.
type TransactionService struct {
	transactions   repository.TransactionRepository
	configurations repository.ConfigurationRepository
	gateway        gateway.Client
	codes          CodeGenerator
	logger         *slog.Logger
	now            func() time.Time
	country        string
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactions repository.TransactionRepository,
	configurations repository.ConfigurationRepository,
	client gateway.Client,
	codes CodeGenerator,
	gatewayCfg *config.GatewayConfig,
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{
		transactions:   transactions,
		configurations: configurations,
		gateway:        client,
		codes:          codes,
		logger:         logger,
		now:            time.Now,
		country:        gatewayCfg.Country,
	}
}

// Process validates req, records it as sent, asks the gateway for a decision and
// records the outcome. A gateway decline is returned as a REC row, not an error.
func (s *TransactionService) Process(ctx context.Context, req *models.TransactionRequest) (*models.Transaction, error) {
	terminal, err := s.configurations.FindActive(ctx)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("transaction rejected: no terminal configuration")
			return nil, &ServiceError{
				Code:    ErrCodeConfigurationMissing,
				Message: "no terminal configuration available",
				Err:     err,
			}
		}
		s.logger.Error("failed to load terminal configuration", "error", err)
		return nil, internalError("failed to load terminal configuration", err)
	}

	normalized, verr := normalizeRequest(req)
	if verr != nil {
		s.logger.Warn("transaction rejected by validation",
			"terminal_code", terminal.TerminalCode,
			"field", verr.Field,
			"reason", verr.Message,
		)
		return nil, verr
	}

	correlationID := uuid.NewString()
	gwReq, verr := buildGatewayRequest(terminal, normalized, correlationID, s.country)
	if verr != nil {
		s.logger.Warn("transaction rejected: gateway request not buildable",
			"terminal_code", terminal.TerminalCode,
			"field", verr.Field,
			"reason", verr.Message,
		)
		return nil, verr
	}

	code, err := s.codes.NextCode(ctx)
	if err != nil {
		s.logger.Error("failed to generate transaction code", "error", err)
		return nil, internalError("failed to generate transaction code", err)
	}

	sent := &models.Transaction{
		Timestamp:     s.now().UTC(),
		Amount:        *normalized.Amount,
		Code:          code,
		CorrelationID: correlationID,
		Detail:        normalized.Detail,
		Type:          normalized.Type,
		Brand:         normalized.Brand,
		Modality:      normalized.Modality,
		Currency:      normalized.Currency,
		Status:        models.TransactionStatusSent,
		ReceiptStatus: models.ReceiptStatusPending,
	}
	if err := s.transactions.Create(ctx, sent); err != nil {
		s.logger.Error("failed to record sent transaction",
			"transaction_code", code,
			"correlation_id", correlationID,
			"error", err,
		)
		return nil, internalError("failed to record transaction", err)
	}

	s.logger.Info("transaction sent to gateway",
		"transaction_code", code,
		"correlation_id", correlationID,
		"terminal_code", terminal.TerminalCode,
		"modality", normalized.Modality,
		"amount", normalized.Amount.StringFixed(2),
		"currency", normalized.Currency,
	)

	resp, gwErr := s.gateway.Authorize(ctx, correlationID, gwReq)

	// Outcome rows are written even if the caller has gone away.
	persistCtx := context.WithoutCancel(ctx)

	if gwErr != nil {
		return nil, s.recordCommunicationFailure(persistCtx, sent, gwErr)
	}

	outcome := s.outcomeRow(sent, code+responseCodeSuffix)
	if resp.Approved() {
		outcome.Status = models.TransactionStatusAuthorized
		outcome.Detail = resp.Message
		if outcome.Detail == "" {
			outcome.Detail = authorizedDetail
		}
	} else {
		outcome.Status = models.TransactionStatusRejected
		outcome.Detail = resp.Message
	}
	outcome.Detail = truncateRunes(outcome.Detail, maxStoredDetailRunes)
	outcome.GatewayResponse = datatypes.JSONMap{
		"approvalCode":  resp.ApprovalCode,
		"status":        resp.Status,
		"message":       resp.Message,
		"correlationId": resp.CorrelationID,
		"transactionId": resp.TransactionID,
	}

	if err := s.transactions.Create(persistCtx, outcome); err != nil {
		s.logger.Error("failed to record gateway outcome",
			"transaction_code", outcome.Code,
			"correlation_id", correlationID,
			"status", outcome.Status,
			"error", err,
		)
		return nil, internalError("failed to record gateway outcome", err)
	}

	s.logger.Info("transaction processed",
		"transaction_code", outcome.Code,
		"correlation_id", correlationID,
		"status", outcome.Status,
		"gateway_status", resp.Status,
		"gateway_message", resp.Message,
	)

	return outcome, nil
}

func (s *TransactionService) recordCommunicationFailure(ctx context.Context, sent *models.Transaction, gwErr error) error {
	detail := communicationPrefix + gwErr.Error()

	failed := s.outcomeRow(sent, sent.Code+errorCodeSuffix)
	failed.Status = models.TransactionStatusRejected
	failed.Detail = truncateRunes(detail, maxStoredDetailRunes)
	failed.GatewayResponse = datatypes.JSONMap{"error": gwErr.Error()}

	s.logger.Error("gateway communication failed",
		"transaction_code", sent.Code,
		"correlation_id", sent.CorrelationID,
		"error", gwErr,
	)

	cause := gwErr
	if err := s.transactions.Create(ctx, failed); err != nil {
		s.logger.Error("failed to record communication failure",
			"transaction_code", failed.Code,
			"correlation_id", sent.CorrelationID,
			"error", err,
		)
		cause = errors.Join(gwErr, err)
	}

	return &ServiceError{
		Code:    ErrCodeCommunicationFailure,
		Message: detail,
		Err:     cause,
	}
}

func (s *TransactionService) outcomeRow(sent *models.Transaction, code string) *models.Transaction {
	return &models.Transaction{
		Timestamp:     s.now().UTC(),
		Amount:        sent.Amount,
		Code:          code,
		CorrelationID: sent.CorrelationID,
		Type:          sent.Type,
		Brand:         sent.Brand,
		Modality:      sent.Modality,
		Currency:      sent.Currency,
		ReceiptStatus: models.ReceiptStatusPending,
	}
}

// GetTransaction returns a single row by its code
func (s *TransactionService) GetTransaction(ctx context.Context, code string) (*models.Transaction, error) {
	tx, err := s.transactions.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeTransactionNotFound,
				Message: "transaction not found",
				Err:     err,
			}
		}
		return nil, internalError("failed to load transaction", err)
	}
	return tx, nil
}

// SearchTransactions lists rows matching filter, newest first
func (s *TransactionService) SearchTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	switch {
	case filter.From != nil && filter.To != nil && filter.From.After(*filter.To):
		return nil, validationError("from", "from must not be after to")
	case filter.Status != "" && !filter.Status.Valid():
		return nil, validationError("status", fmt.Sprintf("unknown status %q", filter.Status))
	case filter.Type != "" && !filter.Type.Valid():
		return nil, validationError("type", fmt.Sprintf("unknown type %q", filter.Type))
	case filter.Modality != "" && !filter.Modality.Valid():
		return nil, validationError("modality", fmt.Sprintf("unknown modality %q", filter.Modality))
	case filter.Limit < 0:
		return nil, validationError("limit", "limit must not be negative")
	}

	if filter.Limit == 0 {
		filter.Limit = DefaultSearchLimit
	}
	filter.Limit = min(filter.Limit, MaxSearchLimit)

	txs, err := s.transactions.Find(ctx, filter)
	if err != nil {
		s.logger.Error("transaction search failed", "error", err)
		return nil, internalError("failed to search transactions", err)
	}
	return txs, nil
}

// GetTransactionTrail returns every row recorded for one submission, oldest first
func (s *TransactionService) GetTransactionTrail(ctx context.Context, correlationID string) ([]models.Transaction, error) {
	if strings.TrimSpace(correlationID) == "" {
		return nil, validationError("correlationId", "correlation id is required")
	}

	txs, err := s.transactions.FindByCorrelationID(ctx, correlationID)
	if err != nil {
		return nil, internalError("failed to load transaction trail", err)
	}
	if len(txs) == 0 {
		return nil, &ServiceError{
			Code:    ErrCodeTransactionNotFound,
			Message: "no transactions for correlation id",
		}
	}
	return txs, nil
}

// normalizeRequest checks req and returns a copy with defaults applied.
// Checks run in a fixed order and the first failure wins.
func normalizeRequest(req *models.TransactionRequest) (*models.TransactionRequest, *ServiceError) {
	if req == nil {
		return nil, validationError("amount", "amount is required")
	}
	out := *req

	if err := ValidateAmount(out.Amount); err != nil {
		return nil, validationError("amount", err.Error())
	}
	if out.CardNumber == "" {
		return nil, validationError("cardNumber", "card number is required")
	}
	if err := ValidateCardNumber(out.CardNumber); err != nil {
		return nil, validationError("cardNumber", err.Error())
	}
	if strings.TrimSpace(out.CardholderName) == "" {
		return nil, validationError("cardholderName", "cardholder name is required")
	}
	if out.Brand == "" {
		return nil, validationError("brand", "brand is required")
	}
	if !out.Brand.Valid() {
		return nil, validationError("brand", fmt.Sprintf("unsupported brand %q", out.Brand))
	}

	if !out.Modality.Valid() {
		out.Modality = models.ModalitySimple
	}
	switch out.Modality {
	case models.ModalityDeferred:
		if out.Term == nil || *out.Term <= 0 {
			return nil, validationError("term", "deferred payments require a positive term")
		}
	case models.ModalityRecurring:
		if out.FrequencyDays == nil || *out.FrequencyDays <= 0 {
			return nil, validationError("frequency", "recurring payments require a positive frequency")
		}
	}

	if err := validateDetail(out.Detail); err != nil {
		return nil, validationError("detail", err.Error())
	}
	if out.Currency != "" && !out.Currency.Valid() {
		return nil, validationError("currency", fmt.Sprintf("unsupported currency %q", out.Currency))
	}
	if out.CVV != "" {
		if err := ValidateCVV(out.CVV); err != nil {
			return nil, validationError("cvv", err.Error())
		}
	}
	if out.Expiration != "" {
		if _, _, err := ParseExpiration(out.Expiration); err != nil {
			return nil, validationError("expiration", err.Error())
		}
	}

	out.Type = models.TransactionTypePayment
	if out.Currency == "" {
		out.Currency = models.CurrencyUSD
	}

	return &out, nil
}

// buildGatewayRequest maps a normalized request onto the gateway wire format.
// A security code that is not numeric is a validation failure.
func buildGatewayRequest(
	terminal *models.TerminalConfiguration,
	req *models.TransactionRequest,
	correlationID, country string,
) (*gateway.AuthorizationRequest, *ServiceError) {
	out := &gateway.AuthorizationRequest{
		Amount:         *req.Amount,
		POSCode:        terminal.TerminalCode,
		MerchantCode:   terminal.MerchantCode,
		Type:           string(req.Type),
		Brand:          string(req.Brand),
		Modality:       string(req.Modality),
		Currency:       string(req.Currency),
		Country:        country,
		CardNumber:     req.CardNumber,
		CardholderName: req.CardholderName,
		Expiration:     req.Expiration,
		CorrelationID:  correlationID,
		Reference:      req.Detail,
	}

	if req.CVV != "" {
		cvv, err := strconv.Atoi(req.CVV)
		if err != nil {
			return nil, validationError("cvv", "invalid CVV: must contain only digits")
		}
		out.SecurityCode = &cvv
	}

	switch req.Modality {
	case models.ModalityDeferred:
		term := *req.Term
		out.Term = &term
	case models.ModalityRecurring:
		freq := *req.FrequencyDays
		out.Recurring = true
		out.FrequencyDays = &freq
	}

	return out, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
