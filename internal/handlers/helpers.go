package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benx421/payment-gateway/pos/internal/api"
	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/benx421/payment-gateway/pos/internal/service"
)

func toAPITransaction(tx *models.Transaction) api.Transaction {
	return api.Transaction{
		Timestamp:       tx.Timestamp,
		Amount:          json.Number(tx.Amount.StringFixed(2)),
		TransactionCode: tx.Code,
		CorrelationId:   tx.CorrelationID,
		Type:            string(tx.Type),
		Brand:           string(tx.Brand),
		Modality:        string(tx.Modality),
		Detail:          tx.Detail,
		Currency:        string(tx.Currency),
		Status:          string(tx.Status),
		ReceiptStatus:   string(tx.ReceiptStatus),
	}
}

func toAPITransactionList(txs []models.Transaction) api.TransactionList {
	out := api.TransactionList{
		Transactions: make([]api.Transaction, 0, len(txs)),
		Count:        len(txs),
	}
	for i := range txs {
		out.Transactions = append(out.Transactions, toAPITransaction(&txs[i]))
	}
	return out
}

func toAPIConfiguration(cfg *models.TerminalConfiguration) api.Configuration {
	return api.Configuration{
		ActivationTimestamp: cfg.ActivatedAt,
		Model:               cfg.Model,
		TerminalCode:        cfg.TerminalCode,
		MacAddress:          cfg.MACAddress,
		MerchantCode:        cfg.MerchantCode,
	}
}

func toTransactionRequest(body *api.TransactionRequest) *models.TransactionRequest {
	return &models.TransactionRequest{
		Amount:         body.Amount,
		Term:           body.Term,
		FrequencyDays:  body.FrequencyDays,
		Type:           models.TransactionType(body.Type),
		Brand:          models.Brand(body.Brand),
		Modality:       models.Modality(body.Modality),
		Currency:       models.Currency(body.Currency),
		Detail:         body.Detail,
		CardNumber:     body.CardNumber,
		CardholderName: body.CardholderName,
		CVV:            body.Cvv,
		Expiration:     body.Expiration,
	}
}

func toTransactionFilter(params api.ListTransactionsParams) models.TransactionFilter {
	filter := models.TransactionFilter{
		From: params.From,
		To:   params.To,
	}
	if params.Status != nil {
		filter.Status = models.TransactionStatus(*params.Status)
	}
	if params.Type != nil {
		filter.Type = models.TransactionType(*params.Type)
	}
	if params.Modality != nil {
		filter.Modality = models.Modality(*params.Modality)
	}
	if params.CorrelationId != nil {
		filter.CorrelationID = *params.CorrelationId
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	return filter
}

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeValidationFailed:
		return api.ErrorCodeValidationFailed
	case service.ErrCodeConfigurationMissing:
		return api.ErrorCodeConfigurationMissing
	case service.ErrCodeCommunicationFailure:
		return api.ErrorCodeCommunicationFailure
	case service.ErrCodeConfigurationExists:
		return api.ErrorCodeConfigurationExists
	case service.ErrCodeConfigurationNotFound:
		return api.ErrorCodeConfigurationNotFound
	case service.ErrCodeTransactionNotFound:
		return api.ErrorCodeTransactionNotFound
	default:
		return api.ErrorCodeInternalError
	}
}

// errorBody renders a service error. Internal failures never leak their cause.
func errorBody(svcErr *service.ServiceError) api.Error {
	code := mapServiceErrorToCode(svcErr.Code)
	if code == api.ErrorCodeInternalError {
		return internalErrorBody()
	}

	body := api.Error{
		Error:   code,
		Message: svcErr.Message,
	}
	if svcErr.Field != "" {
		field := svcErr.Field
		body.Field = &field
	}
	return body
}

func internalErrorBody() api.Error {
	return api.Error{
		Error:   api.ErrorCodeInternalError,
		Message: "an unexpected error occurred",
	}
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, internalErrorBody())
}

// writeRequestError answers requests whose parameters or body could not be bound.
func writeRequestError(w http.ResponseWriter, _ *http.Request, err error) {
	body := api.Error{
		Error:   api.ErrorCodeValidationFailed,
		Message: err.Error(),
	}

	var paramErr *api.InvalidParamFormatError
	var tooMany *api.TooManyValuesForParamError
	switch {
	case errors.As(err, &paramErr):
		body.Field = &paramErr.ParamName
	case errors.As(err, &tooMany):
		body.Field = &tooMany.ParamName
	}

	writeJSON(w, http.StatusBadRequest, body)
}

func writeJSON(w http.ResponseWriter, status int, body api.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // Nothing useful to do if write fails
}

func missingBody() api.Error {
	return api.Error{
		Error:   api.ErrorCodeValidationFailed,
		Message: "request body is required",
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return &service.ServiceError{
		Code:    service.ErrCodeInternalError,
		Message: "unexpected error",
		Err:     err,
	}
}
