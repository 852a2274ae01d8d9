package handlers

import (
	"context"

	"github.com/benx421/payment-gateway/pos/internal/api"
	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/benx421/payment-gateway/pos/internal/service"
)

// CreateTransaction handles POST /api/v1/transactions
func (h *Handler) CreateTransaction(
	ctx context.Context,
	request api.CreateTransactionRequestObject,
) (api.CreateTransactionResponseObject, error) {
	if request.Body == nil {
		return api.CreateTransaction400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(missingBody())}, nil
	}

	txn, err := h.transactions.Process(ctx, toTransactionRequest(request.Body))
	if err != nil {
		return h.handleCreateTransactionError(err)
	}

	if txn.Status == models.TransactionStatusAuthorized {
		return api.CreateTransaction200JSONResponse(toAPITransaction(txn)), nil
	}
	return api.CreateTransaction402JSONResponse(toAPITransaction(txn)), nil
}

// handleCreateTransactionError maps service errors to appropriate HTTP responses
func (h *Handler) handleCreateTransactionError(err error) (api.CreateTransactionResponseObject, error) {
	svcErr := extractServiceError(err)
	body := errorBody(svcErr)

	switch svcErr.Code {
	case service.ErrCodeValidationFailed:
		return api.CreateTransaction400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case service.ErrCodeConfigurationMissing:
		return api.CreateTransaction409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
	case service.ErrCodeCommunicationFailure:
		return api.CreateTransaction502JSONResponse(body), nil
	default:
		h.logger.Error("transaction processing failed", "error", err)
		return api.CreateTransaction500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}
}

// ListTransactions handles GET /api/v1/transactions
func (h *Handler) ListTransactions(
	ctx context.Context,
	request api.ListTransactionsRequestObject,
) (api.ListTransactionsResponseObject, error) {
	txns, err := h.transactions.SearchTransactions(ctx, toTransactionFilter(request.Params))
	if err != nil {
		svcErr := extractServiceError(err)
		if svcErr.Code == service.ErrCodeValidationFailed {
			return api.ListTransactions400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(errorBody(svcErr))}, nil
		}
		h.logger.Error("transaction search failed", "error", err)
		return api.ListTransactions500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalErrorBody())}, nil
	}

	return api.ListTransactions200JSONResponse(toAPITransactionList(txns)), nil
}

// GetTransaction handles GET /api/v1/transactions/{transactionCode}
func (h *Handler) GetTransaction(
	ctx context.Context,
	request api.GetTransactionRequestObject,
) (api.GetTransactionResponseObject, error) {
	txn, err := h.transactions.GetTransaction(ctx, request.TransactionCode)
	if err != nil {
		svcErr := extractServiceError(err)
		if svcErr.Code == service.ErrCodeTransactionNotFound {
			return api.GetTransaction404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(errorBody(svcErr))}, nil
		}
		h.logger.Error("failed to load transaction", "transaction_code", request.TransactionCode, "error", err)
		return api.GetTransaction500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalErrorBody())}, nil
	}

	return api.GetTransaction200JSONResponse(toAPITransaction(txn)), nil
}

// GetTransactionTrail handles GET /api/v1/correlations/{correlationId}/transactions
func (h *Handler) GetTransactionTrail(
	ctx context.Context,
	request api.GetTransactionTrailRequestObject,
) (api.GetTransactionTrailResponseObject, error) {
	txns, err := h.transactions.GetTransactionTrail(ctx, request.CorrelationId)
	if err != nil {
		svcErr := extractServiceError(err)
		switch svcErr.Code {
		case service.ErrCodeValidationFailed:
			return api.GetTransactionTrail400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(errorBody(svcErr))}, nil
		case service.ErrCodeTransactionNotFound:
			return api.GetTransactionTrail404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(errorBody(svcErr))}, nil
		default:
			h.logger.Error("failed to load transaction trail", "correlation_id", request.CorrelationId, "error", err)
			return api.GetTransactionTrail500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalErrorBody())}, nil
		}
	}

	return api.GetTransactionTrail200JSONResponse(toAPITransactionList(txns)), nil
}
