package handlers

import (
	"context"

	"github.com/benx421/payment-gateway/pos/internal/api"
	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/benx421/payment-gateway/pos/internal/service"
)

// GetActiveConfiguration handles GET /api/v1/configuration
func (h *Handler) GetActiveConfiguration(
	ctx context.Context,
	request api.GetActiveConfigurationRequestObject,
) (api.GetActiveConfigurationResponseObject, error) {
	cfg, err := h.configurations.GetActiveConfiguration(ctx)
	if err != nil {
		svcErr := extractServiceError(err)
		if svcErr.Code == service.ErrCodeConfigurationNotFound {
			return api.GetActiveConfiguration404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(errorBody(svcErr))}, nil
		}
		h.logger.Error("failed to load active configuration", "error", err)
		return api.GetActiveConfiguration500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalErrorBody())}, nil
	}

	return api.GetActiveConfiguration200JSONResponse(toAPIConfiguration(cfg)), nil
}

// CreateConfiguration handles POST /api/v1/configuration
func (h *Handler) CreateConfiguration(
	ctx context.Context,
	request api.CreateConfigurationRequestObject,
) (api.CreateConfigurationResponseObject, error) {
	if request.Body == nil {
		return api.CreateConfiguration400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(missingBody())}, nil
	}

	cfg, err := h.configurations.CreateConfiguration(ctx, &models.TerminalConfiguration{
		Model:        request.Body.Model,
		TerminalCode: request.Body.TerminalCode,
		MACAddress:   request.Body.MacAddress,
		MerchantCode: request.Body.MerchantCode,
	})
	if err != nil {
		svcErr := extractServiceError(err)
		body := errorBody(svcErr)
		switch svcErr.Code {
		case service.ErrCodeValidationFailed:
			return api.CreateConfiguration400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case service.ErrCodeConfigurationExists:
			return api.CreateConfiguration409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
		default:
			h.logger.Error("failed to create configuration", "error", err)
			return api.CreateConfiguration500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
		}
	}

	return api.CreateConfiguration201JSONResponse(toAPIConfiguration(cfg)), nil
}

// UpdateConfiguration handles PUT /api/v1/configuration/{model}/{terminalCode}
func (h *Handler) UpdateConfiguration(
	ctx context.Context,
	request api.UpdateConfigurationRequestObject,
) (api.UpdateConfigurationResponseObject, error) {
	if request.Body == nil {
		return api.UpdateConfiguration400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(missingBody())}, nil
	}

	cfg, err := h.configurations.UpdateConfiguration(ctx, &models.TerminalConfiguration{
		Model:        request.Model,
		TerminalCode: request.TerminalCode,
		MACAddress:   request.Body.MacAddress,
		MerchantCode: request.Body.MerchantCode,
	})
	if err != nil {
		svcErr := extractServiceError(err)
		body := errorBody(svcErr)
		switch svcErr.Code {
		case service.ErrCodeValidationFailed:
			return api.UpdateConfiguration400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case service.ErrCodeConfigurationNotFound:
			return api.UpdateConfiguration404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		case service.ErrCodeConfigurationExists:
			return api.UpdateConfiguration409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
		default:
			h.logger.Error("failed to update configuration", "error", err)
			return api.UpdateConfiguration500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
		}
	}

	return api.UpdateConfiguration200JSONResponse(toAPIConfiguration(cfg)), nil
}
