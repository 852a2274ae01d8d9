// Package handlers implements HTTP handlers for the POS terminal API.
package handlers

import (
	"log/slog"

	"github.com/benx421/payment-gateway/pos/internal/api"
	"github.com/benx421/payment-gateway/pos/internal/service"
)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	transactions   service.TransactionProcessor
	configurations service.ConfigurationManager
	healthChecker  service.HealthChecker
	logger         *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	transactions service.TransactionProcessor,
	configurations service.ConfigurationManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		transactions:   transactions,
		configurations: configurations,
		healthChecker:  healthChecker,
		logger:         logger,
	}
}

var _ api.StrictServerInterface = (*Handler)(nil)
