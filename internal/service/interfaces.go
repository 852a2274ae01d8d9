package service

import (
	"context"

	"github.com/benx421/payment-gateway/pos/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// TransactionProcessor runs payments through the gateway and exposes the audit trail
type TransactionProcessor interface {
	Process(ctx context.Context, req *models.TransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, code string) (*models.Transaction, error)
	SearchTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	GetTransactionTrail(ctx context.Context, correlationID string) ([]models.Transaction, error)
}

// ConfigurationManager manages the terminal identity
type ConfigurationManager interface {
	GetActiveConfiguration(ctx context.Context) (*models.TerminalConfiguration, error)
	GetConfiguration(ctx context.Context, model, terminalCode string) (*models.TerminalConfiguration, error)
	CreateConfiguration(ctx context.Context, cfg *models.TerminalConfiguration) (*models.TerminalConfiguration, error)
	UpdateConfiguration(ctx context.Context, cfg *models.TerminalConfiguration) (*models.TerminalConfiguration, error)
}

// Ensure concrete types implement interfaces
var (
	_ TransactionProcessor = (*TransactionService)(nil)
	_ ConfigurationManager = (*ConfigurationService)(nil)
	_ CodeGenerator        = (*RandomCodeGenerator)(nil)
	_ CodeGenerator        = (*SnowflakeCodeGenerator)(nil)
)
