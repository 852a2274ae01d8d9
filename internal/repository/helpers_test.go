package repository

import (
	"context"
	"io"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/benx421/payment-gateway/pos/internal/db"
	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/shopspring/decimal"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, &cfg.Database, &cfg.Logger, logger)
	if err != nil {
		t.Skipf("postgres not reachable, skipping repository test: %v", err)
	}

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	tables := []string{"pos_transactions", "pos_configurations"}
	for _, table := range tables {
		if err := database.Exec("TRUNCATE TABLE " + table).Error; err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

func newTransaction(code, correlationID string, status models.TransactionStatus, at time.Time) *models.Transaction {
	return &models.Transaction{
		Code:          code,
		CorrelationID: correlationID,
		Type:          models.TransactionTypePayment,
		Brand:         models.BrandVisa,
		Modality:      models.ModalitySimple,
		Amount:        decimal.RequireFromString("125.50"),
		Currency:      models.CurrencyUSD,
		Status:        status,
		ReceiptStatus: models.ReceiptStatusPending,
		Timestamp:     at,
	}
}
