package repository

import (
	"context"
	"fmt"

	"github.com/benx421/payment-gateway/pos/internal/db"
	"github.com/benx421/payment-gateway/pos/internal/models"
	"gorm.io/gorm"
)

// TransactionRepository defines the interface for the append-only transaction store
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByCode(ctx context.Context, code string) (*models.Transaction, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	FindByCorrelationID(ctx context.Context, correlationID string) ([]models.Transaction, error)
	Find(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(database *db.DB) TransactionRepository {
	return &transactionRepository{db: database.DB}
}

// Create inserts a transaction row. Rows are never updated afterwards.
func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s: %w", tx.Code, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// FindByCode retrieves a transaction by its code
func (r *transactionRepository) FindByCode(ctx context.Context, code string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Where("transaction_code = ?", code).
		Take(&tx).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find transaction")
	}

	return &tx, nil
}

// ExistsByCode reports whether a row with code has been recorded
func (r *transactionRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("transaction_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check transaction code: %w", err)
	}

	return count > 0, nil
}

// FindByCorrelationID returns every row of one submission, oldest first
func (r *transactionRepository) FindByCorrelationID(ctx context.Context, correlationID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("correlation_id = ?", correlationID).
		Order("transaction_timestamp ASC").
		Order("transaction_code ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions by correlation id: %w", err)
	}

	return txs, nil
}

// Find returns transactions matching every non-zero filter field, newest first
func (r *transactionRepository) Find(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{})

	if filter.From != nil {
		query = query.Where("transaction_timestamp >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("transaction_timestamp <= ?", *filter.To)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Modality != "" {
		query = query.Where("modality = ?", filter.Modality)
	}
	if filter.CorrelationID != "" {
		query = query.Where("correlation_id = ?", filter.CorrelationID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var txs []models.Transaction
	err := query.
		Order("transaction_timestamp DESC").
		Order("transaction_code DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}

	return txs, nil
}
