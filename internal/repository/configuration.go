// Package repository provides data access layer implementations for the POS terminal.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/benx421/payment-gateway/pos/internal/db"
	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ConfigurationRepository defines the interface for terminal configuration data access
type ConfigurationRepository interface {
	FindActive(ctx context.Context) (*models.TerminalConfiguration, error)
	FindByID(ctx context.Context, model, terminalCode string) (*models.TerminalConfiguration, error)
	FindByTerminalCode(ctx context.Context, terminalCode string) (*models.TerminalConfiguration, error)
	FindByMACAddress(ctx context.Context, macAddress string) (*models.TerminalConfiguration, error)
	FindByMerchantCode(ctx context.Context, merchantCode string) (*models.TerminalConfiguration, error)
	Create(ctx context.Context, cfg *models.TerminalConfiguration) error
	Update(ctx context.Context, cfg *models.TerminalConfiguration) error
}

// configurationRepository implements ConfigurationRepository
type configurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository creates a new ConfigurationRepository
func NewConfigurationRepository(database *db.DB) ConfigurationRepository {
	return &configurationRepository{db: database.DB}
}

// FindActive returns the configuration the terminal runs with: the earliest
// activated row.
func (r *configurationRepository) FindActive(ctx context.Context) (*models.TerminalConfiguration, error) {
	var cfg models.TerminalConfiguration
	err := r.db.WithContext(ctx).
		Order("activated_at ASC").
		Order("terminal_code ASC").
		First(&cfg).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find active configuration")
	}

	return &cfg, nil
}

// FindByID retrieves a configuration by its composite key
func (r *configurationRepository) FindByID(ctx context.Context, model, terminalCode string) (*models.TerminalConfiguration, error) {
	return r.findOne(ctx, "model = ? AND terminal_code = ?", model, terminalCode)
}

// FindByTerminalCode retrieves the configuration registered under terminalCode
func (r *configurationRepository) FindByTerminalCode(ctx context.Context, terminalCode string) (*models.TerminalConfiguration, error) {
	return r.findOne(ctx, "terminal_code = ?", terminalCode)
}

// FindByMACAddress retrieves the configuration bound to macAddress
func (r *configurationRepository) FindByMACAddress(ctx context.Context, macAddress string) (*models.TerminalConfiguration, error) {
	return r.findOne(ctx, "UPPER(mac_address) = UPPER(?)", macAddress)
}

// FindByMerchantCode retrieves a configuration for merchantCode
func (r *configurationRepository) FindByMerchantCode(ctx context.Context, merchantCode string) (*models.TerminalConfiguration, error) {
	return r.findOne(ctx, "merchant_code = ?", merchantCode)
}

func (r *configurationRepository) findOne(ctx context.Context, query string, args ...any) (*models.TerminalConfiguration, error) {
	var cfg models.TerminalConfiguration
	err := r.db.WithContext(ctx).Where(query, args...).Take(&cfg).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find configuration")
	}

	return &cfg, nil
}

// Create inserts a new configuration. Unique key collisions surface as models.ErrDuplicate.
func (r *configurationRepository) Create(ctx context.Context, cfg *models.TerminalConfiguration) error {
	if err := r.db.WithContext(ctx).Create(cfg).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("configuration already exists: %w", models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	return nil
}

// Update rewrites the mutable columns of an existing configuration.
// The activation timestamp is never touched.
func (r *configurationRepository) Update(ctx context.Context, cfg *models.TerminalConfiguration) error {
	result := r.db.WithContext(ctx).
		Model(&models.TerminalConfiguration{}).
		Where("model = ? AND terminal_code = ?", cfg.Model, cfg.TerminalCode).
		Updates(map[string]any{
			"mac_address":   cfg.MACAddress,
			"merchant_code": cfg.MerchantCode,
		})

	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return fmt.Errorf("mac address already in use: %w", models.ErrDuplicate)
		}
		return fmt.Errorf("failed to update configuration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("configuration not found: %w", models.ErrNotFound)
	}

	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, models.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pe *pq.Error
	return errors.As(err, &pe) && pe.Code == "23505"
}
