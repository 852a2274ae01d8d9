package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/benx421/payment-gateway/pos/internal/repository"
)

// ConfigurationService manages the terminal configuration rows
type ConfigurationService struct {
	configurations repository.ConfigurationRepository
	logger         *slog.Logger
	now            func() time.Time
}

// NewConfigurationService creates a new ConfigurationService
func NewConfigurationService(configurations repository.ConfigurationRepository, logger *slog.Logger) *ConfigurationService {
	return &ConfigurationService{
		configurations: configurations,
		logger:         logger,
		now:            time.Now,
	}
}

// GetActiveConfiguration returns the configuration the terminal currently runs with
func (s *ConfigurationService) GetActiveConfiguration(ctx context.Context) (*models.TerminalConfiguration, error) {
	cfg, err := s.configurations.FindActive(ctx)
	if err != nil {
		return nil, s.lookupError(err, "no active configuration")
	}
	return cfg, nil
}

// GetConfiguration loads the configuration identified by model and terminal code
func (s *ConfigurationService) GetConfiguration(ctx context.Context, model, terminalCode string) (*models.TerminalConfiguration, error) {
	cfg, err := s.configurations.FindByID(ctx, model, terminalCode)
	if err != nil {
		return nil, s.lookupError(err, "configuration not found")
	}
	return cfg, nil
}

// CreateConfiguration registers a terminal. Terminal code and MAC address must be unused.
func (s *ConfigurationService) CreateConfiguration(ctx context.Context, cfg *models.TerminalConfiguration) (*models.TerminalConfiguration, error) {
	if err := validateConfiguration(cfg); err != nil {
		s.logger.Warn("rejected configuration", "terminal_code", cfg.TerminalCode, "field", err.Field, "error", err.Message)
		return nil, err
	}

	if err := s.ensureUnused(ctx, "terminal code", cfg.TerminalCode, s.configurations.FindByTerminalCode); err != nil {
		return nil, err
	}
	if err := s.ensureUnused(ctx, "MAC address", cfg.MACAddress, s.configurations.FindByMACAddress); err != nil {
		return nil, err
	}

	created := &models.TerminalConfiguration{
		ActivatedAt:  s.now().UTC(),
		Model:        cfg.Model,
		TerminalCode: cfg.TerminalCode,
		MACAddress:   cfg.MACAddress,
		MerchantCode: cfg.MerchantCode,
	}

	if err := s.configurations.Create(ctx, created); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, &ServiceError{
				Code:    ErrCodeConfigurationExists,
				Message: "configuration already exists",
				Err:     err,
			}
		}
		return nil, internalError("failed to create configuration", err)
	}

	s.logger.Info("configuration created",
		"model", created.Model,
		"terminal_code", created.TerminalCode,
		"merchant_code", created.MerchantCode,
	)

	return created, nil
}

// UpdateConfiguration changes the MAC address and merchant code of an existing
// terminal. The activation timestamp is kept.
func (s *ConfigurationService) UpdateConfiguration(ctx context.Context, cfg *models.TerminalConfiguration) (*models.TerminalConfiguration, error) {
	if err := validateConfiguration(cfg); err != nil {
		return nil, err
	}

	existing, err := s.configurations.FindByID(ctx, cfg.Model, cfg.TerminalCode)
	if err != nil {
		return nil, s.lookupError(err, "configuration not found")
	}

	owner, err := s.configurations.FindByMACAddress(ctx, cfg.MACAddress)
	switch {
	case err == nil && (owner.Model != existing.Model || owner.TerminalCode != existing.TerminalCode):
		return nil, &ServiceError{
			Code:    ErrCodeConfigurationExists,
			Field:   "macAddress",
			Message: "MAC address is assigned to another terminal",
		}
	case err != nil && !errors.Is(err, models.ErrNotFound):
		return nil, internalError("failed to check MAC address", err)
	}

	updated := *existing
	updated.MACAddress = cfg.MACAddress
	updated.MerchantCode = cfg.MerchantCode

	if err := s.configurations.Update(ctx, &updated); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeConfigurationNotFound, Message: "configuration not found", Err: err}
		}
		if errors.Is(err, models.ErrDuplicate) {
			return nil, &ServiceError{Code: ErrCodeConfigurationExists, Message: "MAC address is assigned to another terminal", Err: err}
		}
		return nil, internalError("failed to update configuration", err)
	}

	s.logger.Info("configuration updated", "model", updated.Model, "terminal_code", updated.TerminalCode)

	return &updated, nil
}

func (s *ConfigurationService) ensureUnused(
	ctx context.Context,
	what, value string,
	find func(context.Context, string) (*models.TerminalConfiguration, error),
) error {
	_, err := find(ctx, value)
	if err == nil {
		s.logger.Warn("configuration already exists", "key", what, "value", value)
		return &ServiceError{
			Code:    ErrCodeConfigurationExists,
			Message: "a configuration with this " + what + " already exists",
		}
	}
	if !errors.Is(err, models.ErrNotFound) {
		return internalError("failed to check "+what, err)
	}
	return nil
}

func (s *ConfigurationService) lookupError(err error, message string) *ServiceError {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeConfigurationNotFound, Message: message, Err: err}
	}
	s.logger.Error("configuration lookup failed", "error", err)
	return internalError("failed to load configuration", err)
}

// validateConfiguration checks every field and rewrites the MAC address to
// its canonical form before any lookup or write uses it.
func validateConfiguration(cfg *models.TerminalConfiguration) *ServiceError {
	if err := validateCode("model", cfg.Model); err != nil {
		return validationError("model", err.Error())
	}
	if err := validateCode("terminal code", cfg.TerminalCode); err != nil {
		return validationError("terminalCode", err.Error())
	}
	if err := ValidateMACAddress(cfg.MACAddress); err != nil {
		return validationError("macAddress", err.Error())
	}
	cfg.MACAddress = CanonicalMACAddress(cfg.MACAddress)
	if err := validateCode("merchant code", cfg.MerchantCode); err != nil {
		return validationError("merchantCode", err.Error())
	}
	return nil
}
