package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/benx421/payment-gateway/pos/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConfigurationService(t *testing.T) (*ConfigurationService, *mocks.MockConfigurationRepository) {
	t.Helper()
	repo := mocks.NewMockConfigurationRepository(t)
	svc := NewConfigurationService(repo, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	svc.now = func() time.Time { return time.Date(2026, time.January, 5, 8, 30, 0, 0, time.UTC) }
	return svc, repo
}

func terminalConfig() *models.TerminalConfiguration {
	return &models.TerminalConfiguration{
		Model:        "VX520",
		TerminalCode: "POS001",
		MACAddress:   "AA:BB:CC:DD:EE:FF",
		MerchantCode: "MER001",
	}
}

func notFound() error {
	return fmt.Errorf("failed to find configuration: %w", models.ErrNotFound)
}

func TestConfigurationService_GetActiveConfiguration(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindActive", ctx).Return(terminalConfig(), nil)

		cfg, err := svc.GetActiveConfiguration(ctx)

		require.NoError(t, err)
		assert.Equal(t, "POS001", cfg.TerminalCode)
	})

	t.Run("none configured", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindActive", ctx).Return(nil, notFound())

		_, err := svc.GetActiveConfiguration(ctx)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConfigurationNotFound, svcErr.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindActive", ctx).Return(nil, errors.New("connection reset"))

		_, err := svc.GetActiveConfiguration(ctx)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInternalError, svcErr.Code)
	})
}

func TestConfigurationService_CreateConfiguration(t *testing.T) {
	t.Run("successful creation stamps activation time", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByTerminalCode", ctx, "POS001").Return(nil, notFound())
		repo.On("FindByMACAddress", ctx, "AA:BB:CC:DD:EE:FF").Return(nil, notFound())
		repo.On("Create", ctx, mock.AnythingOfType("*models.TerminalConfiguration")).Return(nil)

		cfg, err := svc.CreateConfiguration(ctx, terminalConfig())

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.January, 5, 8, 30, 0, 0, time.UTC), cfg.ActivatedAt)
		assert.Equal(t, "MER001", cfg.MerchantCode)
	})

	t.Run("terminal code already registered", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByTerminalCode", ctx, "POS001").Return(terminalConfig(), nil)

		_, err := svc.CreateConfiguration(ctx, terminalConfig())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConfigurationExists, svcErr.Code)
	})

	t.Run("MAC address already registered", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByTerminalCode", ctx, "POS001").Return(nil, notFound())
		repo.On("FindByMACAddress", ctx, "AA:BB:CC:DD:EE:FF").Return(&models.TerminalConfiguration{TerminalCode: "POS002"}, nil)

		_, err := svc.CreateConfiguration(ctx, terminalConfig())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConfigurationExists, svcErr.Code)
	})

	t.Run("dash separated MAC address collides with the colon form", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByTerminalCode", ctx, "POS002").Return(nil, notFound())
		repo.On("FindByMACAddress", ctx, "AA:BB:CC:DD:EE:FF").Return(terminalConfig(), nil)

		in := terminalConfig()
		in.TerminalCode = "POS002"
		in.MACAddress = "aa-bb-cc-dd-ee-ff"

		_, err := svc.CreateConfiguration(ctx, in)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConfigurationExists, svcErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MAC address is stored in canonical form", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByTerminalCode", ctx, "POS001").Return(nil, notFound())
		repo.On("FindByMACAddress", ctx, "AA:BB:CC:DD:EE:FF").Return(nil, notFound())
		repo.On("Create", ctx, mock.MatchedBy(func(c *models.TerminalConfiguration) bool {
			return c.MACAddress == "AA:BB:CC:DD:EE:FF"
		})).Return(nil)

		in := terminalConfig()
		in.MACAddress = "aa-bb-cc-dd-ee-ff"

		cfg, err := svc.CreateConfiguration(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, "AA:BB:CC:DD:EE:FF", cfg.MACAddress)
	})

	t.Run("insert race surfaces as duplicate", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByTerminalCode", ctx, "POS001").Return(nil, notFound())
		repo.On("FindByMACAddress", ctx, "AA:BB:CC:DD:EE:FF").Return(nil, notFound())
		repo.On("Create", ctx, mock.Anything).Return(fmt.Errorf("insert: %w", models.ErrDuplicate))

		_, err := svc.CreateConfiguration(ctx, terminalConfig())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConfigurationExists, svcErr.Code)
	})

	invalid := []struct {
		mutate    func(c *models.TerminalConfiguration)
		name      string
		wantField string
	}{
		{name: "missing model", mutate: func(c *models.TerminalConfiguration) { c.Model = "" }, wantField: "model"},
		{name: "long terminal code", mutate: func(c *models.TerminalConfiguration) { c.TerminalCode = "POS00000001" }, wantField: "terminalCode"},
		{name: "bad MAC address", mutate: func(c *models.TerminalConfiguration) { c.MACAddress = "AABBCCDDEEFF" }, wantField: "macAddress"},
		{name: "missing merchant code", mutate: func(c *models.TerminalConfiguration) { c.MerchantCode = " " }, wantField: "merchantCode"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newConfigurationService(t)
			cfg := terminalConfig()
			tt.mutate(cfg)

			_, err := svc.CreateConfiguration(context.Background(), cfg)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, ErrCodeValidationFailed, svcErr.Code)
			assert.Equal(t, tt.wantField, svcErr.Field)
		})
	}
}

func TestConfigurationService_UpdateConfiguration(t *testing.T) {
	activated := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	existing := func() *models.TerminalConfiguration {
		cfg := terminalConfig()
		cfg.ActivatedAt = activated
		return cfg
	}

	t.Run("keeps activation time", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByID", ctx, "VX520", "POS001").Return(existing(), nil)
		repo.On("FindByMACAddress", ctx, "11:22:33:44:55:66").Return(nil, notFound())
		repo.On("Update", ctx, mock.MatchedBy(func(c *models.TerminalConfiguration) bool {
			return c.MACAddress == "11:22:33:44:55:66" && c.MerchantCode == "MER777"
		})).Return(nil)

		in := terminalConfig()
		in.MACAddress = "11:22:33:44:55:66"
		in.MerchantCode = "MER777"
		in.ActivatedAt = time.Now()

		cfg, err := svc.UpdateConfiguration(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, activated, cfg.ActivatedAt)
		assert.Equal(t, "MER777", cfg.MerchantCode)
	})

	t.Run("same MAC address on the same terminal", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByID", ctx, "VX520", "POS001").Return(existing(), nil)
		repo.On("FindByMACAddress", ctx, "AA:BB:CC:DD:EE:FF").Return(existing(), nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		_, err := svc.UpdateConfiguration(ctx, terminalConfig())

		require.NoError(t, err)
	})

	t.Run("MAC address owned by another terminal", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByID", ctx, "VX520", "POS001").Return(existing(), nil)
		repo.On("FindByMACAddress", ctx, "AA:BB:CC:DD:EE:FF").
			Return(&models.TerminalConfiguration{Model: "VX520", TerminalCode: "POS002"}, nil)

		_, err := svc.UpdateConfiguration(ctx, terminalConfig())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConfigurationExists, svcErr.Code)
	})

	t.Run("dash separated MAC address owned by another terminal", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByID", ctx, "VX520", "POS001").Return(existing(), nil)
		repo.On("FindByMACAddress", ctx, "11:22:33:44:55:66").
			Return(&models.TerminalConfiguration{Model: "VX520", TerminalCode: "POS002", MACAddress: "11:22:33:44:55:66"}, nil)

		in := terminalConfig()
		in.MACAddress = "11-22-33-44-55-66"

		_, err := svc.UpdateConfiguration(ctx, in)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConfigurationExists, svcErr.Code)
		assert.Equal(t, "macAddress", svcErr.Field)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown terminal", func(t *testing.T) {
		svc, repo := newConfigurationService(t)
		ctx := context.Background()
		repo.On("FindByID", ctx, "VX520", "POS001").Return(nil, notFound())

		_, err := svc.UpdateConfiguration(ctx, terminalConfig())

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeConfigurationNotFound, svcErr.Code)
	})
}

func TestConfigurationService_GetConfiguration(t *testing.T) {
	svc, repo := newConfigurationService(t)
	ctx := context.Background()
	repo.On("FindByID", ctx, "VX520", "POS001").Return(terminalConfig(), nil)

	cfg, err := svc.GetConfiguration(ctx, "VX520", "POS001")

	require.NoError(t, err)
	assert.Equal(t, "MER001", cfg.MerchantCode)
}
