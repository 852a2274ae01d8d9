package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/benx421/payment-gateway/pos/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var randomCodePattern = regexp.MustCompile(`^TRX[0-9]{7}$`)

func TestRandomCodeGenerator_NextCode(t *testing.T) {
	t.Run("first free code is returned", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		ctx := context.Background()
		mockTxRepo.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

		code, err := NewRandomCodeGenerator(mockTxRepo).NextCode(ctx)

		require.NoError(t, err)
		assert.Regexp(t, randomCodePattern, code)
	})

	t.Run("retries on collision", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		ctx := context.Background()
		mockTxRepo.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(true, nil).Twice()
		mockTxRepo.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

		code, err := NewRandomCodeGenerator(mockTxRepo).NextCode(ctx)

		require.NoError(t, err)
		assert.Regexp(t, randomCodePattern, code)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		ctx := context.Background()
		mockTxRepo.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(true, nil).Times(maxRandomAttempts)

		code, err := NewRandomCodeGenerator(mockTxRepo).NextCode(ctx)

		assert.Error(t, err)
		assert.Empty(t, code)
	})

	t.Run("store failure", func(t *testing.T) {
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		ctx := context.Background()
		mockTxRepo.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(false, errors.New("connection reset"))

		_, err := NewRandomCodeGenerator(mockTxRepo).NextCode(ctx)

		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestSnowflakeCodeGenerator_NextCode(t *testing.T) {
	gen, err := NewSnowflakeCodeGenerator(3)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for range 1000 {
		code, err := gen.NextCode(context.Background())
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(code, "TRX"))
		require.LessOrEqual(t, len(code), 25)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 1000)

	_, err = NewSnowflakeCodeGenerator(4096)
	assert.Error(t, err)
}

func TestNewCodeGenerator(t *testing.T) {
	gen, err := NewCodeGenerator(&config.AppConfig{CodeStrategy: config.CodeStrategyRandom}, nil)
	require.NoError(t, err)
	assert.IsType(t, &RandomCodeGenerator{}, gen)

	gen, err = NewCodeGenerator(&config.AppConfig{CodeStrategy: config.CodeStrategySnowflake, SnowflakeNode: 1}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SnowflakeCodeGenerator{}, gen)

	_, err = NewCodeGenerator(&config.AppConfig{CodeStrategy: "sequence"}, nil)
	assert.Error(t, err)
}
