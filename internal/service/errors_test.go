package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/benx421/payment-gateway/pos/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		expected string
	}{
		{
			name: "configuration missing",
			err: &ServiceError{
				Code:    ErrCodeConfigurationMissing,
				Message: "terminal is not configured",
			},
			expected: "terminal is not configured",
		},
		{
			name: "communication failure with gateway cause",
			err: &ServiceError{
				Code:    ErrCodeCommunicationFailure,
				Message: "payment gateway unavailable",
				Err:     errors.New("dial tcp 10.0.0.5:8090: connect: connection refused"),
			},
			expected: "payment gateway unavailable: dial tcp 10.0.0.5:8090: connect: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	err := internalError("failed to store transaction", models.ErrDuplicate)

	assert.ErrorIs(t, err, models.ErrDuplicate)

	var svcErr *ServiceError
	wrapped := fmt.Errorf("processing: %w", err)
	assert.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, ErrCodeInternalError, svcErr.Code)
}

func TestServiceError_NoUnwrap(t *testing.T) {
	err := validationError("cvv", "invalid CVV: must be 3 or 4 digits")

	assert.Nil(t, err.Unwrap())
}

func TestValidationError_CarriesField(t *testing.T) {
	err := validationError("cardNumber", "card number must have exactly 16 digits")

	assert.Equal(t, ErrCodeValidationFailed, err.Code)
	assert.Equal(t, "cardNumber", err.Field)
	assert.Equal(t, "card number must have exactly 16 digits", err.Error())
}
