package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLuhn(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		wantErr    bool
	}{
		{
			name:       "valid card number",
			cardNumber: "4532015112830366",
			wantErr:    false,
		},
		{
			name:       "another valid card",
			cardNumber: "4556737586899855",
			wantErr:    false,
		},
		{
			name:       "invalid card number",
			cardNumber: "1234567890123456",
			wantErr:    true,
		},
		{
			name:       "empty card number",
			cardNumber: "",
			wantErr:    true,
		},
		{
			name:       "non-numeric card",
			cardNumber: "abcd1234efgh5678",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLuhn(tt.cardNumber)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCVV(t *testing.T) {
	tests := []struct {
		name    string
		cvv     string
		wantErr bool
	}{
		{
			name:    "valid 3-digit CVV",
			cvv:     "123",
			wantErr: false,
		},
		{
			name:    "valid 4-digit CVV",
			cvv:     "1234",
			wantErr: false,
		},
		{
			name:    "too short",
			cvv:     "12",
			wantErr: true,
		},
		{
			name:    "too long",
			cvv:     "12345",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			cvv:     "abc",
			wantErr: true,
		},
		{
			name:    "empty",
			cvv:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCVV(tt.cvv)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		expiryMonth int
		expiryYear  int
		wantErr     bool
	}{
		{
			name:        "valid future date",
			expiryMonth: 12,
			expiryYear:  2030,
			wantErr:     false,
		},
		{
			name:        "current month still valid",
			expiryMonth: 6,
			expiryYear:  2026,
			wantErr:     false,
		},
		{
			name:        "previous month expired",
			expiryMonth: 5,
			expiryYear:  2026,
			wantErr:     true,
		},
		{
			name:        "invalid month - too low",
			expiryMonth: 0,
			expiryYear:  2027,
			wantErr:     true,
		},
		{
			name:        "invalid month - too high",
			expiryMonth: 13,
			expiryYear:  2027,
			wantErr:     true,
		},
		{
			name:        "expired card",
			expiryMonth: 1,
			expiryYear:  2020,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateExpiryAt(tt.expiryMonth, tt.expiryYear, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseExpiration(t *testing.T) {
	month, year, err := ParseExpiration("09/31")
	require.NoError(t, err)
	assert.Equal(t, 9, month)
	assert.Equal(t, 2031, year)

	for _, bad := range []string{"", "9/31", "13/30", "00/30", "09-31", "09/2031", "ab/cd"} {
		_, _, err := ParseExpiration(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		wantErr    bool
	}{
		{name: "sixteen digits", cardNumber: "4532015112830366"},
		{name: "sixteen digits without luhn", cardNumber: "1234567890123456"},
		{name: "fifteen digits", cardNumber: "378282246310005", wantErr: true},
		{name: "seventeen digits", cardNumber: "45320151128303661", wantErr: true},
		{name: "letters", cardNumber: "4532-0151-1283-03", wantErr: true},
		{name: "empty", cardNumber: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCardNumber(tt.cardNumber)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	dec := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		amount  *decimal.Decimal
		name    string
		wantErr bool
	}{
		{name: "valid amount", amount: dec("125.50")},
		{name: "trailing zeros beyond scale", amount: dec("10.500")},
		{name: "largest amount", amount: dec("999999999999999999.99")},
		{name: "missing amount", amount: nil, wantErr: true},
		{name: "zero amount invalid", amount: dec("0"), wantErr: true},
		{name: "negative amount invalid", amount: dec("-1.00"), wantErr: true},
		{name: "three decimal places", amount: dec("1.005"), wantErr: true},
		{name: "nineteen integer digits", amount: dec("1000000000000000000"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMACAddress(t *testing.T) {
	assert.NoError(t, ValidateMACAddress("AA:BB:CC:DD:EE:FF"))
	assert.NoError(t, ValidateMACAddress("aa-bb-cc-dd-ee-01"))
	assert.Error(t, ValidateMACAddress("AA:BB:CC:DD:EE"))
	assert.Error(t, ValidateMACAddress("GG:BB:CC:DD:EE:FF"))
	assert.Error(t, ValidateMACAddress(""))
}

func TestCanonicalMACAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "AA:BB:CC:DD:EE:FF", want: "AA:BB:CC:DD:EE:FF"},
		{in: "aa:bb:cc:dd:ee:ff", want: "AA:BB:CC:DD:EE:FF"},
		{in: "AA-BB-CC-DD-EE-FF", want: "AA:BB:CC:DD:EE:FF"},
		{in: "0a-1B:2c-3D:4e-5F", want: "0A:1B:2C:3D:4E:5F"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalMACAddress(tt.in))
		})
	}
}

func TestValidateDetail(t *testing.T) {
	assert.NoError(t, validateDetail(""))
	assert.NoError(t, validateDetail("Compra en línea"))
	assert.Error(t, validateDetail("0123456789012345678901234567890123456789012345678901"))
}
