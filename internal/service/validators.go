package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	cardNumberLength   = 16
	maxAmountIntDigits = 18
	maxAmountScale     = 2
	maxDetailLength    = 50
	maxCodeLength      = 10
	maxMACLength       = 32
)

var (
	macAddressPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)
	expirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
)

// ValidateLuhn validates a card number using the Luhn algorithm
func ValidateLuhn(cardNumber string) error {
	var digits []int
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) < 13 || len(digits) > 19 {
		return fmt.Errorf("invalid card number length: must be 13-19 digits")
	}

	sum := 0
	isSecond := false

	for i := len(digits) - 1; i >= 0; i-- {
		digit := digits[i]

		if isSecond {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isSecond = !isSecond
	}

	if sum%10 != 0 {
		return fmt.Errorf("invalid card number: failed Luhn check")
	}

	return nil
}

// ValidateCardNumber checks the terminal's card number format: exactly 16 digits.
func ValidateCardNumber(cardNumber string) error {
	if len(cardNumber) != cardNumberLength || !isDigits(cardNumber) {
		return fmt.Errorf("card number must have exactly %d digits", cardNumberLength)
	}
	return nil
}

// ParseExpiration splits an MM/YY expiration into month and four digit year.
func ParseExpiration(expiration string) (month, year int, err error) {
	m := expirationPattern.FindStringSubmatch(expiration)
	if m == nil {
		return 0, 0, fmt.Errorf("expiration must use the MM/YY format")
	}

	month, _ = strconv.Atoi(m[1]) //nolint:errcheck // guaranteed digits by the pattern
	yy, _ := strconv.Atoi(m[2])    //nolint:errcheck // guaranteed digits by the pattern

	return month, 2000 + yy, nil
}

// ValidateExpiry checks if a card has expired
func ValidateExpiry(expiryMonth, expiryYear int) error {
	return validateExpiryAt(expiryMonth, expiryYear, time.Now())
}

func validateExpiryAt(expiryMonth, expiryYear int, now time.Time) error {
	if expiryMonth < 1 || expiryMonth > 12 {
		return fmt.Errorf("invalid month: must be between 1 and 12")
	}

	currentYear := now.Year()
	currentMonth := int(now.Month())

	if expiryYear < currentYear {
		return fmt.Errorf("card expired: year %d is in the past", expiryYear)
	}

	if expiryYear == currentYear && expiryMonth < currentMonth {
		return fmt.Errorf("card expired: %02d/%d", expiryMonth, expiryYear)
	}

	return nil
}

// ValidateCVV checks if CVV format is valid.
func ValidateCVV(cvv string) error {
	if len(cvv) < 3 || len(cvv) > 4 {
		return fmt.Errorf("invalid CVV: must be 3 or 4 digits")
	}

	if !isDigits(cvv) {
		return fmt.Errorf("invalid CVV: must contain only digits")
	}

	return nil
}

// ValidateAmount checks the amount is present, positive and fits numeric(20,2)
func ValidateAmount(amount *decimal.Decimal) error {
	if amount == nil {
		return fmt.Errorf("amount is required")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}
	if -amount.Exponent() > maxAmountScale && !amount.Equal(amount.Truncate(maxAmountScale)) {
		return fmt.Errorf("invalid amount: at most %d decimal places", maxAmountScale)
	}
	if len(amount.Truncate(0).String()) > maxAmountIntDigits {
		return fmt.Errorf("invalid amount: at most %d integer digits", maxAmountIntDigits)
	}

	return nil
}

// ValidateMACAddress accepts six colon or dash separated hex octets.
func ValidateMACAddress(mac string) error {
	if len(mac) > maxMACLength || !macAddressPattern.MatchString(mac) {
		return fmt.Errorf("invalid MAC address format")
	}
	return nil
}

// CanonicalMACAddress upper-cases mac and uses colons as separators, so
// AA-BB-CC-DD-EE-FF and aa:bb:cc:dd:ee:ff are stored as the same address.
func CanonicalMACAddress(mac string) string {
	return strings.ToUpper(strings.ReplaceAll(mac, "-", ":"))
}

func validateDetail(detail string) error {
	if utf8.RuneCountInString(detail) > maxDetailLength {
		return fmt.Errorf("detail cannot exceed %d characters", maxDetailLength)
	}
	return nil
}

func validateCode(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	if utf8.RuneCountInString(value) > maxCodeLength {
		return fmt.Errorf("%s cannot exceed %d characters", name, maxCodeLength)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
