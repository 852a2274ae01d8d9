package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypePayment TransactionType = "PAG"
)

// Valid reports whether t is a supported transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypePayment
}

// TransactionStatus represents the lifecycle state of a transaction row
type TransactionStatus string

const (
	TransactionStatusSent       TransactionStatus = "ENV"
	TransactionStatusAuthorized TransactionStatus = "AUT"
	TransactionStatusRejected   TransactionStatus = "REC"
)

// Valid reports whether s is a known row status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusSent, TransactionStatusAuthorized, TransactionStatusRejected:
		return true
	}
	return false
}

// ReceiptStatus tracks whether the customer receipt was printed
type ReceiptStatus string

const (
	ReceiptStatusPending ReceiptStatus = "PEN"
	ReceiptStatusPrinted ReceiptStatus = "IMP"
)

// Brand is the card network
type Brand string

const (
	BrandVisa       Brand = "VISA"
	BrandMastercard Brand = "MAST"
	BrandAmex       Brand = "AMEX"
	BrandDiscover   Brand = "DISC"
)

// Valid reports whether b is a supported card network.
func (b Brand) Valid() bool {
	switch b {
	case BrandVisa, BrandMastercard, BrandAmex, BrandDiscover:
		return true
	}
	return false
}

// Modality is the billing pattern of a payment
type Modality string

const (
	ModalitySimple    Modality = "SIM"
	ModalityRecurring Modality = "REC"
	ModalityDeferred  Modality = "DIF"
)

// Valid reports whether m is a supported modality.
func (m Modality) Valid() bool {
	switch m {
	case ModalitySimple, ModalityRecurring, ModalityDeferred:
		return true
	}
	return false
}

// Currency is the ISO code of the transaction amount
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMXN Currency = "MXN"
)

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyMXN:
		return true
	}
	return false
}

// Transaction is an immutable audit row. A processed payment produces an ENV
// row and one outcome row sharing the same CorrelationID.
type Transaction struct {
	Timestamp       time.Time         `gorm:"column:transaction_timestamp"`
	GatewayResponse datatypes.JSONMap `gorm:"column:gateway_response;type:jsonb"`
	Amount          decimal.Decimal   `gorm:"column:amount;type:numeric(20,2)"`
	Code            string            `gorm:"column:transaction_code;primaryKey;size:32"`
	CorrelationID   string            `gorm:"column:correlation_id;size:64"`
	Detail          string            `gorm:"column:detail;size:255"`
	Type            TransactionType   `gorm:"column:type;size:3"`
	Brand           Brand             `gorm:"column:brand;size:4"`
	Modality        Modality          `gorm:"column:modality;size:3"`
	Currency        Currency          `gorm:"column:currency;size:3"`
	Status          TransactionStatus `gorm:"column:status;size:3"`
	ReceiptStatus   ReceiptStatus     `gorm:"column:receipt_status;size:3"`
}

// TableName overrides the gorm default.
func (Transaction) TableName() string {
	return "pos_transactions"
}

// TransactionRequest is an inbound payment. Card data lives only here and is
// never written to the store.
type TransactionRequest struct {
	Amount         *decimal.Decimal
	Term           *int
	FrequencyDays  *int
	Type           TransactionType
	Brand          Brand
	Modality       Modality
	Currency       Currency
	Detail         string
	CardNumber     string
	CardholderName string
	CVV            string
	Expiration     string
}

// TransactionFilter narrows a transaction search. Zero values are ignored.
type TransactionFilter struct {
	From          *time.Time
	To            *time.Time
	Status        TransactionStatus
	Type          TransactionType
	Modality      Modality
	CorrelationID string
	Limit         int
}
