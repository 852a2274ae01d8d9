package models

import "time"

// TerminalConfiguration is the identity of the terminal this backend runs for.
// Model and TerminalCode form the primary key.
type TerminalConfiguration struct {
	ActivatedAt  time.Time `gorm:"column:activated_at;<-:create"`
	Model        string    `gorm:"column:model;primaryKey;size:10"`
	TerminalCode string    `gorm:"column:terminal_code;primaryKey;size:10"`
	MACAddress   string    `gorm:"column:mac_address;size:32"`
	MerchantCode string    `gorm:"column:merchant_code;size:10"`
}

// TableName overrides the gorm default.
func (TerminalConfiguration) TableName() string {
	return "pos_configurations"
}
