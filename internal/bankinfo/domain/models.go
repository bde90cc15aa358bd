package domain

import "time"

// BankInfo is the payout record shown on rendered invoices. One per owner.
type BankInfo struct {
	OwnerID       string    `gorm:"column:owner_id;primaryKey" json:"owner_id"`
	BankName      string    `gorm:"not null" json:"bank_name"`
	AccountNumber string    `gorm:"not null" json:"account_number"`
	AccountName   string    `gorm:"not null" json:"account_name"`
	Currency      string    `gorm:"type:text;not null" json:"currency"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (BankInfo) TableName() string { return "bank_info" }
