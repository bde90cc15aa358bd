// Package domain contains persistence models for invoicing.
package domain

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// LineItem is one row of an invoice. Price is denormalized: outside an
// active edit it always equals Cost * Quantity.
type LineItem struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customer"`
	Name         string  `json:"name"`
	Cost         float64 `json:"cost"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// Invoice is a persisted invoice, read back for history and preview.
type Invoice struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID string       `gorm:"column:owner_id;not null;index" json:"owner_id"`
	// The source system stored the customer name under customer_id; the
	// column name is kept for layout parity.
	CustomerName string         `gorm:"column:customer_id;not null" json:"customer"`
	Title        string         `gorm:"not null" json:"title"`
	Items        datatypes.JSON `gorm:"not null" json:"items"`
	TotalAmount  float64        `gorm:"not null;default:0" json:"total_amount"`
	CreatedAt    time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// LineItems decodes the serialized item sequence.
func (i Invoice) LineItems() ([]LineItem, error) {
	if len(i.Items) == 0 {
		return nil, nil
	}
	var items []LineItem
	if err := json.Unmarshal(i.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}
