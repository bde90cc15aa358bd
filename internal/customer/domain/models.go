package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID   string       `gorm:"column:owner_id;not null;index;uniqueIndex:ux_customers_owner_name" json:"owner_id"`
	Name      string       `gorm:"not null;uniqueIndex:ux_customers_owner_name" json:"name"`
	Email     string       `gorm:"not null" json:"email"`
	Address   string       `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
