package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByOwner(ctx context.Context, db *gorm.DB, ownerID string) (*BankInfo, error)
	Upsert(ctx context.Context, db *gorm.DB, info *BankInfo) error
}
