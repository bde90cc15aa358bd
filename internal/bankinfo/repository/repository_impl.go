package repository

import (
	"context"

	"github.com/paperbill/paperbill/internal/bankinfo/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByOwner(ctx context.Context, db *gorm.DB, ownerID string) (*domain.BankInfo, error) {
	var info domain.BankInfo
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Limit(1).
		Find(&info).Error
	if err != nil {
		return nil, err
	}
	if info.OwnerID == "" {
		return nil, nil
	}
	return &info, nil
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, info *domain.BankInfo) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"bank_name", "account_number", "account_name", "currency", "updated_at",
			}),
		}).
		Create(info).Error
}
