package service

import (
	"context"
	"strings"
	"time"

	"github.com/paperbill/paperbill/internal/bankinfo/domain"
	"github.com/paperbill/paperbill/internal/usercontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("bankinfo.service"),
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (*domain.BankInfo, error) {
	ownerID, ok := usercontext.OwnerIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidOwner
	}
	return s.repo.FindByOwner(ctx, s.db, ownerID)
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertBankInfoRequest) (domain.BankInfo, error) {
	ownerID, ok := usercontext.OwnerIDFromContext(ctx)
	if !ok {
		return domain.BankInfo{}, domain.ErrInvalidOwner
	}

	bankName := strings.TrimSpace(req.BankName)
	if bankName == "" {
		return domain.BankInfo{}, domain.ErrInvalidBankName
	}
	accountNumber := strings.TrimSpace(req.AccountNumber)
	if accountNumber == "" {
		return domain.BankInfo{}, domain.ErrInvalidAccount
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		return domain.BankInfo{}, domain.ErrInvalidCurrency
	}

	now := time.Now().UTC()
	info := domain.BankInfo{
		OwnerID:       ownerID,
		BankName:      bankName,
		AccountNumber: accountNumber,
		AccountName:   strings.TrimSpace(req.AccountName),
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Upsert(ctx, s.db, &info); err != nil {
		return domain.BankInfo{}, err
	}

	s.log.Info("bank info upserted", zap.String("owner_id", ownerID))
	return info, nil
}
