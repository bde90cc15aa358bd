package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/paperbill/paperbill/internal/invoice/domain"
	"github.com/paperbill/paperbill/internal/usercontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	ownerID, ok := usercontext.OwnerIDFromContext(ctx)
	if !ok {
		return domain.Invoice{}, domain.ErrInvalidOwner
	}

	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		return domain.Invoice{}, domain.ErrInvalidCustomer
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Invoice{}, domain.ErrInvalidTitle
	}
	if len(req.Items) == 0 {
		return domain.Invoice{}, domain.ErrNoItems
	}

	raw, err := json.Marshal(req.Items)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice := domain.Invoice{
		ID:           s.genID.Generate(),
		OwnerID:      ownerID,
		CustomerName: customer,
		Title:        title,
		Items:        datatypes.JSON(raw),
		TotalAmount:  req.Total,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.Float64("total_amount", invoice.TotalAmount),
		zap.Int("items", len(req.Items)),
	)
	return invoice, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	ownerID, ok := usercontext.OwnerIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidOwner
	}

	items, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		invoices = append(invoices, *item)
	}
	return invoices, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Invoice, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Invoice{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if item == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return *item, nil
}

// Delete removes an invoice. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
