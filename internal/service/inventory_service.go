package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxdesk/internal/aggregate"
	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/validator"
)

// InventoryInput is the DTO for creating or editing an inventory item.
type InventoryInput struct {
	ItemCode     string          `json:"item_code" validate:"omitempty,max=50"`
	Name         string          `json:"name" validate:"required,max=200"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit" validate:"omitempty,oneof=pcs kg ltr mtr box set other"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"gte=0"`
	CurrentStock int             `json:"current_stock" validate:"gte=0"`
	MinimumStock int             `json:"minimum_stock" validate:"gte=0"`
	Location     string          `json:"location" validate:"omitempty,max=100"`
	Category     string          `json:"category" validate:"omitempty,max=50"`
}

func (in *InventoryInput) check() error {
	if in.Category != "" && !containsString(domain.InventoryCategories, in.Category) {
		return domain.NewValidationError("category",
			"must be one of: "+strings.Join(domain.InventoryCategories, ", "))
	}
	return nil
}

func (in *InventoryInput) apply(item *domain.InventoryItem) {
	item.ItemCode = optionalString(in.ItemCode)
	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.Unit = in.Unit
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	item.UnitPrice = in.UnitPrice.Round(2)
	item.CurrentStock = in.CurrentStock
	item.MinimumStock = in.MinimumStock
	item.Location = in.Location
	item.Category = in.Category
	if item.Category == "" {
		item.Category = "Others"
	}
	item.RefreshStockStatus()
}

// StockAdjustInput changes an item's stock by Delta, which may be negative.
type StockAdjustInput struct {
	Delta int    `json:"delta" validate:"ne=0"`
	Note  string `json:"note"`
}

// InventorySummary is the inventory overview.
type InventorySummary struct {
	ItemCount  int                        `json:"item_count"`
	StockValue decimal.Decimal            `json:"stock_value"`
	ByStatus   map[domain.StockStatus]int `json:"by_status"`
	Low        []domain.InventoryItem     `json:"low_stock_items"`
}

// InventoryService defines the inventory contract.
type InventoryService interface {
	Create(ctx context.Context, actor domain.Actor, input InventoryInput) (*domain.InventoryItem, error)
	GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.InventoryItem, int, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input InventoryInput) (*domain.InventoryItem, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	AdjustStock(ctx context.Context, actor domain.Actor, id uuid.UUID, input StockAdjustInput) (*domain.InventoryItem, error)
	Summary(ctx context.Context, actor domain.Actor) (*InventorySummary, error)
}

type inventoryService struct {
	repo  port.InventoryRepository
	tx    port.Transactor
	valid *validator.Validator
	log   *zap.Logger
}

// NewInventoryService creates a new InventoryService implementation.
func NewInventoryService(
	repo port.InventoryRepository,
	tx port.Transactor,
	valid *validator.Validator,
	log *zap.Logger,
) InventoryService {
	return &inventoryService{repo: repo, tx: tx, valid: valid, log: log}
}

func (s *inventoryService) Create(ctx context.Context, actor domain.Actor, input InventoryInput) (*domain.InventoryItem, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	if err := input.check(); err != nil {
		return nil, err
	}
	item := &domain.InventoryItem{
		TenantID:  actor.TenantID,
		CreatedBy: actor.UserID,
		UpdatedBy: actor.UserID,
	}
	input.apply(item)
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, item)
	}); err != nil {
		return nil, err
	}
	s.log.Info("inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("stock_status", string(item.StockStatus)))
	return item, nil
}

func (s *inventoryService) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.InventoryItem, error) {
	return s.repo.GetByID(ctx, actor.TenantID, id)
}

func (s *inventoryService) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.InventoryItem, int, error) {
	return s.repo.List(ctx, actor.TenantID, filter)
}

func (s *inventoryService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, input InventoryInput) (*domain.InventoryItem, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	if err := input.check(); err != nil {
		return nil, err
	}
	var item *domain.InventoryItem
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.repo.GetForUpdate(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		input.apply(item)
		item.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, actor.TenantID, id)
	})
}

// AdjustStock applies a signed change to the stock level under a row lock.
// A change that would take the stock below zero is rejected.
func (s *inventoryService) AdjustStock(ctx context.Context, actor domain.Actor, id uuid.UUID, input StockAdjustInput) (*domain.InventoryItem, error) {
	if err := s.valid.Struct(input); err != nil {
		return nil, err
	}
	var item *domain.InventoryItem
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.repo.GetForUpdate(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		next := item.CurrentStock + input.Delta
		if next < 0 {
			return domain.ErrInsufficientStock
		}
		item.CurrentStock = next
		item.RefreshStockStatus()
		item.UpdatedBy = actor.UserID
		return s.repo.Update(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("stock adjusted",
		zap.String("item_id", id.String()),
		zap.Int("delta", input.Delta),
		zap.Int("current_stock", item.CurrentStock),
		zap.String("note", input.Note))
	return item, nil
}

func (s *inventoryService) Summary(ctx context.Context, actor domain.Actor) (*InventorySummary, error) {
	items, _, err := s.repo.List(ctx, actor.TenantID, domain.ListFilter{})
	if err != nil {
		return nil, err
	}
	low := []domain.InventoryItem{}
	for _, item := range items {
		if item.StockStatus != domain.StockStatusIn {
			low = append(low, item)
		}
	}
	return &InventorySummary{
		ItemCount:  len(items),
		StockValue: aggregate.StockValue(items),
		ByStatus:   aggregate.ItemsByStockStatus(items),
		Low:        low,
	}, nil
}
