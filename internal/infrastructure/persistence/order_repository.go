package persistence

import (
	"context"
	"errors"

	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/euroweb/backoffice/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements eshop.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID, lines included
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*eshop.Order, error) {
	var model models.EshopOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrderID finds an order by its external order id, lines included
func (r *GormOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*eshop.Order, error) {
	var model models.EshopOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an order. Lines are persisted through the order
// line repository, not by association.
func (r *GormOrderRepository) Save(ctx context.Context, order *eshop.Order) error {
	model := models.EshopOrderModelFromDomain(order)
	return r.db.WithContext(ctx).Omit("Lines").Save(model).Error
}

// Ensure GormOrderRepository implements OrderRepository
var _ eshop.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderLineRepository implements eshop.OrderLineRepository using GORM
type GormOrderLineRepository struct {
	db *gorm.DB
}

// NewGormOrderLineRepository creates a new GormOrderLineRepository
func NewGormOrderLineRepository(db *gorm.DB) *GormOrderLineRepository {
	return &GormOrderLineRepository{db: db}
}

// FindByOrderAndNumber finds a line by its (order, line number) identity
func (r *GormOrderLineRepository) FindByOrderAndNumber(ctx context.Context, orderID uuid.UUID, lineNumber int) (*eshop.OrderLine, error) {
	var model models.EshopOrderLineModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND line_number = ?", orderID, lineNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an order line
func (r *GormOrderLineRepository) Save(ctx context.Context, line *eshop.OrderLine) error {
	model := models.EshopOrderLineModelFromDomain(line)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormOrderLineRepository implements OrderLineRepository
var _ eshop.OrderLineRepository = (*GormOrderLineRepository)(nil)
