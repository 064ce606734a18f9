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

// GormReturnRepository implements eshop.ReturnRepository using GORM
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GormReturnRepository
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// FindByID finds a return request by its ID
func (r *GormReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*eshop.Return, error) {
	var model models.EshopReturnModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrderID finds a return request by the originating external order id
func (r *GormReturnRepository) FindByOrderID(ctx context.Context, orderID string) (*eshop.Return, error) {
	var model models.EshopReturnModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a return request
func (r *GormReturnRepository) Save(ctx context.Context, ret *eshop.Return) error {
	model := models.EshopReturnModelFromDomain(ret)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormReturnRepository implements ReturnRepository
var _ eshop.ReturnRepository = (*GormReturnRepository)(nil)
