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

// GormCustomerRepository implements eshop.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*eshop.Customer, error) {
	var model models.EshopCustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByExternalID finds a customer by its external id
func (r *GormCustomerRepository) FindByExternalID(ctx context.Context, externalID string) (*eshop.Customer, error) {
	var model models.EshopCustomerModel
	if err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByExternalIDs bulk-loads customers for the given external ids.
// Ids without a matching customer are simply absent from the result.
func (r *GormCustomerRepository) FindByExternalIDs(ctx context.Context, externalIDs []string) ([]eshop.Customer, error) {
	if len(externalIDs) == 0 {
		return nil, nil
	}
	var customerModels []models.EshopCustomerModel
	if err := r.db.WithContext(ctx).
		Where("external_id IN ?", externalIDs).
		Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]eshop.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = *customerModels[i].ToDomain()
	}
	return customers, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *eshop.Customer) error {
	model := models.EshopCustomerModelFromDomain(customer)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ eshop.CustomerRepository = (*GormCustomerRepository)(nil)
