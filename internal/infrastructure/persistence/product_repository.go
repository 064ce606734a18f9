package persistence

import (
	"context"
	"errors"

	"github.com/euroweb/backoffice/internal/domain/catalog"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/euroweb/backoffice/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a product by its catalog code
func (r *GormProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCodes bulk-loads products for the given codes. Codes without a
// matching product are simply absent from the result.
func (r *GormProductRepository) FindByCodes(ctx context.Context, codes []string) ([]catalog.Product, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("code IN ?", codes).
		Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products, nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// GormProductSeriesRepository implements catalog.ProductSeriesRepository using GORM
type GormProductSeriesRepository struct {
	db *gorm.DB
}

// NewGormProductSeriesRepository creates a new GormProductSeriesRepository
func NewGormProductSeriesRepository(db *gorm.DB) *GormProductSeriesRepository {
	return &GormProductSeriesRepository{db: db}
}

// FindByID finds a product series by its ID
func (r *GormProductSeriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductSeries, error) {
	var model models.ProductSeriesModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a product series by its series code
func (r *GormProductSeriesRepository) FindByCode(ctx context.Context, code string) (*catalog.ProductSeries, error) {
	var model models.ProductSeriesModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormProductSeriesRepository implements ProductSeriesRepository
var _ catalog.ProductSeriesRepository = (*GormProductSeriesRepository)(nil)

// GormCountryRepository implements catalog.CountryRepository using GORM
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GormCountryRepository
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// FindByCode finds a country by its ISO code
func (r *GormCountryRepository) FindByCode(ctx context.Context, code string) (*catalog.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormCountryRepository implements CountryRepository
var _ catalog.CountryRepository = (*GormCountryRepository)(nil)
