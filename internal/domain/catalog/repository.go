package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository provides read access to catalog products.
// The eshop workflows never create products; unknown codes are lookup misses.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindByCodes(ctx context.Context, codes []string) ([]Product, error)
}

// ProductSeriesRepository provides read access to product series
type ProductSeriesRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductSeries, error)
	FindByCode(ctx context.Context, code string) (*ProductSeries, error)
}

// CountryRepository provides read access to countries
type CountryRepository interface {
	FindByCode(ctx context.Context, code string) (*Country, error)
}
