package catalog

import (
	"github.com/euroweb/backoffice/internal/domain/shared"
)

// ProductSeries groups products that share a warehouse series prefix.
// Series membership is derived from the product code prefix.
type ProductSeries struct {
	shared.BaseEntity
	Code string
	Name string
}

// NewProductSeries creates a new product series
func NewProductSeries(code, name string) (*ProductSeries, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_SERIES_CODE", "Series code cannot be empty")
	}
	return &ProductSeries{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
	}, nil
}
