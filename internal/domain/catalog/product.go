package catalog

import (
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is reference data for the eshop workflows. Products are maintained
// by the core catalog; the importer only looks them up by code.
type Product struct {
	shared.BaseEntity
	Code      string
	Name      string
	UnitPrice decimal.Decimal
	Enabled   bool
}

// NewProduct creates a new catalog product
func NewProduct(code, name string, unitPrice decimal.Decimal) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		UnitPrice:  unitPrice,
		Enabled:    true,
	}, nil
}
