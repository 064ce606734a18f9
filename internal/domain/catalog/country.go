package catalog

import (
	"strings"

	"github.com/euroweb/backoffice/internal/domain/shared"
)

// Country is reference data keyed by ISO 3166-1 alpha-2 code.
type Country struct {
	shared.BaseEntity
	Code string
	Name string
}

// NewCountry creates a new country record
func NewCountry(code, name string) (*Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return nil, shared.NewDomainError("INVALID_COUNTRY_CODE", "Country code must be a two-letter ISO code")
	}
	return &Country{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
	}, nil
}
