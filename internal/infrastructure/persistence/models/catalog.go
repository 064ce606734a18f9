package models

import (
	"github.com/euroweb/backoffice/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for catalog products
type ProductModel struct {
	BaseModel
	Code      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name      string          `gorm:"type:varchar(200);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Enabled   bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
		UnitPrice:  m.UnitPrice,
		Enabled:    m.Enabled,
	}
}

// ProductModelFromDomain creates a persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		Code:      p.Code,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Enabled:   p.Enabled,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// ProductSeriesModel is the persistence model for product series
type ProductSeriesModel struct {
	BaseModel
	Code string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ProductSeriesModel) TableName() string {
	return "product_series"
}

// ToDomain converts the persistence model to a domain ProductSeries
func (m *ProductSeriesModel) ToDomain() *catalog.ProductSeries {
	return &catalog.ProductSeries{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
	}
}

// ProductSeriesModelFromDomain creates a persistence model from a domain ProductSeries
func ProductSeriesModelFromDomain(s *catalog.ProductSeries) *ProductSeriesModel {
	m := &ProductSeriesModel{
		Code: s.Code,
		Name: s.Name,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// CountryModel is the persistence model for countries
type CountryModel struct {
	BaseModel
	Code string `gorm:"type:varchar(2);not null;uniqueIndex"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (CountryModel) TableName() string {
	return "countries"
}

// ToDomain converts the persistence model to a domain Country
func (m *CountryModel) ToDomain() *catalog.Country {
	return &catalog.Country{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
	}
}

// CountryModelFromDomain creates a persistence model from a domain Country
func CountryModelFromDomain(c *catalog.Country) *CountryModel {
	m := &CountryModel{
		Code: c.Code,
		Name: c.Name,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
