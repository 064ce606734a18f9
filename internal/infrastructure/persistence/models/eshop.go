package models

import (
	"time"

	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EshopOrderModel is the persistence model for imported eshop orders
type EshopOrderModel struct {
	BaseModel
	OrderID        string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status         eshop.OrderStatus     `gorm:"type:varchar(20);not null"`
	ExtendedStatus string                `gorm:"type:varchar(200)"`
	Date           time.Time             `gorm:"not null;index"`
	InvoiceNumber  string                `gorm:"type:varchar(50)"`
	CountryID      *uuid.UUID            `gorm:"type:uuid;index"`
	CustomerID     uuid.UUID             `gorm:"type:uuid;not null;index"`
	Lines          []EshopOrderLineModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (EshopOrderModel) TableName() string {
	return "eshop_orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *EshopOrderModel) ToDomain() *eshop.Order {
	order := &eshop.Order{
		BaseEntity:     m.BaseModel.ToDomain(),
		OrderID:        m.OrderID,
		Status:         m.Status,
		ExtendedStatus: m.ExtendedStatus,
		Date:           m.Date,
		InvoiceNumber:  m.InvoiceNumber,
		CountryID:      m.CountryID,
		CustomerID:     m.CustomerID,
		Lines:          make([]eshop.OrderLine, len(m.Lines)),
	}
	for i := range m.Lines {
		order.Lines[i] = *m.Lines[i].ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order.
// Lines are persisted through their own repository, not by association.
func (m *EshopOrderModel) FromDomain(o *eshop.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.OrderID = o.OrderID
	m.Status = o.Status
	m.ExtendedStatus = o.ExtendedStatus
	m.Date = o.Date
	m.InvoiceNumber = o.InvoiceNumber
	m.CountryID = o.CountryID
	m.CustomerID = o.CustomerID
}

// EshopOrderModelFromDomain creates a persistence model from a domain Order
func EshopOrderModelFromDomain(o *eshop.Order) *EshopOrderModel {
	m := &EshopOrderModel{}
	m.FromDomain(o)
	return m
}

// EshopOrderLineModel is the persistence model for eshop order lines
type EshopOrderLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_eshop_order_line_number,priority:1"`
	LineNumber  int             `gorm:"not null;uniqueIndex:idx_eshop_order_line_number,priority:2"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Vat         decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	VatAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SeriesID    *uuid.UUID      `gorm:"type:uuid;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (EshopOrderLineModel) TableName() string {
	return "eshop_order_lines"
}

// ToDomain converts the persistence model to a domain OrderLine
func (m *EshopOrderLineModel) ToDomain() *eshop.OrderLine {
	return &eshop.OrderLine{
		ID:          m.ID,
		OrderID:     m.OrderID,
		LineNumber:  m.LineNumber,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Price:       m.Price,
		Discount:    m.Discount,
		Amount:      m.Amount,
		Vat:         m.Vat,
		VatAmount:   m.VatAmount,
		SeriesID:    m.SeriesID,
		UpdatedAt:   m.UpdatedAt,
	}
}

// EshopOrderLineModelFromDomain creates a persistence model from a domain OrderLine
func EshopOrderLineModelFromDomain(l *eshop.OrderLine) *EshopOrderLineModel {
	return &EshopOrderLineModel{
		ID:          l.ID,
		OrderID:     l.OrderID,
		LineNumber:  l.LineNumber,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		Price:       l.Price,
		Discount:    l.Discount,
		Amount:      l.Amount,
		Vat:         l.Vat,
		VatAmount:   l.VatAmount,
		SeriesID:    l.SeriesID,
		UpdatedAt:   l.UpdatedAt,
	}
}

// EshopCustomerModel is the persistence model for eshop customers
type EshopCustomerModel struct {
	BaseModel
	ExternalID string `gorm:"type:varchar(50);not null;uniqueIndex"`
	FirstName  string `gorm:"type:varchar(100)"`
	LastName   string `gorm:"type:varchar(100)"`
	Phone      string `gorm:"type:varchar(50)"`
	Email      string `gorm:"type:varchar(200);index"`
	Address    string `gorm:"type:varchar(500)"`
	Enabled    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (EshopCustomerModel) TableName() string {
	return "eshop_customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *EshopCustomerModel) ToDomain() *eshop.Customer {
	return &eshop.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		ExternalID: m.ExternalID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Phone:      m.Phone,
		Email:      m.Email,
		Address:    m.Address,
		Enabled:    m.Enabled,
	}
}

// EshopCustomerModelFromDomain creates a persistence model from a domain Customer
func EshopCustomerModelFromDomain(c *eshop.Customer) *EshopCustomerModel {
	m := &EshopCustomerModel{
		ExternalID: c.ExternalID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		Enabled:    c.Enabled,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// EshopReturnModel is the persistence model for return requests
type EshopReturnModel struct {
	BaseModel
	OrderID    string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status     eshop.ReturnStatus `gorm:"type:varchar(20);not null;default:'UNCONFIRMED'"`
	Date       time.Time          `gorm:"not null"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (EshopReturnModel) TableName() string {
	return "eshop_returns"
}

// ToDomain converts the persistence model to a domain Return
func (m *EshopReturnModel) ToDomain() *eshop.Return {
	return &eshop.Return{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		Status:     m.Status,
		Date:       m.Date,
		CustomerID: m.CustomerID,
	}
}

// EshopReturnModelFromDomain creates a persistence model from a domain Return
func EshopReturnModelFromDomain(r *eshop.Return) *EshopReturnModel {
	m := &EshopReturnModel{
		OrderID:    r.OrderID,
		Status:     r.Status,
		Date:       r.Date,
		CustomerID: r.CustomerID,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
