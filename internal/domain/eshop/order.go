package eshop

import (
	"time"

	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is an eshop order synchronized from the external shop platform.
// Identity is the external order id; at most one Order exists per id.
type Order struct {
	shared.BaseEntity
	OrderID        string
	Status         OrderStatus
	ExtendedStatus string
	Date           time.Time
	InvoiceNumber  string
	CountryID      *uuid.UUID
	CustomerID     uuid.UUID
	Lines          []OrderLine
}

// NewOrder creates a new eshop order for the given external order id
func NewOrder(orderID string, status OrderStatus, date time.Time) (*Order, error) {
	if orderID == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order id cannot be empty")
	}
	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Status:     status,
		Date:       date,
	}, nil
}

// SetCustomer assigns the owning customer
func (o *Order) SetCustomer(customerID uuid.UUID) {
	o.CustomerID = customerID
	o.Touch()
}

// SetInvoice overwrites the invoice number and country reference.
// These fields are refreshed on every import, new or existing.
func (o *Order) SetInvoice(invoiceNumber string, countryID *uuid.UUID) {
	o.InvoiceNumber = invoiceNumber
	o.CountryID = countryID
	o.Touch()
}

// Line returns the line with the given line number, or nil
func (o *Order) Line(lineNumber int) *OrderLine {
	for i := range o.Lines {
		if o.Lines[i].LineNumber == lineNumber {
			return &o.Lines[i]
		}
	}
	return nil
}

// AddLine associates a line with the order. Adding a line that is already
// associated (same line number) is a no-op.
func (o *Order) AddLine(line *OrderLine) {
	for i := range o.Lines {
		if o.Lines[i].LineNumber == line.LineNumber {
			o.Lines[i] = *line
			return
		}
	}
	line.OrderID = o.ID
	o.Lines = append(o.Lines, *line)
}

// OrderLine is a single position of an eshop order, unique per
// (order, line number) pair. Lines are updated in place on re-import.
type OrderLine struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	LineNumber  int
	ProductID   uuid.UUID
	ProductName string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Discount    decimal.Decimal
	Amount      decimal.Decimal
	Vat         decimal.Decimal
	VatAmount   decimal.Decimal
	SeriesID    *uuid.UUID
	UpdatedAt   time.Time
}

// NewOrderLine creates a new line for the given order and line number
func NewOrderLine(orderID uuid.UUID, lineNumber int) *OrderLine {
	return &OrderLine{
		ID:         uuid.New(),
		OrderID:    orderID,
		LineNumber: lineNumber,
		UpdatedAt:  time.Now(),
	}
}
