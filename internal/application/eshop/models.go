package eshopapp

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the in-memory representation of one externally supplied
// order, as delivered by the eshop feed. It is input to the importer and is
// never persisted as-is.
type OrderModel struct {
	OrderID        string
	Status         string
	ExtendedStatus string
	Date           time.Time
	InvoiceNumber  string
	Customer       CustomerModel
	Lines          []OrderLineModel
}

// OrderLineModel is one order position in the feed
type OrderLineModel struct {
	LineNumber  int
	ProductCode string
	ProductName string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Discount    decimal.Decimal
	Amount      decimal.Decimal
	Vat         decimal.Decimal
	VatAmount   decimal.Decimal
}

// CustomerModel is the customer block of an order in the feed, keyed by the
// external customer id assigned by the shop platform
type CustomerModel struct {
	ExternalID string
	FirstName  string
	LastName   string
	Phone      string
	Email      string
	Address    string
}
