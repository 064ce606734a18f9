package eshop

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository persists eshop orders and their lines
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*Order, error)
	Save(ctx context.Context, order *Order) error
}

// OrderLineRepository gives direct access to order lines by their
// (order, line number) identity
type OrderLineRepository interface {
	FindByOrderAndNumber(ctx context.Context, orderID uuid.UUID, lineNumber int) (*OrderLine, error)
	Save(ctx context.Context, line *OrderLine) error
}

// CustomerRepository persists eshop customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByExternalID(ctx context.Context, externalID string) (*Customer, error)
	FindByExternalIDs(ctx context.Context, externalIDs []string) ([]Customer, error)
	Save(ctx context.Context, customer *Customer) error
}

// ReturnRepository persists return requests
type ReturnRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Return, error)
	FindByOrderID(ctx context.Context, orderID string) (*Return, error)
	Save(ctx context.Context, ret *Return) error
}
