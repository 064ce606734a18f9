package eshop

import (
	"time"

	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// Return tracks a customer's request to send back purchased goods.
// At most one Return exists per originating order id.
type Return struct {
	shared.BaseEntity
	OrderID    string
	Status     ReturnStatus
	Date       time.Time
	CustomerID uuid.UUID
}

// NewReturn creates a new return request for the given order.
// Returns always start in the UNCONFIRMED state.
func NewReturn(orderID string, customerID uuid.UUID) (*Return, error) {
	if orderID == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order id cannot be empty")
	}
	return &Return{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Status:     ReturnStatusUnconfirmed,
		Date:       time.Now(),
		CustomerID: customerID,
	}, nil
}
