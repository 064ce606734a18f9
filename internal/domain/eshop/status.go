package eshop

import (
	"fmt"

	"github.com/euroweb/backoffice/internal/domain/shared"
)

// OrderStatus is the lifecycle status of an imported eshop order
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusSent      OrderStatus = "SENT"
	OrderStatusFinished  OrderStatus = "FINISHED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// orderStatusByExternal maps the status strings delivered by the eshop feed
// onto the closed internal set. The mapping is deliberately exhaustive: a
// value outside it aborts the whole import batch.
var orderStatusByExternal = map[string]OrderStatus{
	"NEW":       OrderStatusNew,
	"PAID":      OrderStatusPaid,
	"SENT":      OrderStatusSent,
	"FINISHED":  OrderStatusFinished,
	"CANCELLED": OrderStatusCancelled,
}

// ParseOrderStatus maps an external status string to an OrderStatus.
// Unmapped values return a domain error.
func ParseOrderStatus(external string) (OrderStatus, error) {
	status, ok := orderStatusByExternal[external]
	if !ok {
		return "", shared.NewDomainError("UNKNOWN_ORDER_STATUS",
			fmt.Sprintf("Unknown eshop order status %q", external))
	}
	return status, nil
}

// ReturnStatus is the lifecycle status of an eshop return request.
// Returns are created UNCONFIRMED; later transitions are driven by the
// return-processing back office, not by this service.
type ReturnStatus string

const (
	ReturnStatusUnconfirmed ReturnStatus = "UNCONFIRMED"
	ReturnStatusConfirmed   ReturnStatus = "CONFIRMED"
	ReturnStatusReceived    ReturnStatus = "RECEIVED"
	ReturnStatusClosed      ReturnStatus = "CLOSED"
)
