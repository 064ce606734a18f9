package eshop

import (
	"github.com/euroweb/backoffice/internal/domain/shared"
)

// Customer is an eshop customer, identified by the external id assigned by
// the shop platform. Customers are created lazily the first time an imported
// order references an unknown external id.
type Customer struct {
	shared.BaseEntity
	ExternalID string
	FirstName  string
	LastName   string
	Phone      string
	Email      string
	Address    string
	Enabled    bool
}

// NewCustomer creates a new eshop customer
func NewCustomer(externalID, firstName, lastName string) (*Customer, error) {
	if externalID == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer external id cannot be empty")
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		ExternalID: externalID,
		FirstName:  firstName,
		LastName:   lastName,
		Enabled:    true,
	}, nil
}

// SetContact sets the customer's contact details
func (c *Customer) SetContact(phone, email, address string) {
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.Touch()
}
