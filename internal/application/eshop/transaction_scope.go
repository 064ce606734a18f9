package eshopapp

import (
	"context"

	"github.com/euroweb/backoffice/internal/domain/catalog"
	"github.com/euroweb/backoffice/internal/domain/eshop"
)

// TransactionScope provides transactional access to the repositories an
// order import touches. One Execute call is one database transaction: the
// whole batch commits together or rolls back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() eshop.OrderRepository
	// LineRepo returns the order line repository scoped to the current transaction
	LineRepo() eshop.OrderLineRepository
	// CustomerRepo returns the customer repository scoped to the current transaction
	CustomerRepo() eshop.CustomerRepository
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// CountryRepo returns the country repository scoped to the current transaction
	CountryRepo() catalog.CountryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	repos TransactionalRepositories
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over fixed repositories.
func NewNoOpTransactionScope(repos TransactionalRepositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: repos}
}

// Execute runs fn against the fixed repositories without a transaction
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s.repos)
}
