package persistence

import (
	"context"

	eshopapp "github.com/euroweb/backoffice/internal/application/eshop"
	"github.com/euroweb/backoffice/internal/domain/catalog"
	"github.com/euroweb/backoffice/internal/domain/eshop"
	"gorm.io/gorm"
)

// GormImportTransactionScope implements the importer's TransactionScope
// using GORM transactions. It provides atomic execution of a whole import
// batch: all repository operations inside Execute share one transaction.
type GormImportTransactionScope struct {
	db *gorm.DB
}

// NewGormImportTransactionScope creates a new GormImportTransactionScope
func NewGormImportTransactionScope(db *gorm.DB) *GormImportTransactionScope {
	return &GormImportTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormImportTransactionScope) Execute(ctx context.Context, fn func(repos eshopapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// OrderRepo returns the order repository scoped to the current transaction
func (r *gormTransactionalRepositories) OrderRepo() eshop.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// LineRepo returns the order line repository scoped to the current transaction
func (r *gormTransactionalRepositories) LineRepo() eshop.OrderLineRepository {
	return NewGormOrderLineRepository(r.tx)
}

// CustomerRepo returns the customer repository scoped to the current transaction
func (r *gormTransactionalRepositories) CustomerRepo() eshop.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// CountryRepo returns the country repository scoped to the current transaction
func (r *gormTransactionalRepositories) CountryRepo() catalog.CountryRepository {
	return NewGormCountryRepository(r.tx)
}

// Ensure GormImportTransactionScope implements TransactionScope
var _ eshopapp.TransactionScope = (*GormImportTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ eshopapp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
