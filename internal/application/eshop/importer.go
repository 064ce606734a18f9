package eshopapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/euroweb/backoffice/internal/domain/catalog"
	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderImporter synchronizes batches of externally supplied order models
// into the store. One Import call is one transaction: either every order in
// the batch is persisted or none is.
type OrderImporter struct {
	scope  TransactionScope
	series eshop.SeriesResolver
	logger *zap.Logger
}

// NewOrderImporter creates a new OrderImporter
func NewOrderImporter(scope TransactionScope, series eshop.SeriesResolver, logger *zap.Logger) *OrderImporter {
	return &OrderImporter{
		scope:  scope,
		series: series,
		logger: logger.Named("order-import"),
	}
}

// Import upserts the given order models for the given country. Products and
// customers referenced across the batch are prefetched once; orders and
// lines are then processed in input order. Any failure rolls back the whole
// batch and is returned to the caller.
func (i *OrderImporter) Import(ctx context.Context, orderModels []OrderModel, countryCode string) error {
	err := i.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		country, err := i.findCountry(ctx, repos, countryCode)
		if err != nil {
			return err
		}

		products, err := i.findProducts(ctx, repos, orderModels)
		if err != nil {
			return err
		}

		customers, err := i.findCustomers(ctx, repos, orderModels)
		if err != nil {
			return err
		}

		for idx := range orderModels {
			if err := i.importOrder(ctx, repos, &orderModels[idx], country, products, customers); err != nil {
				return fmt.Errorf("order %s: %w", orderModels[idx].OrderID, err)
			}
		}
		return nil
	})
	if err != nil {
		i.logger.Error("Failed to import orders", zap.Error(err), zap.Int("batch_size", len(orderModels)))
		return err
	}

	i.logger.Info("Imported order batch",
		zap.Int("orders", len(orderModels)),
		zap.String("country", countryCode))
	return nil
}

// findCountry resolves the batch country once. A missing country is not
// fatal: orders are imported without a country reference, like any other
// reference-data miss.
func (i *OrderImporter) findCountry(ctx context.Context, repos TransactionalRepositories, code string) (*catalog.Country, error) {
	country, err := repos.CountryRepo().FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			i.logger.Warn("Country not found, orders will carry no country reference", zap.String("code", code))
			return nil, nil
		}
		return nil, fmt.Errorf("resolve country %s: %w", code, err)
	}
	return country, nil
}

// findProducts bulk-loads every product referenced by the batch into a
// code-keyed map. Codes without a matching product are simply absent.
func (i *OrderImporter) findProducts(ctx context.Context, repos TransactionalRepositories, orderModels []OrderModel) (map[string]*catalog.Product, error) {
	seen := make(map[string]struct{})
	var codes []string
	for _, model := range orderModels {
		for _, line := range model.Lines {
			if _, ok := seen[line.ProductCode]; ok {
				continue
			}
			seen[line.ProductCode] = struct{}{}
			codes = append(codes, line.ProductCode)
		}
	}

	found, err := repos.ProductRepo().FindByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("prefetch products: %w", err)
	}

	products := make(map[string]*catalog.Product, len(found))
	for idx := range found {
		products[found[idx].Code] = &found[idx]
	}
	return products, nil
}

// findCustomers bulk-loads every customer referenced by the batch into a
// map keyed by external customer id
func (i *OrderImporter) findCustomers(ctx context.Context, repos TransactionalRepositories, orderModels []OrderModel) (map[string]*eshop.Customer, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, model := range orderModels {
		if _, ok := seen[model.Customer.ExternalID]; ok {
			continue
		}
		seen[model.Customer.ExternalID] = struct{}{}
		ids = append(ids, model.Customer.ExternalID)
	}

	found, err := repos.CustomerRepo().FindByExternalIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("prefetch customers: %w", err)
	}

	customers := make(map[string]*eshop.Customer, len(found))
	for idx := range found {
		customers[found[idx].ExternalID] = &found[idx]
	}
	return customers, nil
}

// importOrder applies create-or-update semantics for one order model and
// all of its lines
func (i *OrderImporter) importOrder(
	ctx context.Context,
	repos TransactionalRepositories,
	model *OrderModel,
	country *catalog.Country,
	products map[string]*catalog.Product,
	customers map[string]*eshop.Customer,
) error {
	order, err := repos.OrderRepo().FindByOrderID(ctx, model.OrderID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	if order == nil {
		status, err := eshop.ParseOrderStatus(model.Status)
		if err != nil {
			return err
		}
		order, err = eshop.NewOrder(model.OrderID, status, model.Date)
		if err != nil {
			return err
		}
		order.ExtendedStatus = model.ExtendedStatus

		customer, ok := customers[model.Customer.ExternalID]
		if !ok {
			customer, err = i.createCustomer(ctx, repos, &model.Customer)
			if err != nil {
				return err
			}
			// cache the new customer so a later order in the same batch
			// referencing the same external id reuses it
			customers[customer.ExternalID] = customer
		}
		order.SetCustomer(customer.ID)
	}

	var countryID *uuid.UUID
	if country != nil {
		countryID = &country.ID
	}
	order.SetInvoice(model.InvoiceNumber, countryID)

	if err := repos.OrderRepo().Save(ctx, order); err != nil {
		return fmt.Errorf("save order: %w", err)
	}

	for idx := range model.Lines {
		if err := i.importLine(ctx, repos, order, &model.Lines[idx], products); err != nil {
			return fmt.Errorf("line %d: %w", model.Lines[idx].LineNumber, err)
		}
	}
	return nil
}

// importLine upserts a single order line. Lines whose product is not in the
// catalog are skipped without failing the batch; the skip is logged.
func (i *OrderImporter) importLine(
	ctx context.Context,
	repos TransactionalRepositories,
	order *eshop.Order,
	model *OrderLineModel,
	products map[string]*catalog.Product,
) error {
	product, ok := products[model.ProductCode]
	if !ok {
		i.logger.Info("Skipping line with unknown product",
			zap.String("order_id", order.OrderID),
			zap.Int("line_number", model.LineNumber),
			zap.String("product_code", model.ProductCode))
		return nil
	}

	line, err := repos.LineRepo().FindByOrderAndNumber(ctx, order.ID, model.LineNumber)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if line == nil {
		line = eshop.NewOrderLine(order.ID, model.LineNumber)
	}

	series, err := i.resolveSeries(ctx, model.ProductCode)
	if err != nil {
		return err
	}

	line.ProductID = product.ID
	line.ProductName = model.ProductName
	line.Quantity = model.Quantity
	line.Price = model.Price
	line.Discount = model.Discount
	line.Amount = model.Amount
	line.Vat = model.Vat
	line.VatAmount = model.VatAmount
	if series != nil {
		line.SeriesID = &series.ID
	} else {
		line.SeriesID = nil
	}
	line.UpdatedAt = time.Now()

	if err := repos.LineRepo().Save(ctx, line); err != nil {
		return fmt.Errorf("save line: %w", err)
	}

	order.AddLine(line)
	return nil
}

// createCustomer creates the customer referenced by an order on a prefetch
// miss. The repository is consulted once more before creating so a customer
// persisted outside the prefetch window is not duplicated.
func (i *OrderImporter) createCustomer(ctx context.Context, repos TransactionalRepositories, model *CustomerModel) (*eshop.Customer, error) {
	existing, err := repos.CustomerRepo().FindByExternalID(ctx, model.ExternalID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("find customer %s: %w", model.ExternalID, err)
	}

	customer, err := eshop.NewCustomer(model.ExternalID, model.FirstName, model.LastName)
	if err != nil {
		return nil, err
	}
	customer.SetContact(model.Phone, model.Email, model.Address)

	if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer %s: %w", model.ExternalID, err)
	}
	return customer, nil
}

// resolveSeries asks the series resolver for the optional product series of
// a line. The resolver owns the skip policy.
func (i *OrderImporter) resolveSeries(ctx context.Context, productCode string) (*catalog.ProductSeries, error) {
	lookup := eshop.SeriesLookup{ItemNo: productCode}
	if i.series.CanBeSkipped(lookup) {
		return nil, nil
	}
	if err := i.series.FetchLocalEntity(ctx, lookup); err != nil {
		return nil, fmt.Errorf("resolve series for %s: %w", productCode, err)
	}
	return i.series.LocalEntity(), nil
}
