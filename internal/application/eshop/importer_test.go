package eshopapp

import (
	"context"
	"testing"
	"time"

	"github.com/euroweb/backoffice/internal/domain/catalog"
	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory repositories backing the importer tests. They mirror the
// identity rules of the real store: orders are unique per external order id,
// lines per (order, line number), customers per external id.

type memoryStore struct {
	orders    map[string]*eshop.Order
	lines     map[uuid.UUID]map[int]*eshop.OrderLine
	customers map[string]*eshop.Customer
	products  map[string]*catalog.Product
	countries map[string]*catalog.Country

	customerSaves int
	orderSaves    int
	lineSaves     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:    make(map[string]*eshop.Order),
		lines:     make(map[uuid.UUID]map[int]*eshop.OrderLine),
		customers: make(map[string]*eshop.Customer),
		products:  make(map[string]*catalog.Product),
		countries: make(map[string]*catalog.Country),
	}
}

func (s *memoryStore) OrderRepo() eshop.OrderRepository { return &memoryOrderRepo{s} }

func (s *memoryStore) LineRepo() eshop.OrderLineRepository { return &memoryLineRepo{s} }

func (s *memoryStore) CustomerRepo() eshop.CustomerRepository { return &memoryCustomerRepo{s} }

func (s *memoryStore) ProductRepo() catalog.ProductRepository { return &memoryProductRepo{s} }

func (s *memoryStore) CountryRepo() catalog.CountryRepository { return &memoryCountryRepo{s} }

type memoryOrderRepo struct{ s *memoryStore }

func (r *memoryOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*eshop.Order, error) {
	for _, order := range r.s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryOrderRepo) FindByOrderID(ctx context.Context, orderID string) (*eshop.Order, error) {
	if order, ok := r.s.orders[orderID]; ok {
		return order, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryOrderRepo) Save(ctx context.Context, order *eshop.Order) error {
	r.s.orders[order.OrderID] = order
	r.s.orderSaves++
	return nil
}

type memoryLineRepo struct{ s *memoryStore }

func (r *memoryLineRepo) FindByOrderAndNumber(ctx context.Context, orderID uuid.UUID, lineNumber int) (*eshop.OrderLine, error) {
	if line, ok := r.s.lines[orderID][lineNumber]; ok {
		return line, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryLineRepo) Save(ctx context.Context, line *eshop.OrderLine) error {
	if r.s.lines[line.OrderID] == nil {
		r.s.lines[line.OrderID] = make(map[int]*eshop.OrderLine)
	}
	r.s.lines[line.OrderID][line.LineNumber] = line
	r.s.lineSaves++
	return nil
}

type memoryCustomerRepo struct{ s *memoryStore }

func (r *memoryCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*eshop.Customer, error) {
	for _, customer := range r.s.customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryCustomerRepo) FindByExternalID(ctx context.Context, externalID string) (*eshop.Customer, error) {
	if customer, ok := r.s.customers[externalID]; ok {
		return customer, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryCustomerRepo) FindByExternalIDs(ctx context.Context, externalIDs []string) ([]eshop.Customer, error) {
	var found []eshop.Customer
	for _, id := range externalIDs {
		if customer, ok := r.s.customers[id]; ok {
			found = append(found, *customer)
		}
	}
	return found, nil
}

func (r *memoryCustomerRepo) Save(ctx context.Context, customer *eshop.Customer) error {
	r.s.customers[customer.ExternalID] = customer
	r.s.customerSaves++
	return nil
}

type memoryProductRepo struct{ s *memoryStore }

func (r *memoryProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	for _, product := range r.s.products {
		if product.ID == id {
			return product, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryProductRepo) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	if product, ok := r.s.products[code]; ok {
		return product, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryProductRepo) FindByCodes(ctx context.Context, codes []string) ([]catalog.Product, error) {
	var found []catalog.Product
	for _, code := range codes {
		if product, ok := r.s.products[code]; ok {
			found = append(found, *product)
		}
	}
	return found, nil
}

type memoryCountryRepo struct{ s *memoryStore }

func (r *memoryCountryRepo) FindByCode(ctx context.Context, code string) (*catalog.Country, error) {
	if country, ok := r.s.countries[code]; ok {
		return country, nil
	}
	return nil, shared.ErrNotFound
}

// rollbackScope mimics transactional semantics over the memory store: when
// the batch fails, the store is restored to its pre-batch state.
type rollbackScope struct {
	store *memoryStore
}

func (s *rollbackScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	snapshot := *s.store
	snapshotOrders := make(map[string]*eshop.Order, len(s.store.orders))
	for k, v := range s.store.orders {
		snapshotOrders[k] = v
	}
	snapshotCustomers := make(map[string]*eshop.Customer, len(s.store.customers))
	for k, v := range s.store.customers {
		snapshotCustomers[k] = v
	}

	if err := fn(s.store); err != nil {
		*s.store = snapshot
		s.store.orders = snapshotOrders
		s.store.customers = snapshotCustomers
		return err
	}
	return nil
}

// noSeriesResolver skips every line
type noSeriesResolver struct{}

func (noSeriesResolver) CanBeSkipped(eshop.SeriesLookup) bool { return true }
func (noSeriesResolver) FetchLocalEntity(context.Context, eshop.SeriesLookup) error {
	return nil
}
func (noSeriesResolver) LocalEntity() *catalog.ProductSeries { return nil }

// fixedSeriesResolver resolves every prefixed line to one series
type fixedSeriesResolver struct {
	prefix string
	series *catalog.ProductSeries
}

func (r *fixedSeriesResolver) CanBeSkipped(lookup eshop.SeriesLookup) bool {
	return len(lookup.ItemNo) < len(r.prefix) || lookup.ItemNo[:len(r.prefix)] != r.prefix
}

func (r *fixedSeriesResolver) FetchLocalEntity(context.Context, eshop.SeriesLookup) error {
	return nil
}

func (r *fixedSeriesResolver) LocalEntity() *catalog.ProductSeries { return r.series }

func seedStore(t *testing.T) *memoryStore {
	t.Helper()
	store := newMemoryStore()

	country, err := catalog.NewCountry("SK", "Slovakia")
	require.NoError(t, err)
	store.countries["SK"] = country

	for _, spec := range []struct{ code, name string }{
		{"VH1001", "Vitamin C 500"},
		{"VH1002", "Vitamin D3"},
		{"KP2001", "Collagen Plus"},
	} {
		product, err := catalog.NewProduct(spec.code, spec.name, decimal.NewFromInt(10))
		require.NoError(t, err)
		store.products[spec.code] = product
	}
	return store
}

func newImporter(store *memoryStore, resolver eshop.SeriesResolver) *OrderImporter {
	return NewOrderImporter(&rollbackScope{store: store}, resolver, zap.NewNop())
}

func sampleOrder(orderID string) OrderModel {
	return OrderModel{
		OrderID:        orderID,
		Status:         "PAID",
		ExtendedStatus: "PAID_CARD",
		Date:           time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		InvoiceNumber:  "INV-" + orderID,
		Customer: CustomerModel{
			ExternalID: "CUST-7",
			FirstName:  "Jana",
			LastName:   "Novakova",
			Email:      "jana@example.com",
		},
		Lines: []OrderLineModel{
			{
				LineNumber:  1,
				ProductCode: "VH1001",
				ProductName: "Vitamin C 500",
				Quantity:    decimal.NewFromInt(2),
				Price:       decimal.NewFromInt(10),
				Amount:      decimal.NewFromInt(20),
				Vat:         decimal.NewFromInt(20),
				VatAmount:   decimal.NewFromInt(4),
			},
		},
	}
}

func TestImport_CreatesOrderWithCustomerAndLines(t *testing.T) {
	store := seedStore(t)
	importer := newImporter(store, noSeriesResolver{})

	err := importer.Import(context.Background(), []OrderModel{sampleOrder("ORD-1")}, "SK")
	require.NoError(t, err)

	order, ok := store.orders["ORD-1"]
	require.True(t, ok)
	assert.Equal(t, eshop.OrderStatusPaid, order.Status)
	assert.Equal(t, "PAID_CARD", order.ExtendedStatus)
	assert.Equal(t, "INV-ORD-1", order.InvoiceNumber)
	require.NotNil(t, order.CountryID)
	assert.Equal(t, store.countries["SK"].ID, *order.CountryID)

	customer, ok := store.customers["CUST-7"]
	require.True(t, ok)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, "jana@example.com", customer.Email)

	line := store.lines[order.ID][1]
	require.NotNil(t, line)
	assert.Equal(t, store.products["VH1001"].ID, line.ProductID)
	assert.True(t, line.Amount.Equal(decimal.NewFromInt(20)))
}

func TestImport_ReimportUpdatesInPlace(t *testing.T) {
	store := seedStore(t)
	importer := newImporter(store, noSeriesResolver{})

	first := sampleOrder("ORD-1")
	require.NoError(t, importer.Import(context.Background(), []OrderModel{first}, "SK"))

	order := store.orders["ORD-1"]
	originalOrderID := order.ID
	originalLineID := store.lines[order.ID][1].ID
	originalStatus := order.Status

	second := sampleOrder("ORD-1")
	second.Status = "CANCELLED" // status of an existing order is never touched
	second.InvoiceNumber = "INV-CORRECTED"
	second.Lines[0].Quantity = decimal.NewFromInt(5)
	second.Lines[0].Amount = decimal.NewFromInt(50)
	require.NoError(t, importer.Import(context.Background(), []OrderModel{second}, "SK"))

	order = store.orders["ORD-1"]
	assert.Equal(t, originalOrderID, order.ID)
	assert.Equal(t, originalStatus, order.Status)
	assert.Equal(t, "INV-CORRECTED", order.InvoiceNumber)

	line := store.lines[order.ID][1]
	assert.Equal(t, originalLineID, line.ID)
	assert.True(t, line.Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, line.Amount.Equal(decimal.NewFromInt(50)))

	// one customer, created once
	assert.Equal(t, 1, store.customerSaves)
}

func TestImport_SkipsLineWithUnknownProduct(t *testing.T) {
	store := seedStore(t)
	importer := newImporter(store, noSeriesResolver{})

	model := sampleOrder("ORD-1")
	model.Lines = append(model.Lines, OrderLineModel{
		LineNumber:  2,
		ProductCode: "GONE-1",
		ProductName: "Discontinued",
		Quantity:    decimal.NewFromInt(1),
	})

	err := importer.Import(context.Background(), []OrderModel{model}, "SK")
	require.NoError(t, err)

	order := store.orders["ORD-1"]
	assert.NotNil(t, store.lines[order.ID][1])
	assert.Nil(t, store.lines[order.ID][2])
}

func TestImport_UnknownStatusFailsWholeBatch(t *testing.T) {
	store := seedStore(t)
	importer := newImporter(store, noSeriesResolver{})

	good := sampleOrder("ORD-1")
	bad := sampleOrder("ORD-2")
	bad.Status = "TELEPORTED"

	err := importer.Import(context.Background(), []OrderModel{good, bad}, "SK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORD-2")

	// the good order rolled back with the bad one
	assert.Empty(t, store.orders)
	assert.Empty(t, store.customers)
}

func TestImport_SameBatchSharesNewCustomer(t *testing.T) {
	store := seedStore(t)
	importer := newImporter(store, noSeriesResolver{})

	first := sampleOrder("ORD-1")
	second := sampleOrder("ORD-2")

	err := importer.Import(context.Background(), []OrderModel{first, second}, "SK")
	require.NoError(t, err)

	assert.Equal(t, 1, store.customerSaves)
	assert.Equal(t, store.orders["ORD-1"].CustomerID, store.orders["ORD-2"].CustomerID)
}

func TestImport_MissingCountryIsNotFatal(t *testing.T) {
	store := seedStore(t)
	importer := newImporter(store, noSeriesResolver{})

	err := importer.Import(context.Background(), []OrderModel{sampleOrder("ORD-1")}, "XX")
	require.NoError(t, err)

	assert.Nil(t, store.orders["ORD-1"].CountryID)
}

func TestImport_ResolvesSeriesForPrefixedLines(t *testing.T) {
	store := seedStore(t)

	series, err := catalog.NewProductSeries("VH", "Vitamin House")
	require.NoError(t, err)
	importer := newImporter(store, &fixedSeriesResolver{prefix: "VH", series: series})

	model := sampleOrder("ORD-1")
	model.Lines = append(model.Lines, OrderLineModel{
		LineNumber:  2,
		ProductCode: "KP2001",
		ProductName: "Collagen Plus",
		Quantity:    decimal.NewFromInt(1),
	})

	require.NoError(t, importer.Import(context.Background(), []OrderModel{model}, "SK"))

	order := store.orders["ORD-1"]
	require.NotNil(t, store.lines[order.ID][1].SeriesID)
	assert.Equal(t, series.ID, *store.lines[order.ID][1].SeriesID)
	assert.Nil(t, store.lines[order.ID][2].SeriesID)
}

func TestImport_ExistingCustomerIsReused(t *testing.T) {
	store := seedStore(t)

	existing, err := eshop.NewCustomer("CUST-7", "Jana", "Novakova")
	require.NoError(t, err)
	store.customers["CUST-7"] = existing

	importer := newImporter(store, noSeriesResolver{})
	require.NoError(t, importer.Import(context.Background(), []OrderModel{sampleOrder("ORD-1")}, "SK"))

	assert.Equal(t, existing.ID, store.orders["ORD-1"].CustomerID)
	assert.Equal(t, 0, store.customerSaves)
}
