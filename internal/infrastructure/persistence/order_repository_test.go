package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func orderRows(id uuid.UUID, orderID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "order_id", "status", "extended_status", "date", "invoice_number", "country_id", "customer_id"}).
		AddRow(id, now, now, orderID, "PAID", "PAID_CARD", now, "INV-1", nil, uuid.New())
}

func lineRows(orderID uuid.UUID, lineNumbers ...int) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "order_id", "line_number", "product_id", "product_name", "quantity", "price", "discount", "amount", "vat", "vat_amount", "series_id", "updated_at"})
	for _, n := range lineNumbers {
		rows.AddRow(uuid.New(), orderID, n, uuid.New(), "Vitamin C 500",
			decimal.NewFromInt(2), decimal.NewFromInt(10), decimal.Zero,
			decimal.NewFromInt(20), decimal.NewFromInt(20), decimal.NewFromInt(4),
			nil, time.Now())
	}
	return rows
}

func TestGormOrderRepository_FindByOrderID(t *testing.T) {
	t.Run("finds order with its lines", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		orderUUID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "eshop_orders" WHERE order_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ORD-1001", 1).
			WillReturnRows(orderRows(orderUUID, "ORD-1001"))
		mock.ExpectQuery(`SELECT \* FROM "eshop_order_lines" WHERE "eshop_order_lines"."order_id" = \$1`).
			WithArgs(orderUUID).
			WillReturnRows(lineRows(orderUUID, 1, 2))

		order, err := repo.FindByOrderID(context.Background(), "ORD-1001")

		require.NoError(t, err)
		assert.Equal(t, "ORD-1001", order.OrderID)
		assert.Equal(t, eshop.OrderStatusPaid, order.Status)
		require.Len(t, order.Lines, 2)
		assert.Equal(t, 2, order.Lines[1].LineNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown order id", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "eshop_orders" WHERE order_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("NOPE", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.FindByOrderID(context.Background(), "NOPE")

		assert.Nil(t, order)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormOrderRepository_Save(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	order, err := eshop.NewOrder("ORD-1001", eshop.OrderStatusNew, time.Now())
	require.NoError(t, err)
	order.SetCustomer(uuid.New())

	mock.ExpectExec(`UPDATE "eshop_orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(context.Background(), order)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderLineRepository_FindByOrderAndNumber(t *testing.T) {
	t.Run("finds line by composite identity", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderLineRepository(gormDB)

		orderUUID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "eshop_order_lines" WHERE order_id = \$1 AND line_number = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(orderUUID, 3, 1).
			WillReturnRows(lineRows(orderUUID, 3))

		line, err := repo.FindByOrderAndNumber(context.Background(), orderUUID, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, line.LineNumber)
		assert.Equal(t, orderUUID, line.OrderID)
		assert.True(t, line.Quantity.Equal(decimal.NewFromInt(2)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing line", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderLineRepository(gormDB)

		orderUUID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "eshop_order_lines" WHERE order_id = \$1 AND line_number = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(orderUUID, 9, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		line, err := repo.FindByOrderAndNumber(context.Background(), orderUUID, 9)

		assert.Nil(t, line)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
