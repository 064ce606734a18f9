package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func customerRows(ids ...string) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "external_id", "first_name", "last_name", "phone", "email", "address", "enabled"})
	for _, externalID := range ids {
		rows.AddRow(uuid.New(), now, now, externalID, "Jana", "Novakova", "", "jana@example.com", "", true)
	}
	return rows
}

func TestGormCustomerRepository_FindByExternalID(t *testing.T) {
	t.Run("finds existing customer", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "eshop_customers" WHERE external_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("CUST-7", 1).
			WillReturnRows(customerRows("CUST-7"))

		customer, err := repo.FindByExternalID(context.Background(), "CUST-7")

		require.NoError(t, err)
		assert.Equal(t, "CUST-7", customer.ExternalID)
		assert.Equal(t, "jana@example.com", customer.Email)
		assert.True(t, customer.Enabled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown external id", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "eshop_customers" WHERE external_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("NOPE", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		customer, err := repo.FindByExternalID(context.Background(), "NOPE")

		assert.Nil(t, customer)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCustomerRepository_FindByExternalIDs(t *testing.T) {
	t.Run("bulk-loads matching customers", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "eshop_customers" WHERE external_id IN \(\$1,\$2\)`).
			WithArgs("CUST-7", "CUST-8").
			WillReturnRows(customerRows("CUST-7", "CUST-8"))

		customers, err := repo.FindByExternalIDs(context.Background(), []string{"CUST-7", "CUST-8"})

		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "CUST-8", customers[1].ExternalID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input hits no query", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(gormDB)

		customers, err := repo.FindByExternalIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Nil(t, customers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_Save(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCustomerRepository(gormDB)

	customer, err := eshop.NewCustomer("CUST-7", "Jana", "Novakova")
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE "eshop_customers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(context.Background(), customer)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
