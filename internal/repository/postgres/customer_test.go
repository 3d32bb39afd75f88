package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCustomerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		customer := &domain.Customer{
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@example.com",
			Phone:     "555-0100",
		}

		mock.ExpectQuery("INSERT INTO customers").
			WithArgs(customer.FirstName, customer.LastName, customer.Email, customer.Phone, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, customer)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), customer.ID)
	})
}

func TestCustomerRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnError(sql.ErrNoRows)

		customer, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
		assert.Nil(t, customer)
	})
}

func TestCustomerRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "created_on"}).
			AddRow(1, "Asha", "Rao", "asha@example.com", "555-0100", time.Now()).
			AddRow(2, "Ben", "Lee", "ben@example.com", "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM customers ORDER BY id ASC").
			WillReturnRows(rows)

		customers, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, customers, 2)
		assert.Equal(t, "Asha", customers[0].FirstName)
	})
}

func TestCustomerRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Referenced", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM leases WHERE customer_id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.Delete(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrReferencedEntity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM leases WHERE customer_id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("DELETE FROM customers WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, 2)
		assert.NoError(t, err)
	})
}
