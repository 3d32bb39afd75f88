package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

// querier is the subset of database/sql satisfied by both *sql.DB and
// *sql.Tx, so the same repositories can run standalone or inside a
// transaction started by WithinTx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db        *sql.DB
	vehicles  repository.VehicleRepository
	customers repository.CustomerRepository
	leases    repository.LeaseRepository
	payments  repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		vehicles:  newVehicleRepository(db),
		customers: newCustomerRepository(db),
		leases:    newLeaseRepository(db),
		payments:  newPaymentRepository(db),
	}
}

func (s *Store) Vehicles() repository.VehicleRepository   { return s.vehicles }
func (s *Store) Customers() repository.CustomerRepository { return s.customers }
func (s *Store) Leases() repository.LeaseRepository       { return s.leases }
func (s *Store) Payments() repository.PaymentRepository   { return s.payments }

// WithinTx executes fn against a transaction-scoped Store. Read-committed
// isolation is enough for the vehicle status flip because the flip itself
// is a conditional UPDATE; two competing leases for one vehicle cannot
// both see rows affected. Begin/commit failures surface as
// ErrStorageUnavailable; fn errors are returned unchanged after rollback.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrStorageUnavailable, err)
	}

	txStore := &Store{
		db:        s.db,
		vehicles:  newVehicleRepository(tx),
		customers: newCustomerRepository(tx),
		leases:    newLeaseRepository(tx),
		payments:  newPaymentRepository(tx),
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("%w: rollback after %v: %v", domain.ErrStorageUnavailable, err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
