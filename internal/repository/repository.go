package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
	// UpdateStatus flips the vehicle status only when the current status
	// matches from. A missing vehicle yields ErrVehicleNotFound, a status
	// mismatch ErrVehicleUnavailable.
	UpdateStatus(ctx context.Context, id int32, from, to domain.VehicleStatus) error
	// Delete removes the vehicle unless any lease row, open or closed,
	// references it (ErrReferencedEntity).
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id int32) error
}

type LeaseRepository interface {
	Create(ctx context.Context, lease *domain.Lease) error
	GetByID(ctx context.Context, id int32) (*domain.Lease, error)
	// Close flips an ACTIVE lease to CLOSED and stamps closed_on.
	Close(ctx context.Context, id int32, closedOn time.Time) error
	ListAll(ctx context.Context) ([]domain.Lease, error)
	ListActive(ctx context.Context) ([]domain.Lease, error)
	// ListOverdue returns open leases whose end date has passed as of the
	// given day.
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Lease, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByLease(ctx context.Context, leaseID int32) ([]domain.Payment, error)
}

// Store bundles the repositories behind a single transactional boundary.
// WithinTx runs fn against a Store whose repositories share one database
// transaction: if fn returns an error everything rolls back and the
// original error is returned, otherwise the transaction commits before
// WithinTx returns.
type Store interface {
	Vehicles() VehicleRepository
	Customers() CustomerRepository
	Leases() LeaseRepository
	Payments() PaymentRepository
	WithinTx(ctx context.Context, fn func(Store) error) error
}
