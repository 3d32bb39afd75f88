package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListRentedVehicles(ctx context.Context) ([]domain.Vehicle, error)
	RemoveVehicle(ctx context.Context, id int32) error
}

type CustomerService interface {
	AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	RemoveCustomer(ctx context.Context, id int32) error
}

type LeaseService interface {
	CreateLease(ctx context.Context, customerID, vehicleID int32, startDate, endDate time.Time, leaseType string) (*domain.Lease, error)
	// CreateLeaseWithPayment creates the lease and records the first payment
	// as one atomic unit; a payment failure leaves no lease behind and the
	// vehicle stays available.
	CreateLeaseWithPayment(ctx context.Context, customerID, vehicleID int32, startDate, endDate time.Time, leaseType string, amountCents int32, method string) (*domain.Lease, *domain.Payment, error)
	ReturnCar(ctx context.Context, leaseID int32) (*domain.Lease, error)
	GetLease(ctx context.Context, leaseID int32) (*domain.Lease, error)
	ListLeaseHistory(ctx context.Context) ([]domain.Lease, error)
	ListActiveLeases(ctx context.Context) ([]domain.Lease, error)
	// LeaseTotalCents derives the total from the lease's snapshotted daily
	// rate; it is never stored.
	LeaseTotalCents(lease *domain.Lease) (int32, error)
}

type PaymentService interface {
	RecordPayment(ctx context.Context, leaseID int32, amountCents int32, method string) (*domain.Payment, error)
	ListPayments(ctx context.Context, leaseID int32) ([]domain.Payment, error)
}
