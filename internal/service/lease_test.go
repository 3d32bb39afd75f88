package service

import (
	"context"
	"testing"
	"time"

	"carrental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateLease_Success(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	customer := &domain.Customer{ID: 1, FirstName: "Asha", LastName: "Rao"}
	vehicle := &domain.Vehicle{ID: 2, Make: "Tata", Model: "SUV", DailyRateCents: 50000, Status: domain.VehicleStatusRented}

	store.customers.On("GetByID", ctx, int32(1)).Return(customer, nil)
	store.vehicles.On("UpdateStatus", ctx, int32(2), domain.VehicleStatusAvailable, domain.VehicleStatusRented).Return(nil)
	store.vehicles.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
	store.leases.On("Create", ctx, mock.AnythingOfType("*domain.Lease")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Lease).ID = 10
		}).
		Return(nil)

	lease, err := svc.CreateLease(ctx, 1, 2, date(2024, 1, 1), date(2024, 1, 3), "DailyLease")

	assert.NoError(t, err)
	assert.Equal(t, int32(10), lease.ID)
	assert.Equal(t, domain.LeaseStatusActive, lease.Status)
	// Rate is snapshotted from the vehicle at creation time.
	assert.Equal(t, int32(50000), lease.DailyRateCents)
	store.vehicles.AssertExpectations(t)
	store.leases.AssertExpectations(t)
}

func TestCreateLease_InvalidDateRange(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	lease, err := svc.CreateLease(ctx, 1, 2, date(2024, 1, 5), date(2024, 1, 1), "DailyLease")

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Nil(t, lease)
	store.customers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	store.vehicles.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLease_CustomerNotFound(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	store.customers.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrCustomerNotFound)

	lease, err := svc.CreateLease(ctx, 99, 2, date(2024, 1, 1), date(2024, 1, 3), "DailyLease")

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Nil(t, lease)
	store.vehicles.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLease_VehicleUnavailable(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	customer := &domain.Customer{ID: 1}
	store.customers.On("GetByID", ctx, int32(1)).Return(customer, nil)
	store.vehicles.On("UpdateStatus", ctx, int32(2), domain.VehicleStatusAvailable, domain.VehicleStatusRented).
		Return(domain.ErrVehicleUnavailable)

	lease, err := svc.CreateLease(ctx, 1, 2, date(2024, 1, 1), date(2024, 1, 3), "DailyLease")

	assert.ErrorIs(t, err, domain.ErrVehicleUnavailable)
	assert.Nil(t, lease)
	store.leases.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeaseWithPayment_Success(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	customer := &domain.Customer{ID: 1}
	vehicle := &domain.Vehicle{ID: 2, DailyRateCents: 50000}

	store.customers.On("GetByID", ctx, int32(1)).Return(customer, nil)
	store.vehicles.On("UpdateStatus", ctx, int32(2), domain.VehicleStatusAvailable, domain.VehicleStatusRented).Return(nil)
	store.vehicles.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
	store.leases.On("Create", ctx, mock.AnythingOfType("*domain.Lease")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Lease).ID = 10
		}).
		Return(nil)
	store.payments.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Payment).ID = 7
		}).
		Return(nil)

	lease, payment, err := svc.CreateLeaseWithPayment(ctx, 1, 2, date(2024, 1, 1), date(2024, 1, 3), "DailyLease", 150000, "Card")

	assert.NoError(t, err)
	assert.Equal(t, int32(10), lease.ID)
	assert.Equal(t, int32(10), payment.LeaseID)
	assert.Equal(t, int32(150000), payment.AmountCents)
	assert.NotEmpty(t, payment.Reference)
	store.payments.AssertExpectations(t)
}

func TestCreateLeaseWithPayment_InvalidAmount(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	lease, payment, err := svc.CreateLeaseWithPayment(ctx, 1, 2, date(2024, 1, 1), date(2024, 1, 3), "DailyLease", 0, "Card")

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Nil(t, lease)
	assert.Nil(t, payment)
	store.customers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestReturnCar_Success(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	active := &domain.Lease{
		ID:         10,
		CustomerID: 1,
		VehicleID:  2,
		Status:     domain.LeaseStatusActive,
	}

	store.leases.On("GetByID", ctx, int32(10)).Return(active, nil)
	store.leases.On("Close", ctx, int32(10), mock.AnythingOfType("time.Time")).Return(nil)
	store.vehicles.On("UpdateStatus", ctx, int32(2), domain.VehicleStatusRented, domain.VehicleStatusAvailable).Return(nil)

	lease, err := svc.ReturnCar(ctx, 10)

	assert.NoError(t, err)
	assert.Equal(t, domain.LeaseStatusClosed, lease.Status)
	assert.NotNil(t, lease.ClosedOn)
	store.leases.AssertExpectations(t)
	store.vehicles.AssertExpectations(t)
}

func TestReturnCar_AlreadyClosed(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	closedOn := date(2024, 1, 5)
	closed := &domain.Lease{
		ID:        10,
		VehicleID: 2,
		Status:    domain.LeaseStatusClosed,
		ClosedOn:  &closedOn,
	}

	store.leases.On("GetByID", ctx, int32(10)).Return(closed, nil)

	lease, err := svc.ReturnCar(ctx, 10)

	assert.ErrorIs(t, err, domain.ErrLeaseAlreadyClosed)
	assert.Nil(t, lease)
	store.leases.AssertNotCalled(t, "Close", mock.Anything, mock.Anything, mock.Anything)
	store.vehicles.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReturnCar_LeaseNotFound(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	store.leases.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrLeaseNotFound)

	lease, err := svc.ReturnCar(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrLeaseNotFound)
	assert.Nil(t, lease)
}

func TestLeaseTotalCents(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)

	lease := &domain.Lease{
		StartDate:      date(2024, 1, 1),
		EndDate:        date(2024, 1, 3),
		DailyRateCents: 50000,
	}

	total, err := svc.LeaseTotalCents(lease)
	assert.NoError(t, err)
	assert.Equal(t, int32(150000), total)
}

func TestListActiveLeases(t *testing.T) {
	store := newMockStore()
	svc := NewLeaseService(store)
	ctx := context.Background()

	store.leases.On("ListActive", ctx).Return([]domain.Lease{{ID: 1}, {ID: 4}}, nil)

	leases, err := svc.ListActiveLeases(ctx)
	assert.NoError(t, err)
	assert.Len(t, leases, 2)
}
