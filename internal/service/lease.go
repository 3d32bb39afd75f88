package service

import (
	"context"
	"log/slog"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"

	"github.com/google/uuid"
)

type leaseService struct {
	store repository.Store
	log   *slog.Logger
}

func NewLeaseService(store repository.Store) LeaseService {
	return &leaseService{
		store: store,
		log:   logger.WithService("lease"),
	}
}

func (s *leaseService) CreateLease(ctx context.Context, customerID, vehicleID int32, startDate, endDate time.Time, leaseType string) (*domain.Lease, error) {
	var lease *domain.Lease
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		lease, err = s.createLeaseIn(ctx, tx, customerID, vehicleID, startDate, endDate, leaseType)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "Lease created", "lease_id", lease.ID, "customer_id", customerID, "vehicle_id", vehicleID)
	return lease, nil
}

func (s *leaseService) CreateLeaseWithPayment(ctx context.Context, customerID, vehicleID int32, startDate, endDate time.Time, leaseType string, amountCents int32, method string) (*domain.Lease, *domain.Payment, error) {
	if amountCents <= 0 {
		return nil, nil, domain.ErrInvalidAmount
	}

	var (
		lease   *domain.Lease
		payment *domain.Payment
	)
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		lease, err = s.createLeaseIn(ctx, tx, customerID, vehicleID, startDate, endDate, leaseType)
		if err != nil {
			return err
		}
		payment = &domain.Payment{
			LeaseID:     lease.ID,
			AmountCents: amountCents,
			Method:      method,
			Reference:   uuid.New().String(),
		}
		return tx.Payments().Create(ctx, payment)
	})
	if err != nil {
		return nil, nil, err
	}
	s.log.InfoContext(ctx, "Lease created with payment", "lease_id", lease.ID, "payment_id", payment.ID, "amount_cents", amountCents)
	return lease, payment, nil
}

// createLeaseIn holds the lease-creation unit of work; it must run inside
// a transaction-scoped store so the vehicle status flip and the lease row
// become visible together.
func (s *leaseService) createLeaseIn(ctx context.Context, tx repository.Store, customerID, vehicleID int32, startDate, endDate time.Time, leaseType string) (*domain.Lease, error) {
	if _, err := utils.LeaseDays(startDate, endDate); err != nil {
		return nil, err
	}

	if _, err := tx.Customers().GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	// Conditional status flip doubles as the availability check: zero rows
	// affected means the vehicle is missing or already rented.
	if err := tx.Vehicles().UpdateStatus(ctx, vehicleID, domain.VehicleStatusAvailable, domain.VehicleStatusRented); err != nil {
		return nil, err
	}

	vehicle, err := tx.Vehicles().GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	lease := &domain.Lease{
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		StartDate:      startDate,
		EndDate:        endDate,
		LeaseType:      leaseType,
		Status:         domain.LeaseStatusActive,
		DailyRateCents: vehicle.DailyRateCents,
	}
	if err := tx.Leases().Create(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

func (s *leaseService) ReturnCar(ctx context.Context, leaseID int32) (*domain.Lease, error) {
	var lease *domain.Lease
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		l, err := tx.Leases().GetByID(ctx, leaseID)
		if err != nil {
			return err
		}
		if !l.IsOpen() {
			return domain.ErrLeaseAlreadyClosed
		}

		now := time.Now()
		if err := tx.Leases().Close(ctx, l.ID, now); err != nil {
			return err
		}
		if err := tx.Vehicles().UpdateStatus(ctx, l.VehicleID, domain.VehicleStatusRented, domain.VehicleStatusAvailable); err != nil {
			return err
		}

		l.Status = domain.LeaseStatusClosed
		l.ClosedOn = &now
		lease = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "Lease closed", "lease_id", lease.ID, "vehicle_id", lease.VehicleID)
	return lease, nil
}

func (s *leaseService) GetLease(ctx context.Context, leaseID int32) (*domain.Lease, error) {
	return s.store.Leases().GetByID(ctx, leaseID)
}

func (s *leaseService) ListLeaseHistory(ctx context.Context) ([]domain.Lease, error) {
	return s.store.Leases().ListAll(ctx)
}

func (s *leaseService) ListActiveLeases(ctx context.Context) ([]domain.Lease, error) {
	return s.store.Leases().ListActive(ctx)
}

func (s *leaseService) LeaseTotalCents(lease *domain.Lease) (int32, error) {
	return utils.LeaseTotalCents(lease.DailyRateCents, lease.StartDate, lease.EndDate)
}
