package service

import (
	"context"
	"log/slog"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type vehicleService struct {
	store repository.Store
	log   *slog.Logger
}

func NewVehicleService(store repository.Store) VehicleService {
	return &vehicleService{
		store: store,
		log:   logger.WithService("vehicle"),
	}
}

func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if vehicle.DailyRateCents < 0 {
		return nil, domain.ErrInvalidAmount
	}
	vehicle.Status = domain.VehicleStatusAvailable
	if err := s.store.Vehicles().Create(ctx, vehicle); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "Vehicle added", "vehicle_id", vehicle.ID, "make", vehicle.Make, "model", vehicle.Model)
	return vehicle, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.store.Vehicles().GetByID(ctx, id)
}

func (s *vehicleService) ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.store.Vehicles().ListByStatus(ctx, domain.VehicleStatusAvailable)
}

func (s *vehicleService) ListRentedVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.store.Vehicles().ListByStatus(ctx, domain.VehicleStatusRented)
}

// RemoveVehicle runs the referenced-entity check and the delete in one
// transaction so a lease created in between cannot orphan itself.
func (s *vehicleService) RemoveVehicle(ctx context.Context, id int32) error {
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.Vehicles().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "Vehicle removed", "vehicle_id", id)
	return nil
}
