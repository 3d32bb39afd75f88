package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db querier
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return newVehicleRepository(db)
}

func newVehicleRepository(db querier) *vehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	query := `INSERT INTO vehicles (make, model, year, daily_rate_cents, status, passenger_capacity, engine_spec, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.Make, v.Model, v.Year, v.DailyRateCents, v.Status, v.PassengerCapacity, v.EngineSpec, time.Now()).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, make, model, year, daily_rate_cents, status, passenger_capacity, COALESCE(engine_spec, ''), created_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.DailyRateCents, &v.Status, &v.PassengerCapacity, &v.EngineSpec, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	query := `SELECT id, make, model, year, daily_rate_cents, status, passenger_capacity, COALESCE(engine_spec, ''), created_on
	          FROM vehicles WHERE status = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.DailyRateCents, &v.Status, &v.PassengerCapacity, &v.EngineSpec, &v.CreatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.VehicleStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE vehicles SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish a missing vehicle from one in the wrong state.
		var current domain.VehicleStatus
		err := r.db.QueryRowContext(ctx, `SELECT status FROM vehicles WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVehicleNotFound
		}
		if err != nil {
			return err
		}
		return domain.ErrVehicleUnavailable
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	var refs int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM leases WHERE vehicle_id = $1`, id).Scan(&refs); err != nil {
		return err
	}
	if domain.RejectDeleteWhenReferenced && refs > 0 {
		return domain.ErrReferencedEntity
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
