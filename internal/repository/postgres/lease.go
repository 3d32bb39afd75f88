package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type leaseRepository struct {
	db querier
}

func NewLeaseRepository(db *sql.DB) repository.LeaseRepository {
	return newLeaseRepository(db)
}

func newLeaseRepository(db querier) *leaseRepository {
	return &leaseRepository{db: db}
}

const leaseColumns = `id, customer_id, vehicle_id, start_date, end_date, COALESCE(lease_type, ''), status, daily_rate_cents, created_on, closed_on`

func (r *leaseRepository) Create(ctx context.Context, l *domain.Lease) error {
	if l.Status == "" {
		l.Status = domain.LeaseStatusActive
	}
	query := `INSERT INTO leases (customer_id, vehicle_id, start_date, end_date, lease_type, status, daily_rate_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.CustomerID, l.VehicleID, l.StartDate, l.EndDate, l.LeaseType, l.Status, l.DailyRateCents, time.Now()).Scan(&l.ID)
}

func (r *leaseRepository) GetByID(ctx context.Context, id int32) (*domain.Lease, error) {
	l := &domain.Lease{}
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.CustomerID, &l.VehicleID, &l.StartDate, &l.EndDate, &l.LeaseType, &l.Status, &l.DailyRateCents, &l.CreatedOn, &l.ClosedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLeaseNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *leaseRepository) Close(ctx context.Context, id int32, closedOn time.Time) error {
	query := `UPDATE leases SET status = $1, closed_on = $2 WHERE id = $3 AND status = $4`
	result, err := r.db.ExecContext(ctx, query, domain.LeaseStatusClosed, closedOn, id, domain.LeaseStatusActive)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var status domain.LeaseStatus
		err := r.db.QueryRowContext(ctx, `SELECT status FROM leases WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrLeaseNotFound
		}
		if err != nil {
			return err
		}
		return domain.ErrLeaseAlreadyClosed
	}
	return nil
}

func (r *leaseRepository) ListAll(ctx context.Context) ([]domain.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases ORDER BY id ASC`
	return r.queryLeases(ctx, query)
}

func (r *leaseRepository) ListActive(ctx context.Context) ([]domain.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE status = 'ACTIVE' ORDER BY id ASC`
	return r.queryLeases(ctx, query)
}

func (r *leaseRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE status = 'ACTIVE' AND end_date < $1 ORDER BY id ASC`
	return r.queryLeases(ctx, query, asOf)
}

func (r *leaseRepository) queryLeases(ctx context.Context, query string, args ...interface{}) ([]domain.Lease, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []domain.Lease
	for rows.Next() {
		var l domain.Lease
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.VehicleID, &l.StartDate, &l.EndDate, &l.LeaseType, &l.Status, &l.DailyRateCents, &l.CreatedOn, &l.ClosedOn); err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, rows.Err()
}
