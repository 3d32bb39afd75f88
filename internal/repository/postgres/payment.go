package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type paymentRepository struct {
	db querier
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return newPaymentRepository(db)
}

func newPaymentRepository(db querier) *paymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (lease_id, amount_cents, method, reference, paid_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if p.PaidOn.IsZero() {
		p.PaidOn = time.Now()
	}
	return r.db.QueryRowContext(ctx, query, p.LeaseID, p.AmountCents, p.Method, p.Reference, p.PaidOn).Scan(&p.ID)
}

func (r *paymentRepository) ListByLease(ctx context.Context, leaseID int32) ([]domain.Payment, error) {
	query := `SELECT id, lease_id, amount_cents, COALESCE(method, ''), reference, paid_on
	          FROM payments WHERE lease_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, leaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.LeaseID, &p.AmountCents, &p.Method, &p.Reference, &p.PaidOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
