package service

import (
	"context"
	"log/slog"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"

	"github.com/google/uuid"
)

type paymentService struct {
	store repository.Store
	log   *slog.Logger
}

func NewPaymentService(store repository.Store) PaymentService {
	return &paymentService{
		store: store,
		log:   logger.WithService("payment"),
	}
}

// RecordPayment accepts any positive amount against an existing lease.
// There is no remaining-balance check; over-payment is the caller's policy
// decision.
func (s *paymentService) RecordPayment(ctx context.Context, leaseID int32, amountCents int32, method string) (*domain.Payment, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	payment := &domain.Payment{
		LeaseID:     leaseID,
		AmountCents: amountCents,
		Method:      method,
		Reference:   uuid.New().String(),
	}
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Leases().GetByID(ctx, leaseID); err != nil {
			return err
		}
		return tx.Payments().Create(ctx, payment)
	})
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "Payment recorded", "payment_id", payment.ID, "lease_id", leaseID, "amount_cents", amountCents)
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, leaseID int32) ([]domain.Payment, error) {
	if _, err := s.store.Leases().GetByID(ctx, leaseID); err != nil {
		return nil, err
	}
	return s.store.Payments().ListByLease(ctx, leaseID)
}
