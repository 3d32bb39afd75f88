package service

import (
	"context"
	"log/slog"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type customerService struct {
	store repository.Store
	log   *slog.Logger
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{
		store: store,
		log:   logger.WithService("customer"),
	}
}

func (s *customerService) AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.store.Customers().Create(ctx, customer); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "Customer added", "customer_id", customer.ID)
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.store.Customers().GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.store.Customers().List(ctx)
}

func (s *customerService) RemoveCustomer(ctx context.Context, id int32) error {
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.Customers().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "Customer removed", "customer_id", id)
	return nil
}
