package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storekit/commerce-api/internal/api/metrics"
	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// OrderService implements order CRUD on top of an OrderRepository.
// References on an order (user_id, product_id) are stored as given; the
// schema carries no foreign-key integrity and deletes never cascade.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Status:    input.Status,
		Total:     input.Total,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().Str("order_id", created.ID).Str("status", created.Status).Msg("order created")

	return created, nil
}

// Update applies a partial update. An empty update is a no-op that returns
// the stored order unchanged.
func (s *OrderService) Update(ctx context.Context, id string, update ports.OrderUpdate) (*domain.Order, error) {
	if update.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Msg("order updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("order").Inc()
	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
