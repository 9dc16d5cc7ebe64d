package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storekit/commerce-api/internal/api/metrics"
	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// ProductService implements catalogue CRUD on top of a ProductRepository.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")

	return created, nil
}

// Update applies a partial update. An empty update is a no-op that returns
// the stored product unchanged.
func (s *ProductService) Update(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	if update.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("product").Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
