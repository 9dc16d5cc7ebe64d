package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a new product.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       float64
	Stock       int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
