package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// CreateOrderInput carries all data needed to create a new order.
// UserID and ProductID are opaque references; they are stored as given
// and never validated against their referents.
type CreateOrderInput struct {
	UserID    string
	ProductID string
	Status    string
	Total     float64
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	List(ctx context.Context) ([]*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	Update(ctx context.Context, id string, update OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
