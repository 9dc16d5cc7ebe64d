package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// OrderUpdate carries the fields present in a partial update.
// A nil field was absent from the payload and must be left unchanged.
type OrderUpdate struct {
	UserID    *string
	ProductID *string
	Status    *string
	Total     *float64
}

// IsEmpty reports whether the update carries no fields at all.
func (u OrderUpdate) IsEmpty() bool {
	return u.UserID == nil && u.ProductID == nil && u.Status == nil && u.Total == nil
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	List(ctx context.Context) ([]*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, id string, u OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
