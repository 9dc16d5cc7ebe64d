package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// ProductUpdate carries the fields present in a partial update.
// A nil field was absent from the payload and must be left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Stock == nil
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Update applies the present fields and returns the updated product.
	// Returns domain.ErrProductNotFound when id is absent.
	Update(ctx context.Context, id string, u ProductUpdate) (*domain.Product, error)
	// Delete removes the product permanently (hard delete).
	Delete(ctx context.Context, id string) error
}
