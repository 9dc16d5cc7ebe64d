package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// Order references a user and a product by id. Neither reference is
// validated for existence and deleting a product does not cascade to the
// orders pointing at it.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
