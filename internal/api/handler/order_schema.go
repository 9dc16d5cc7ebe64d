package handler

// --- Request types ---

type createOrderRequest struct {
	UserID    string   `json:"user_id"    validate:"required"`
	ProductID string   `json:"product_id" validate:"required"`
	Status    string   `json:"status"     validate:"required,max=255"`
	Total     *float64 `json:"total"      validate:"required,gte=0"`
}

// updateOrderRequest accepts any subset of the order fields; a pointer
// field is only validated when present.
type updateOrderRequest struct {
	UserID    *string  `json:"user_id"`
	ProductID *string  `json:"product_id"`
	Status    *string  `json:"status" validate:"omitempty,max=255"`
	Total     *float64 `json:"total"  validate:"omitempty,gte=0"`
}
