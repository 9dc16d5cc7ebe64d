package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is returned by operations that confirm with a message
// rather than an entity body (deletes, logout).
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Stock       *int     `json:"stock"       validate:"required,gte=0"`
}

// updateProductRequest accepts any subset of the product fields. Nil means
// the field was absent and must be left unchanged; a pointer field is only
// validated when present.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
}
