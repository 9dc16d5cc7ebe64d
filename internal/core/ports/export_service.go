package ports

import "context"

// ExportService renders entity tables as downloadable spreadsheets.
// The whole result set is built in memory before streaming; acceptable
// while the tables stay small.
type ExportService interface {
	ProductsXLSX(ctx context.Context) ([]byte, error)
	OrdersXLSX(ctx context.Context) ([]byte, error)
}
