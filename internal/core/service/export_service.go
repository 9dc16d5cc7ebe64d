package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/storekit/commerce-api/internal/api/metrics"
	"github.com/storekit/commerce-api/internal/core/ports"
)

var productHeadings = []string{"ID", "Name", "Description", "Price", "Stock", "Created At"}
var orderHeadings = []string{"ID", "User ID", "Product ID", "Status", "Total", "Created At"}

// ExportService renders the product and order tables as xlsx workbooks.
// The full result set is held in memory before serialization; the tables
// are assumed small.
type ExportService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	logger   zerolog.Logger
}

func NewExportService(products ports.ProductRepository, orders ports.OrderRepository, logger zerolog.Logger) *ExportService {
	return &ExportService{products: products, orders: orders, logger: logger}
}

func (s *ExportService) ProductsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}

	rows := make([][]any, 0, len(products))
	for _, p := range products {
		description := ""
		if p.Description != nil {
			description = *p.Description
		}
		rows = append(rows, []any{
			p.ID, p.Name, description, p.Price, p.Stock, p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := writeWorkbook(productHeadings, rows)
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}

	metrics.ExportsGeneratedTotal.WithLabelValues("products").Inc()
	metrics.ExportDuration.WithLabelValues("products").Observe(time.Since(start).Seconds())
	s.logger.Info().Int("rows", len(rows)).Msg("products exported")

	return data, nil
}

func (s *ExportService) OrdersXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}

	rows := make([][]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []any{
			o.ID, o.UserID, o.ProductID, o.Status, o.Total, o.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := writeWorkbook(orderHeadings, rows)
	if err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}

	metrics.ExportsGeneratedTotal.WithLabelValues("orders").Inc()
	metrics.ExportDuration.WithLabelValues("orders").Observe(time.Since(start).Seconds())
	s.logger.Info().Int("rows", len(rows)).Msg("orders exported")

	return data, nil
}

// writeWorkbook builds a single-sheet workbook: one header row followed by
// one row per entity, columns in heading order.
func writeWorkbook(headings []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)

	header := make([]any, len(headings))
	for i, h := range headings {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
