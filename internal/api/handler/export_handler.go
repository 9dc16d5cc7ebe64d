package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/core/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams entity tables as xlsx downloads.
type ExportHandler struct {
	service ports.ExportService
}

func NewExportHandler(service ports.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Products handles GET /api/export/products/excel.
//
// @Summary      Export products as a spreadsheet
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /export/products/excel [get]
func (h *ExportHandler) Products(c echo.Context) error {
	data, err := h.service.ProductsXLSX(c.Request().Context())
	if err != nil {
		return err
	}
	return h.attachment(c, "products.xlsx", data)
}

// Orders handles GET /api/export/orders/excel.
//
// @Summary      Export orders as a spreadsheet
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /export/orders/excel [get]
func (h *ExportHandler) Orders(c echo.Context) error {
	data, err := h.service.OrdersXLSX(c.Request().Context())
	if err != nil {
		return err
	}
	return h.attachment(c, "orders.xlsx", data)
}

func (h *ExportHandler) attachment(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
