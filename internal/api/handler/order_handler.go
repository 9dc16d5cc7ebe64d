package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /api/orders.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Create handles POST /api/orders. The user and product references are
// stored as given; they are not checked for existence.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Order
// @Failure      422   {object}  map[string]map[string]string
// @Failure      500   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Status:    req.Status,
		Total:     *req.Total,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

// Update handles PUT /api/orders/:id. Only the fields present in the
// payload are changed.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Fields to change"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  map[string]map[string]string
// @Failure      500   {object}  errorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.OrderUpdate{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Status:    req.Status,
		Total:     req.Total,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /api/orders/:id.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Order deleted successfully"})
}
