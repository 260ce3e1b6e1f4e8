package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/application/orders"
	"github.com/jhoicas/pos-movil-api/internal/domain"
)

// OrderHandler listado de pedidos y cambio de estado.
type OrderHandler struct {
	orderUC *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(orderUC *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// List devuelve pedidos con filtro por estado y búsqueda.
// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var req dto.OrderListRequest
	if err := c.QueryParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.orderUC.List(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus cambia el estado de un pedido.
// PUT /api/orders/:id
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}

	resp, err := h.orderUC.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	log.Info().Int64("order_id", id).Str("status", req.Status).Msg("estado de pedido actualizado")
	return c.JSON(resp)
}
