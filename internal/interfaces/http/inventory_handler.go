package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/application/inventory"
	"github.com/jhoicas/pos-movil-api/internal/domain"
)

// InventoryHandler ajustes por lotes, actualización directa de stock e historia.
type InventoryHandler struct {
	adjustmentUC *inventory.AdjustmentUseCase
	stockUC      *inventory.StockUpdateUseCase
	historyUC    *inventory.HistoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	adjustmentUC *inventory.AdjustmentUseCase,
	stockUC *inventory.StockUpdateUseCase,
	historyUC *inventory.HistoryUseCase,
) *InventoryHandler {
	return &InventoryHandler{adjustmentUC: adjustmentUC, stockUC: stockUC, historyUC: historyUC}
}

// SubmitAdjustment procesa un lote de ajuste todo-o-nada.
// POST /api/inventory/adjustments
func (h *InventoryHandler) SubmitAdjustment(c *fiber.Ctx) error {
	var req dto.SubmitAdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}

	if err := h.adjustmentUC.SubmitAdjustment(c.Context(), deviceUUID(c), req.Movement); err != nil {
		return respondError(c, err)
	}

	log.Info().Str("movement_id", req.Movement.ID).Str("reason", req.Movement.Type).
		Int("items", len(req.Movement.Items)).Msg("ajuste de inventario aplicado")
	return c.JSON(fiber.Map{"status": "success", "movement_id": req.Movement.ID})
}

// UpdateStock aplica actualizaciones directas de stock por ítem; fallos
// individuales viajan en la respuesta. Con algún fallo responde 500 con el
// detalle completo para que la app decida qué reintentar.
// POST /api/inventory/stock
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var req dto.StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if len(req.Updates) == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}

	resp := h.stockUC.UpdateStock(c.Context(), req.Updates)
	if resp.HasFailures() {
		log.Warn().Int("failures", len(resp.Failures)).Int("successes", len(resp.Successes)).
			Msg("actualización de stock con fallos parciales")
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
	return c.JSON(resp)
}

// History devuelve los movimientos recientes agrupados por movimiento.
// GET /api/inventory/history
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	movements, err := h.historyUC.ListRecent(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"movements": movements})
}
