package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-movil-api/internal/application/catalog"
	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
)

// ProductHandler lectura del catálogo para la app móvil.
type ProductHandler struct {
	catalogUC *catalog.CatalogUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(catalogUC *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC}
}

// Search busca productos por nombre, SKU o barcode.
// GET /api/products/search
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	var req dto.ProductSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.catalogUC.Search(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID devuelve el detalle de un producto o variación.
// GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.catalogUC.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Variations lista las variaciones de un producto variable.
// GET /api/products/:id/variations
func (h *ProductHandler) Variations(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	variations, err := h.catalogUC.ListVariations(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"variations": variations})
}

// Managed lista los productos con gestión de stock habilitada.
// GET /api/products/managed
func (h *ProductHandler) Managed(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	products, err := h.catalogUC.ListManaged(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}
