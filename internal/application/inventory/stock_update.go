package inventory

import (
	"context"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

// StockUpdateUseCase actualización directa de stock por ítem: cada update se
// aplica de forma independiente y los fallos se colectan sin bloquear al
// resto (a diferencia del lote de ajuste, que es todo-o-nada).
type StockUpdateUseCase struct {
	productRepo repository.ProductRepository
}

// NewStockUpdateUseCase construye el caso de uso.
func NewStockUpdateUseCase(productRepo repository.ProductRepository) *StockUpdateUseCase {
	return &StockUpdateUseCase{productRepo: productRepo}
}

// UpdateStock aplica cada update y devuelve éxitos y fallos por ítem.
// No devuelve error: los fallos de ítems viajan en la respuesta.
func (uc *StockUpdateUseCase) UpdateStock(_ context.Context, updates []dto.StockUpdateItem) *dto.StockUpdateResponse {
	resp := &dto.StockUpdateResponse{
		Status:    "completed",
		Successes: []dto.StockUpdateSuccess{},
		Failures:  []dto.StockUpdateFailure{},
	}

	for _, u := range updates {
		id := u.ProductID
		if u.VariationID > 0 {
			id = u.VariationID
		}
		if id <= 0 || u.NewStock == nil {
			resp.Failures = append(resp.Failures, dto.StockUpdateFailure{
				ID: id, Error: "ID de producto o cantidad de stock no válidos",
			})
			continue
		}

		product, err := uc.productRepo.GetByID(id)
		if err != nil {
			resp.Failures = append(resp.Failures, dto.StockUpdateFailure{ID: id, Error: err.Error()})
			continue
		}
		if product == nil {
			resp.Failures = append(resp.Failures, dto.StockUpdateFailure{ID: id, Error: "producto no encontrado"})
			continue
		}

		if u.ForceManage && !product.ManageStock {
			if err := uc.productRepo.SetStockManagement(id, true); err != nil {
				resp.Failures = append(resp.Failures, dto.StockUpdateFailure{ID: id, SKU: product.SKU, Error: err.Error()})
				continue
			}
		}
		if err := uc.productRepo.SetStock(id, *u.NewStock); err != nil {
			resp.Failures = append(resp.Failures, dto.StockUpdateFailure{ID: id, SKU: product.SKU, Error: err.Error()})
			continue
		}

		resp.Successes = append(resp.Successes, dto.StockUpdateSuccess{
			ID: id, SKU: product.SKU, Status: "success", NewStock: *u.NewStock,
		})
	}

	if resp.HasFailures() {
		resp.Status = "partial_failure"
	}
	return resp
}
