package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

// AdjustmentUseCase aplica un lote de cambios de stock como unidad lógica
// auditable, en dos fases dentro de una transacción:
//
// Fase 1 valida todas las líneas sin mutar nada: producto existente y, para
// salidas sobre stock gestionado, que la resta no deje negativo. Cualquier
// fallo aborta el lote completo sin efectos.
//
// Fase 2 aplica en orden del lote: habilita gestión de stock si la razón es
// stockCorrection, escribe la cantidad nueva al catálogo y agrega la fila al
// ledger con los snapshots before/after del cliente.
//
// Las lecturas de la Fase 1 bloquean la fila del producto (FOR UPDATE), así
// que dos lotes concurrentes sobre el mismo producto se serializan.
type AdjustmentUseCase struct {
	txRunner TxRunner
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(txRunner TxRunner) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner}
}

type validatedItem struct {
	product *entity.Product
	item    dto.MovementItemRequest
}

// SubmitAdjustment procesa un lote. userID es el uuid del dispositivo que lo
// envía. Reenviar el mismo movement id vuelve a insertar filas: el ledger no
// deduplica (limitación conocida, ver los tests de historia).
func (uc *AdjustmentUseCase) SubmitAdjustment(ctx context.Context, userID string, in dto.MovementPayload) error {
	if err := validateShape(&in); err != nil {
		return err
	}
	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// FASE 1: validar todo, sin mutaciones.
		validated := make([]validatedItem, 0, len(in.Items))
		for _, item := range in.Items {
			target := item.ProductID
			if item.VariationID > 0 {
				target = item.VariationID
			}
			product, err := productRepo.GetForUpdate(target)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: target}
			}
			if item.QuantityChanged < 0 && product.ManageStock {
				current := product.CurrentStock()
				if current+item.QuantityChanged < 0 {
					return &domain.InsufficientStockError{
						SKU:       product.SKU,
						Requested: -item.QuantityChanged,
						Available: current,
					}
				}
			}
			validated = append(validated, validatedItem{product: product, item: item})
		}

		// FASE 2: aplicar en orden del lote.
		for _, v := range validated {
			if err := uc.commitItem(movRepo, productRepo, &in, v, userID, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// commitItem aplica una línea ya validada: política de conteo físico,
// escritura de stock al catálogo y fila de ledger.
func (uc *AdjustmentUseCase) commitItem(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	in *dto.MovementPayload,
	v validatedItem,
	userID string,
	now time.Time,
) error {
	product := v.product
	manage := product.ManageStock

	// Un conteo físico implica que el operador quiere stock gestionado de
	// ahí en adelante; para variaciones también se habilita el padre.
	if in.Type == entity.ReasonStockCorrection && !manage {
		if err := productRepo.SetStockManagement(product.ID, true); err != nil {
			return err
		}
		manage = true
		if product.IsVariation() && product.ParentID > 0 {
			parent, err := productRepo.GetByID(product.ParentID)
			if err != nil {
				return err
			}
			if parent != nil && !parent.ManageStock {
				if err := productRepo.SetStockManagement(parent.ID, true); err != nil {
					return err
				}
			}
		}
	}

	if manage || in.Type == entity.ReasonStockCorrection {
		if v.item.StockAfter == nil {
			return domain.ErrInvalidInput
		}
		if err := productRepo.SetStock(product.ID, *v.item.StockAfter); err != nil {
			return err
		}
	}

	entry := &entity.MovementEntry{
		MovementID:      in.ID,
		ProductID:       product.ID,
		ProductName:     product.Name,
		SKU:             product.SKU,
		QuantityChanged: v.item.QuantityChanged,
		StockBefore:     v.item.StockBefore,
		StockAfter:      v.item.StockAfter,
		Reason:          in.Type,
		Description:     in.Description,
		UserID:          userID,
		LogDate:         now,
	}
	if product.IsVariation() {
		entry.ProductID = product.ParentID
		entry.VariationID = product.ID
	}
	return movRepo.Append(entry)
}

// validateShape valida la forma del lote antes de tocar almacenamiento.
// También exige que los snapshots del cliente cuadren con el delta cuando
// ambos vienen: el ledger declara ese invariante por fila.
func validateShape(in *dto.MovementPayload) error {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	if !entity.ValidReason(in.Type) {
		return domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 && item.VariationID <= 0 {
			return domain.ErrInvalidInput
		}
		if item.QuantityChanged == 0 {
			return domain.ErrInvalidInput
		}
		if item.StockBefore != nil && item.StockAfter != nil {
			if *item.StockAfter-*item.StockBefore != item.QuantityChanged {
				return domain.ErrInvalidInput
			}
		}
	}
	return nil
}
