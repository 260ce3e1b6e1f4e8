package inventory

import (
	"context"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

// Tope de filas leídas del ledger por consulta de historia.
const maxHistoryRows = 500

// HistoryUseCase reconstruye movimientos agrupando las filas del ledger por
// movement_id, del más reciente al más antiguo.
type HistoryUseCase struct {
	movRepo repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movRepo repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movRepo: movRepo}
}

// ListRecent devuelve los movimientos agrupados. El orden de los grupos es el
// de primera aparición en las filas (descendente por fecha) y las líneas de
// cada grupo conservan el orden almacenado.
func (uc *HistoryUseCase) ListRecent(_ context.Context, limit int) ([]dto.MovementDTO, error) {
	if limit <= 0 || limit > maxHistoryRows {
		limit = maxHistoryRows
	}
	rows, err := uc.movRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*dto.MovementDTO, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		m, ok := byID[row.MovementID]
		if !ok {
			m = &dto.MovementDTO{
				ID:          row.MovementID,
				Date:        row.LogDate,
				Type:        row.Reason,
				Description: row.Description,
				UserID:      row.UserID,
				IsSynced:    true,
				Items:       []dto.MovementItemDTO{},
			}
			byID[row.MovementID] = m
			order = append(order, row.MovementID)
		}
		m.Items = append(m.Items, toItemDTO(row))
	}

	out := make([]dto.MovementDTO, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}

func toItemDTO(row *entity.MovementEntry) dto.MovementItemDTO {
	var variationID *int64
	if row.VariationID > 0 {
		v := row.VariationID
		variationID = &v
	}
	return dto.MovementItemDTO{
		ProductID:       row.ProductID,
		VariationID:     variationID,
		ProductName:     row.ProductName,
		SKU:             row.SKU,
		QuantityChanged: row.QuantityChanged,
		StockBefore:     row.StockBefore,
		StockAfter:      row.StockAfter,
	}
}
