package dto

import "time"

// SubmitAdjustmentRequest body para POST /api/inventory/adjustments.
// La app envía el movimiento completo bajo la clave movement.
type SubmitAdjustmentRequest struct {
	Movement MovementPayload `json:"movement"`
}

// MovementPayload un ajuste por lotes: cabecera más líneas en el orden en que
// el operador las capturó.
type MovementPayload struct {
	ID          string                `json:"id"`
	Type        string                `json:"type"` // manualAdjustment | stockCorrection | supplierReceipt
	Description string                `json:"description"`
	Items       []MovementItemRequest `json:"items"`
}

// MovementItemRequest una línea del lote. stockBefore/stockAfter son los
// snapshots que la app calculó al momento de capturar; el servidor los audita
// tal cual, nunca los recalcula.
type MovementItemRequest struct {
	ProductID       int64  `json:"productId"`
	VariationID     int64  `json:"variationId"` // 0 = producto simple
	QuantityChanged int    `json:"quantityChanged"`
	StockBefore     *int   `json:"stockBefore"`
	StockAfter      *int   `json:"stockAfter"`
	SKU             string `json:"sku,omitempty"` // informativo, el ledger usa el del catálogo
}

// StockUpdateRequest body para POST /api/inventory/stock (actualización directa).
type StockUpdateRequest struct {
	Updates []StockUpdateItem `json:"updates"`
}

// StockUpdateItem actualización absoluta de stock de un producto o variación.
type StockUpdateItem struct {
	ProductID   int64 `json:"product_id"`
	VariationID int64 `json:"variation_id"`
	NewStock    *int  `json:"new_stock"`
	ForceManage bool  `json:"force_manage"`
}

// StockUpdateSuccess resultado por ítem aplicado.
type StockUpdateSuccess struct {
	ID       int64  `json:"id"`
	SKU      string `json:"sku"`
	Status   string `json:"status"`
	NewStock int    `json:"new_stock"`
}

// StockUpdateFailure fallo por ítem; no bloquea al resto del lote.
type StockUpdateFailure struct {
	ID    int64  `json:"id"`
	SKU   string `json:"sku,omitempty"`
	Error string `json:"error"`
}

// StockUpdateResponse colecta éxitos y fallos del lote directo.
type StockUpdateResponse struct {
	Status    string               `json:"status"` // completed | partial_failure
	Successes []StockUpdateSuccess `json:"successes"`
	Failures  []StockUpdateFailure `json:"failures"`
}

// HasFailures indica si el lote terminó con algún ítem fallido.
func (r *StockUpdateResponse) HasFailures() bool { return len(r.Failures) > 0 }

// MovementDTO movimiento agrupado para la historia (más reciente primero).
type MovementDTO struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	UserID      string            `json:"userId"`
	IsSynced    bool              `json:"isSynced"`
	Items       []MovementItemDTO `json:"items"`
}

// MovementItemDTO línea de la historia con los snapshots tal como se escribieron.
type MovementItemDTO struct {
	ProductID       int64  `json:"productId"`
	VariationID     *int64 `json:"variationId"` // null para producto simple
	ProductName     string `json:"productName"`
	SKU             string `json:"sku"`
	QuantityChanged int    `json:"quantityChanged"`
	StockBefore     *int   `json:"stockBefore"`
	StockAfter      *int   `json:"stockAfter"`
}
