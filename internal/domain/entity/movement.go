package entity

import "time"

// Razones de movimiento de inventario que envía la app.
const (
	ReasonManualAdjustment = "manualAdjustment" // ajuste manual
	ReasonStockCorrection  = "stockCorrection"  // conteo físico / corrección
	ReasonSupplierReceipt  = "supplierReceipt"  // entrada de proveedor
)

// ValidReason indica si la razón pertenece al enumerado conocido.
func ValidReason(r string) bool {
	switch r {
	case ReasonManualAdjustment, ReasonStockCorrection, ReasonSupplierReceipt:
		return true
	}
	return false
}

// MovementEntry es una fila del libro mayor de inventario: una línea de un
// ajuste por lotes. Las filas son inmutables; las correcciones son movimientos
// nuevos, nunca ediciones. ProductName y SKU son snapshots denormalizados al
// momento de escribir, para que la historia sobreviva a renombres.
type MovementEntry struct {
	ID              int64
	MovementID      string
	ProductID       int64
	VariationID     int64 // 0 = producto simple
	ProductName     string
	SKU             string
	QuantityChanged int
	StockBefore     *int // null si el producto no gestionaba stock
	StockAfter      *int
	Reason          string
	Description     string
	UserID          string
	LogDate         time.Time
}

// Movement agrupa las filas del ledger que comparten MovementID: un ajuste
// lógico iniciado por un operador, con sus líneas en el orden almacenado.
type Movement struct {
	ID          string
	Date        time.Time
	Reason      string
	Description string
	UserID      string
	Items       []*MovementEntry
}
