package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto del catálogo.
const (
	ProductTypeSimple    = "simple"
	ProductTypeVariable  = "variable"
	ProductTypeVariation = "variation"
)

// Product es la vista del catálogo que consume el procesador de ajustes y la
// app móvil. El catálogo es dueño de StockQuantity y ManageStock; el ledger
// solo copia snapshots puntuales.
type Product struct {
	ID            int64
	ParentID      int64 // >0 solo para variaciones
	Name          string
	SKU           string
	Barcode       string
	Type          string
	Price         decimal.Decimal
	RegularPrice  decimal.Decimal
	SalePrice     *decimal.Decimal
	StockQuantity *int // null cuando no gestiona stock
	StockStatus   string
	ManageStock   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsVariation indica si el producto es una variación de un variable.
func (p *Product) IsVariation() bool { return p.Type == ProductTypeVariation || p.ParentID > 0 }

// CurrentStock devuelve la cantidad actual tratando null como 0.
func (p *Product) CurrentStock() int {
	if p.StockQuantity == nil {
		return 0
	}
	return *p.StockQuantity
}
