package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es un pedido del catálogo externo, servido en solo lectura a la app
// salvo el cambio de estado.
type Order struct {
	ID           int64
	Number       string
	Status       string
	CustomerName string
	Total        decimal.Decimal
	TotalTax     decimal.Decimal
	Subtotal     decimal.Decimal
	CreatedAt    time.Time
	Items        []*OrderItem
}

// OrderItem línea de pedido con snapshot de SKU y nombre.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	VariationID int64
	Name        string
	SKU         string
	Quantity    int
	Price       decimal.Decimal
	Subtotal    decimal.Decimal
}
