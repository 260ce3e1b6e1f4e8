package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
)

// OrderListRequest query params para GET /api/orders.
type OrderListRequest struct {
	Status string `query:"status"`
	Search string `query:"search"`
	PageRequest
}

// OrderItemResponse línea de pedido.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	VariationID int64           `json:"variation_id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse pedido con sus líneas.
type OrderResponse struct {
	ID           int64               `json:"id"`
	Number       string              `json:"number"`
	Status       string              `json:"status"`
	CustomerName string              `json:"customerName"`
	Total        decimal.Decimal     `json:"total"`
	TotalTax     decimal.Decimal     `json:"total_tax"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	DateCreated  time.Time           `json:"date_created"`
	LineItems    []OrderItemResponse `json:"line_items"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Total  int             `json:"total"`
	Orders []OrderResponse `json:"orders"`
}

// UpdateOrderRequest body para PUT /api/orders/:id.
type UpdateOrderRequest struct {
	Status string `json:"status"`
}

// ToOrderResponse mapea la entidad al DTO.
func ToOrderResponse(o *entity.Order) OrderResponse {
	name := o.CustomerName
	if name == "" {
		name = "Cliente General"
	}
	resp := OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		Status:       o.Status,
		CustomerName: name,
		Total:        o.Total,
		TotalTax:     o.TotalTax,
		Subtotal:     o.Subtotal,
		DateCreated:  o.CreatedAt,
		LineItems:    make([]OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		resp.LineItems = append(resp.LineItems, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			VariationID: it.VariationID,
			Name:        it.Name,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}
