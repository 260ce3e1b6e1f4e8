package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
)

// ProductSearchRequest query params para GET /api/products/search.
type ProductSearchRequest struct {
	Query       string `query:"query"`
	OnlyInStock bool   `query:"only_in_stock"`
	PageRequest
}

// ProductResponse vista del producto para la app móvil.
type ProductResponse struct {
	ID            int64            `json:"id"`
	ParentID      int64            `json:"parent_id"`
	Name          string           `json:"name"`
	SKU           string           `json:"sku"`
	Barcode       string           `json:"barcode"`
	Type          string           `json:"type"`
	Price         decimal.Decimal  `json:"price"`
	RegularPrice  decimal.Decimal  `json:"regular_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	OnSale        bool             `json:"on_sale"`
	StockQuantity *int             `json:"stock_quantity"`
	StockStatus   string           `json:"stock_status"`
	ManageStock   bool             `json:"manage_stock"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

// ToProductResponse mapea la entidad del catálogo al DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	barcode := p.Barcode
	if barcode == "" {
		barcode = p.SKU
	}
	return ProductResponse{
		ID:            p.ID,
		ParentID:      p.ParentID,
		Name:          p.Name,
		SKU:           p.SKU,
		Barcode:       barcode,
		Type:          p.Type,
		Price:         p.Price,
		RegularPrice:  p.RegularPrice,
		SalePrice:     p.SalePrice,
		OnSale:        p.SalePrice != nil && p.SalePrice.LessThan(p.RegularPrice),
		StockQuantity: p.StockQuantity,
		StockStatus:   p.StockStatus,
		ManageStock:   p.ManageStock,
	}
}
