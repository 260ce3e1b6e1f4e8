package repository

import "github.com/jhoicas/pos-movil-api/internal/domain/entity"

// ProductSearchParams parámetros de búsqueda del catálogo para la app.
type ProductSearchParams struct {
	Query       string // nombre, SKU o barcode (parcial)
	OnlyInStock bool
	Limit       int
	Offset      int
}

// ProductRepository es el contrato con el catálogo de productos: lectura de
// identidad/stock y las dos únicas mutaciones que el procesador de ajustes
// necesita. El catálogo es dueño del stock actual; aquí no hay más escritura.
type ProductRepository interface {
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido sobre un Querier atado a una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Search(params ProductSearchParams) ([]*entity.Product, int, error)
	ListVariations(parentID int64) ([]*entity.Product, error)
	ListManaged(limit, offset int) ([]*entity.Product, error)
	SetStock(id int64, quantity int) error
	SetStockManagement(id int64, enabled bool) error
}
