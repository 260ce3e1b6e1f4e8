package repository

import "github.com/jhoicas/pos-movil-api/internal/domain/entity"

// OrderListParams filtros de listado de pedidos.
type OrderListParams struct {
	Status string
	Search string // nombre de cliente o número de pedido
	Limit  int
	Offset int
}

// OrderRepository acceso de lectura a pedidos más el cambio de estado.
type OrderRepository interface {
	List(params OrderListParams) ([]*entity.Order, int, error)
	// GetByID devuelve nil, nil si el pedido no existe.
	GetByID(id int64) (*entity.Order, error)
	UpdateStatus(id int64, status string) error
}
