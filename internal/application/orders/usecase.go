package orders

import (
	"context"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

// OrderUseCase listado de pedidos y cambio de estado para la app móvil.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

// List devuelve pedidos con sus líneas, más recientes primero.
func (uc *OrderUseCase) List(_ context.Context, in dto.OrderListRequest) (*dto.OrderListResponse, error) {
	in.DefaultPage()
	orders, total, err := uc.orderRepo.List(repository.OrderListParams{
		Status: in.Status,
		Search: in.Search,
		Limit:  in.PerPage,
		Offset: in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	resp := &dto.OrderListResponse{
		Total:  total,
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, dto.ToOrderResponse(o))
	}
	return resp, nil
}

// UpdateStatus cambia el estado de un pedido y devuelve el pedido actualizado.
func (uc *OrderUseCase) UpdateStatus(_ context.Context, id int64, status string) (*dto.OrderResponse, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	resp := dto.ToOrderResponse(order)
	return &resp, nil
}
