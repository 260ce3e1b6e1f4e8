package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-movil-api/internal/domain"
	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo lectura de pedidos del catálogo y cambio de estado.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, number, status, customer_name, total, total_tax, subtotal, created_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.Number, &o.Status, &o.CustomerName,
		&o.Total, &o.TotalTax, &o.Subtotal, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) List(params repository.OrderListParams) ([]*entity.Order, int, error) {
	where := `WHERE ($1 = '' OR status = $1)
		AND ($2 = '' OR customer_name ILIKE '%' || $2 || '%' OR number ILIKE '%' || $2 || '%')`

	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders `+where, params.Status, params.Search).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("contar pedidos: %w", err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders ` + where +
		` ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`

	rows, err := r.q.Query(context.Background(), query,
		params.Status, params.Search, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	ids := make([]int64, 0)
	byID := make(map[int64]*entity.Order)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("escanear pedido: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		if err := r.attachItems(ids, byID); err != nil {
			return nil, 0, err
		}
	}
	return orders, total, nil
}

func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar pedido: %w", err)
	}
	if err := r.attachItems([]int64{o.ID}, map[int64]*entity.Order{o.ID: o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("actualizar estado de pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) attachItems(ids []int64, byID map[int64]*entity.Order) error {
	query := `
		SELECT id, order_id, product_id, variation_id, name, sku, quantity, price, subtotal
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`

	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("listar líneas de pedido: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.VariationID,
			&it.Name, &it.SKU, &it.Quantity, &it.Price, &it.Subtotal); err != nil {
			return fmt.Errorf("escanear línea de pedido: %w", err)
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, &it)
		}
	}
	return rows.Err()
}
