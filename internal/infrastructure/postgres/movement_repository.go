package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro mayor de inventario sobre la tabla inventory_log.
// Solo INSERT y SELECT: las filas nunca se actualizan ni se borran.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el repositorio sobre un pool o una transacción.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func (r *MovementRepo) Append(entry *entity.MovementEntry) error {
	query := `
		INSERT INTO inventory_log
			(movement_id, product_id, variation_id, product_name, sku,
			 quantity_changed, stock_before, stock_after, reason, description,
			 user_id, log_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.q.QueryRow(context.Background(), query,
		entry.MovementID, entry.ProductID, entry.VariationID,
		entry.ProductName, entry.SKU, entry.QuantityChanged,
		entry.StockBefore, entry.StockAfter, entry.Reason,
		entry.Description, entry.UserID, entry.LogDate,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insertar fila de ledger: %w", err)
	}
	return nil
}

func (r *MovementRepo) ListRecent(limit int) ([]*entity.MovementEntry, error) {
	// log_date DESC trae lo más reciente primero; id ASC desempata dentro del
	// mismo lote para conservar el orden de inserción de sus líneas.
	query := `
		SELECT id, movement_id, product_id, variation_id, product_name, sku,
		       quantity_changed, stock_before, stock_after, reason, description,
		       user_id, log_date
		FROM inventory_log
		ORDER BY log_date DESC, id ASC
		LIMIT $1`

	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("listar ledger: %w", err)
	}
	defer rows.Close()

	var entries []*entity.MovementEntry
	for rows.Next() {
		var e entity.MovementEntry
		if err := rows.Scan(
			&e.ID, &e.MovementID, &e.ProductID, &e.VariationID,
			&e.ProductName, &e.SKU, &e.QuantityChanged,
			&e.StockBefore, &e.StockAfter, &e.Reason, &e.Description,
			&e.UserID, &e.LogDate,
		); err != nil {
			return nil, fmt.Errorf("escanear fila de ledger: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *MovementRepo) CountByMovementID(movementID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inventory_log WHERE movement_id = $1`, movementID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar filas de movimiento: %w", err)
	}
	return count, nil
}
