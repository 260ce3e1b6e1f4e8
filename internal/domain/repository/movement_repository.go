package repository

import "github.com/jhoicas/pos-movil-api/internal/domain/entity"

// MovementRepository libro mayor de inventario: solo inserta y lee, nunca
// actualiza ni borra filas.
type MovementRepository interface {
	Append(entry *entity.MovementEntry) error
	// ListRecent devuelve filas ordenadas por log_date descendente (y por id
	// para desempatar), hasta limit filas.
	ListRecent(limit int) ([]*entity.MovementEntry, error)
	// CountByMovementID cuenta filas de un movement_id (para diagnósticos).
	CountByMovementID(movementID string) (int, error)
}
