package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

var _ repository.OptionRepository = (*OptionRepo)(nil)

// OptionRepo almacén clave-valor sobre la tabla app_options.
type OptionRepo struct {
	q Querier
}

// NewOptionRepository construye el repositorio.
func NewOptionRepository(q Querier) *OptionRepo {
	return &OptionRepo{q: q}
}

func (r *OptionRepo) Get(key string) (string, error) {
	var value string
	err := r.q.QueryRow(context.Background(),
		`SELECT value FROM app_options WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("consultar opción %s: %w", key, err)
	}
	return value, nil
}

func (r *OptionRepo) Set(key, value string) error {
	query := `
		INSERT INTO app_options (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := r.q.Exec(context.Background(), query, key, value); err != nil {
		return fmt.Errorf("guardar opción %s: %w", key, err)
	}
	return nil
}
