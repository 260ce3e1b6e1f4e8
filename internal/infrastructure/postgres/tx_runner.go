package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-movil-api/internal/application/inventory"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un lote de ajuste entero (validación y commit) corre
// aquí dentro: un fallo de almacenamiento a mitad de lote no deja prefijos
// aplicados ni en el catálogo ni en el ledger.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(movRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
