package inventory

import (
	"context"

	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que un lote de ajuste se aplique
// todo-o-nada: cualquier error hace rollback de catálogo y ledger juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
