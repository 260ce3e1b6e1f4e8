package inventory_test

import (
	"context"

	"github.com/jhoicas/pos-movil-api/internal/application/inventory"
	"github.com/jhoicas/pos-movil-api/internal/domain"
	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	getErr   error // fuerza error en lecturas
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int64]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Search(repository.ProductSearchParams) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) ListVariations(parentID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ParentID == parentID {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListManaged(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ManageStock {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SetStock(id int64, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	q := quantity
	p.StockQuantity = &q
	if quantity > 0 {
		p.StockStatus = "instock"
	} else {
		p.StockStatus = "outofstock"
	}
	return nil
}

func (r *fakeProductRepo) SetStockManagement(id int64, enabled bool) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.ManageStock = enabled
	return nil
}

// stockOf devuelve el stock actual del producto (-1 si es null), para asserts.
func (r *fakeProductRepo) stockOf(id int64) int {
	p := r.products[id]
	if p.StockQuantity == nil {
		return -1
	}
	return *p.StockQuantity
}

type fakeMovementRepo struct {
	entries []*entity.MovementEntry
}

func (r *fakeMovementRepo) Append(entry *entity.MovementEntry) error {
	copia := *entry
	copia.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, &copia)
	return nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]*entity.MovementEntry, error) {
	// Más reciente primero: los tests insertan en orden cronológico.
	out := make([]*entity.MovementEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

func (r *fakeMovementRepo) CountByMovementID(movementID string) (int, error) {
	count := 0
	for _, e := range r.entries {
		if e.MovementID == movementID {
			count++
		}
	}
	return count, nil
}

// fakeTxRunner ejecuta el callback directamente con los fakes, pero respeta
// la semántica todo-o-nada restaurando el estado si fn devuelve error.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	// Snapshot para simular rollback.
	prevEntries := make([]*entity.MovementEntry, len(r.movRepo.entries))
	copy(prevEntries, r.movRepo.entries)
	prevProducts := make(map[int64]*entity.Product, len(r.productRepo.products))
	for id, p := range r.productRepo.products {
		copia := *p
		prevProducts[id] = &copia
	}

	if err := fn(r.movRepo, r.productRepo); err != nil {
		r.movRepo.entries = prevEntries
		r.productRepo.products = prevProducts
		return err
	}
	return nil
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

// intPtr helper para snapshots de stock en los payloads.
func intPtr(v int) *int { return &v }
