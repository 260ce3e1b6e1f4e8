package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-movil-api/internal/domain"
	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo acceso al catálogo de productos. El stock vive aquí; el ledger
// solo guarda snapshots.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el repositorio sobre un pool o una transacción.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, parent_id, name, sku, barcode, type,
	price, regular_price, sale_price,
	stock_quantity, stock_status, manage_stock,
	created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var salePrice decimal.NullDecimal
	err := row.Scan(
		&p.ID, &p.ParentID, &p.Name, &p.SKU, &p.Barcode, &p.Type,
		&p.Price, &p.RegularPrice, &salePrice,
		&p.StockQuantity, &p.StockStatus, &p.ManageStock,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if salePrice.Valid {
		p.SalePrice = &salePrice.Decimal
	}
	return &p, nil
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar producto: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
// Dos lotes concurrentes sobre el mismo producto se serializan aquí.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

func (r *ProductRepo) Search(params repository.ProductSearchParams) ([]*entity.Product, int, error) {
	where := `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%' OR barcode ILIKE '%' || $1 || '%')`
	if params.OnlyInStock {
		where += ` AND stock_status = 'instock'`
	}

	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products `+where, params.Query).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("contar productos: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products ` + where +
		` ORDER BY name ASC, id ASC LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(context.Background(), query, params.Query, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("buscar productos: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepo) ListVariations(parentID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE parent_id = $1 ORDER BY id ASC`

	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listar variaciones: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepo) ListManaged(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE manage_stock ORDER BY name ASC, id ASC LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos gestionados: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepo) SetStock(id int64, quantity int) error {
	// stock_status se deriva de la cantidad, igual que hace el catálogo.
	query := `
		UPDATE products
		SET stock_quantity = $2,
		    stock_status = CASE WHEN $2 > 0 THEN 'instock' ELSE 'outofstock' END,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) SetStockManagement(id int64, enabled bool) error {
	query := `UPDATE products SET manage_stock = $2, updated_at = now() WHERE id = $1`

	tag, err := r.q.Exec(context.Background(), query, id, enabled)
	if err != nil {
		return fmt.Errorf("actualizar gestión de stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear producto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
