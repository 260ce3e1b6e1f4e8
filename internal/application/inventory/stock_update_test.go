package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/application/inventory"
)

// Cada update se aplica de forma independiente; los fallos no bloquean al resto.
func TestUpdateStock_FalloParcial(t *testing.T) {
	productRepo := newFakeProductRepo(
		managedProduct(100, "SKU-A", 10),
		managedProduct(200, "SKU-B", 5),
	)
	uc := inventory.NewStockUpdateUseCase(productRepo)

	resp := uc.UpdateStock(context.Background(), []dto.StockUpdateItem{
		{ProductID: 100, NewStock: intPtr(20)},
		{ProductID: 999, NewStock: intPtr(7)}, // no existe
		{ProductID: 200, NewStock: intPtr(0)},
	})

	assert.Equal(t, "partial_failure", resp.Status)
	require.Len(t, resp.Successes, 2)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, int64(999), resp.Failures[0].ID)

	// Los éxitos sí se aplicaron aunque hubo un fallo en medio.
	assert.Equal(t, 20, productRepo.stockOf(100))
	assert.Equal(t, 0, productRepo.stockOf(200))
	assert.Equal(t, "outofstock", productRepo.products[200].StockStatus,
		"stock 0 deja el producto fuera de stock")
}

func TestUpdateStock_TodoAplicado(t *testing.T) {
	productRepo := newFakeProductRepo(managedProduct(100, "SKU-A", 10))
	uc := inventory.NewStockUpdateUseCase(productRepo)

	resp := uc.UpdateStock(context.Background(), []dto.StockUpdateItem{
		{ProductID: 100, NewStock: intPtr(42)},
	})

	assert.Equal(t, "completed", resp.Status)
	require.Len(t, resp.Successes, 1)
	assert.Equal(t, "SKU-A", resp.Successes[0].SKU)
	assert.Equal(t, 42, resp.Successes[0].NewStock)
	assert.Empty(t, resp.Failures)
}

// variation_id tiene prioridad sobre product_id, igual que en los ajustes.
func TestUpdateStock_VariacionTienePrioridad(t *testing.T) {
	productRepo := newFakeProductRepo(
		managedProduct(500, "CAM", 0),
		managedProduct(501, "CAM-M", 3),
	)
	uc := inventory.NewStockUpdateUseCase(productRepo)

	resp := uc.UpdateStock(context.Background(), []dto.StockUpdateItem{
		{ProductID: 500, VariationID: 501, NewStock: intPtr(9)},
	})

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 9, productRepo.stockOf(501))
	assert.Equal(t, 0, productRepo.stockOf(500), "el padre no se toca")
}

// force_manage habilita la gestión antes de escribir el stock.
func TestUpdateStock_ForceManage(t *testing.T) {
	productRepo := newFakeProductRepo(unmanagedProduct(100, "SKU-A"))
	uc := inventory.NewStockUpdateUseCase(productRepo)

	resp := uc.UpdateStock(context.Background(), []dto.StockUpdateItem{
		{ProductID: 100, NewStock: intPtr(30), ForceManage: true},
	})

	assert.Equal(t, "completed", resp.Status)
	assert.True(t, productRepo.products[100].ManageStock)
	assert.Equal(t, 30, productRepo.stockOf(100))
}

func TestUpdateStock_ItemInvalido(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := inventory.NewStockUpdateUseCase(productRepo)

	resp := uc.UpdateStock(context.Background(), []dto.StockUpdateItem{
		{ProductID: 0, NewStock: intPtr(5)}, // sin id
		{ProductID: 100, NewStock: nil},     // sin cantidad
	})

	assert.Equal(t, "partial_failure", resp.Status)
	assert.Empty(t, resp.Successes)
	assert.Len(t, resp.Failures, 2)
}

// Un error de lectura del catálogo se reporta como fallo del ítem, no aborta.
func TestUpdateStock_ErrorDeCatalogo_FalloDelItem(t *testing.T) {
	productRepo := newFakeProductRepo(managedProduct(100, "SKU-A", 10))
	productRepo.getErr = errors.New("catálogo caído")
	uc := inventory.NewStockUpdateUseCase(productRepo)

	resp := uc.UpdateStock(context.Background(), []dto.StockUpdateItem{
		{ProductID: 100, NewStock: intPtr(5)},
	})

	assert.Equal(t, "partial_failure", resp.Status)
	require.Len(t, resp.Failures, 1)
	assert.Contains(t, resp.Failures[0].Error, "catálogo caído")
}
