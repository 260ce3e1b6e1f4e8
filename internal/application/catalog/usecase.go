package catalog

import (
	"context"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

// CatalogUseCase lectura del catálogo para la app móvil: búsqueda por
// nombre/SKU/barcode, detalle, variaciones y productos con stock gestionado.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo}
}

// Search busca productos y variaciones que coincidan con el término.
func (uc *CatalogUseCase) Search(_ context.Context, in dto.ProductSearchRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	products, total, err := uc.productRepo.Search(repository.ProductSearchParams{
		Query:       in.Query,
		OnlyInStock: in.OnlyInStock,
		Limit:       in.PerPage,
		Offset:      in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return toListResponse(products, total), nil
}

// GetByID devuelve el detalle de un producto o variación.
func (uc *CatalogUseCase) GetByID(_ context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// ListVariations devuelve las variaciones de un producto variable.
// ErrNotFound si el padre no existe o no es variable.
func (uc *CatalogUseCase) ListVariations(_ context.Context, parentID int64) ([]dto.ProductResponse, error) {
	parent, err := uc.productRepo.GetByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil || parent.Type != entity.ProductTypeVariable {
		return nil, domain.ErrNotFound
	}
	variations, err := uc.productRepo.ListVariations(parentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(variations))
	for _, v := range variations {
		out = append(out, dto.ToProductResponse(v))
	}
	return out, nil
}

// ListManaged devuelve los productos con gestión de stock habilitada (la app
// los precarga para el modo escáner).
func (uc *CatalogUseCase) ListManaged(_ context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	if page.PerPage <= 0 {
		page.PerPage = 1000
	}
	if page.Page <= 0 {
		page.Page = 1
	}
	products, err := uc.productRepo.ListManaged(page.PerPage, (page.Page-1)*page.PerPage)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

func toListResponse(products []*entity.Product, total int) *dto.ProductListResponse {
	resp := &dto.ProductListResponse{
		Total:    total,
		Products: make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, dto.ToProductResponse(p))
	}
	return resp
}
