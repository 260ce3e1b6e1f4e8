package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrTokenExpired      = errors.New("token expirado")
	ErrTokenNotYetValid  = errors.New("token aún no válido")
	ErrTokenInvalid      = errors.New("token inválido")
	ErrTokenRevoked      = errors.New("token revocado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError identifica el ítem que dejaría el stock negativo.
// Envuelve ErrInsufficientStock para que errors.Is siga funcionando.
type InsufficientStockError struct {
	SKU       string
	Requested int // unidades solicitadas (valor absoluto)
	Available int // stock actual
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para SKU %s: se necesita %d, disponible %d",
		e.SKU, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ProductNotFoundError identifica el producto ausente que abortó un lote.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto no encontrado con ID %d", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrNotFound }
