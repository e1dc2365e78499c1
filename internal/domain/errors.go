package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnknownItem       = errors.New("requerimiento referencia un ítem inexistente")
)

// UnknownItemError indica que un requerimiento de proyecto apunta a un ítem que no existe
// en el inventario consultado. Es una violación de integridad: no se reintenta.
type UnknownItemError struct {
	ItemID int64
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("ítem %d no existe en el inventario", e.ItemID)
}

// Is permite errors.Is(err, domain.ErrUnknownItem).
func (e *UnknownItemError) Is(target error) bool {
	return target == ErrUnknownItem
}
