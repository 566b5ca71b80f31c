// Package inventory contiene las reglas puras de cantidades de stock.
package inventory

import (
	"math"
	"sort"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// MsgStockOverflow mensaje para una entrada que supera el stock representable.
const MsgStockOverflow = "La cantidad supera el stock máximo permitido"

// ApplyMovement devuelve el stock resultante de aplicar un movimiento.
// Una salida mayor al stock actual devuelve *domain.InsufficientStockError y una entrada que
// desborda el stock devuelve un *domain.ValidationError; en ambos casos el stock no cambia.
func ApplyMovement(current int, movementType string, quantity int) (int, error) {
	if quantity <= 0 {
		return current, domain.ErrInvalidInput
	}
	switch movementType {
	case entity.MovementEntry:
		if quantity > math.MaxInt-current {
			return current, domain.NewValidationError(MsgStockOverflow)
		}
		return current + quantity, nil
	case entity.MovementExit:
		if quantity > current {
			return current, &domain.InsufficientStockError{Available: current}
		}
		return current - quantity, nil
	}
	return current, domain.ErrInvalidInput
}

// NewestFirst ordena una copia de movs del más reciente al más antiguo.
// Con igual fecha queda primero el registrado después.
func NewestFirst(movs []*entity.Movement) []*entity.Movement {
	out := make([]*entity.Movement, len(movs))
	for i, m := range movs {
		out[len(movs)-1-i] = m
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
