package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// MovementRepository es el ledger: solo admite agregar y leer.
type MovementRepository interface {
	Append(ctx context.Context, movement *entity.Movement) error
	// List devuelve los movimientos en orden de inserción.
	List(ctx context.Context) ([]*entity.Movement, error)
}
