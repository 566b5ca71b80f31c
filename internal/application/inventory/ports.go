package inventory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función en exclusión mutua sobre el stock, pasando repositorios atados
// a esa sección crítica. Si fn devuelve error no queda ningún cambio aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ctx context.Context,
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error) error
}
