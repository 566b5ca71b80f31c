package memory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks del ledger con el lock de escritura del Store.
type TxRunner struct {
	store     *Store
	products  *ProductRepo
	movements *MovementRepo
}

// NewTxRunner construye el runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{
		store:     store,
		products:  NewProductRepository(store),
		movements: NewMovementRepository(store),
	}
}

// Run toma el lock exclusivo, ejecuta fn y deshace sus cambios si devuelve error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ctx context.Context,
	products repository.ProductRepository,
	movements repository.MovementRepository,
) error) error {
	return r.store.withTx(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(ctx, r.products, r.movements)
	})
}
