package memory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.SnapshotReader = (*SnapshotReader)(nil)

// SnapshotReader sostiene el lock de lectura del Store durante toda la vista.
type SnapshotReader struct {
	store *Store
	snap  repository.Snapshot
}

// NewSnapshotReader construye el lector.
func NewSnapshotReader(store *Store) *SnapshotReader {
	return &SnapshotReader{
		store: store,
		snap: repository.Snapshot{
			Products:  NewProductRepository(store),
			Providers: NewProviderRepository(store),
			Users:     NewUserRepository(store),
			Movements: NewMovementRepository(store),
		},
	}
}

// View ejecuta fn con el lock de lectura tomado una sola vez.
func (r *SnapshotReader) View(ctx context.Context, fn func(ctx context.Context, s repository.Snapshot) error) error {
	return r.store.withRead(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(ctx, r.snap)
	})
}
