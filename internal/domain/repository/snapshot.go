package repository

import "context"

// Snapshot repositorios de lectura sobre una misma vista del almacén.
type Snapshot struct {
	Products  ProductRepository
	Providers ProviderRepository
	Users     UserRepository
	Movements MovementRepository
}

// SnapshotReader ejecuta fn sobre una vista consistente: entre las lecturas de fn no se
// aplica ningún movimiento. fn solo debe leer.
type SnapshotReader interface {
	View(ctx context.Context, fn func(ctx context.Context, s Snapshot) error) error
}
