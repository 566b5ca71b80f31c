package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. La exclusión sobre el
// stock la da GetForUpdate (SELECT ... FOR UPDATE) dentro de la tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ctx context.Context,
	products repository.ProductRepository,
	movements repository.MovementRepository,
) error) error {
	return withTx(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(ctx, NewProductRepository(tx), NewMovementRepository(tx))
	})
}

func withTx(ctx context.Context, pool *pgxpool.Pool, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

var _ repository.SnapshotReader = (*SnapshotReader)(nil)

// SnapshotReader abre una transacción REPEATABLE READ de solo lectura: todas las consultas
// de la vista ven el mismo estado confirmado.
type SnapshotReader struct {
	pool *pgxpool.Pool
}

// NewSnapshotReader construye el lector con el pool.
func NewSnapshotReader(pool *pgxpool.Pool) *SnapshotReader {
	return &SnapshotReader{pool: pool}
}

// View ejecuta fn con repos atados a la transacción de lectura.
func (r *SnapshotReader) View(ctx context.Context, fn func(ctx context.Context, s repository.Snapshot) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	return withTx(ctx, r.pool, opts, func(tx pgx.Tx) error {
		return fn(ctx, repository.Snapshot{
			Products:  NewProductRepository(tx),
			Providers: NewProviderRepository(tx),
			Users:     NewUserRepository(tx),
			Movements: NewMovementRepository(tx),
		})
	})
}
