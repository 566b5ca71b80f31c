package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/fixtures"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// storage repositorios del almacén elegido con STORE_DRIVER.
type storage struct {
	products  repository.ProductRepository
	providers repository.ProviderRepository
	users     repository.UserRepository
	movements repository.MovementRepository
	sales     repository.SaleRepository
	txRunner  inventory.TxRunner
	snapshots repository.SnapshotReader
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	var seed *fixtures.Set
	if cfg.Store.Seed {
		set, err := fixtures.Load()
		if err != nil {
			return nil, err
		}
		seed = set
	}

	if cfg.Store.Driver == config.StoreMemory {
		store := memory.NewStore(seed)
		return &storage{
			products:  memory.NewProductRepository(store),
			providers: memory.NewProviderRepository(store),
			users:     memory.NewUserRepository(store),
			movements: memory.NewMovementRepository(store),
			sales:     memory.NewSaleRepository(store),
			txRunner:  memory.NewTxRunner(store),
			snapshots: memory.NewSnapshotReader(store),
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	if seed != nil {
		seeded, err := postgres.Seed(ctx, pool, seed)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("sembrar datos: %w", err)
		}
		log.Info().Bool("sembrado", seeded).Msg("datos de ejemplo")
	}
	return &storage{
		products:  postgres.NewProductRepository(pool),
		providers: postgres.NewProviderRepository(pool),
		users:     postgres.NewUserRepository(pool),
		movements: postgres.NewMovementRepository(pool),
		sales:     postgres.NewSaleRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		snapshots: postgres.NewSnapshotReader(pool),
		close:     pool.Close,
	}, nil
}
