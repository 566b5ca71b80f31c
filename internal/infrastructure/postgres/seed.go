package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-ledger/internal/infrastructure/fixtures"
)

// Seed carga el Set en una sola transacción si la base no tiene usuarios.
// Devuelve true si sembró.
func Seed(ctx context.Context, pool *pgxpool.Pool, set *fixtures.Set) (bool, error) {
	n, err := NewUserRepository(pool).Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	err = withTx(ctx, pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		users := NewUserRepository(tx)
		for _, u := range set.Users {
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("seed user %s: %w", u.ID, err)
			}
		}
		providers := NewProviderRepository(tx)
		for _, p := range set.Providers {
			if err := providers.Create(ctx, p); err != nil {
				return fmt.Errorf("seed provider %s: %w", p.ID, err)
			}
		}
		products := NewProductRepository(tx)
		for _, p := range set.Products {
			if err := products.Create(ctx, p); err != nil {
				return fmt.Errorf("seed product %s: %w", p.ID, err)
			}
		}
		movements := NewMovementRepository(tx)
		for _, m := range set.Movements {
			if err := movements.Append(ctx, m); err != nil {
				return fmt.Errorf("seed movement %s: %w", m.ID, err)
			}
		}
		sales := NewSaleRepository(tx)
		for _, s := range set.Sales {
			if err := sales.create(ctx, s); err != nil {
				return fmt.Errorf("seed sale %s: %w", s.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
