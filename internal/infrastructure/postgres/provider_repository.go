package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

const providerColumns = `id, name, email, phone, address, created_at`

// ProviderRepo adaptador PostgreSQL para proveedores.
type ProviderRepo struct {
	q Querier
}

func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

func scanProvider(row rowScanner) (*entity.Provider, error) {
	var p entity.Provider
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepo) Create(ctx context.Context, provider *entity.Provider) error {
	_, err := r.q.Exec(ctx, `INSERT INTO providers (`+providerColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		provider.ID, provider.Name, provider.Email, provider.Phone, provider.Address, provider.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

func (r *ProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	p, err := scanProvider(r.q.QueryRow(ctx, `SELECT `+providerColumns+` FROM providers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return p, nil
}

func (r *ProviderRepo) Update(ctx context.Context, provider *entity.Provider) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE providers SET name = $2, email = $3, phone = $4, address = $5 WHERE id = $1`,
		provider.ID, provider.Name, provider.Email, provider.Phone, provider.Address,
	)
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProviderNotFound
	}
	return nil
}

func (r *ProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) {
	rows, err := r.q.Query(ctx, `SELECT `+providerColumns+` FROM providers ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete no toca los productos que lo referencian.
func (r *ProviderRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete provider: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
