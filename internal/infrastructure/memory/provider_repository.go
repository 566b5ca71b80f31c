package memory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación en memoria de ProviderRepository.
type ProviderRepo struct {
	s *Store
}

// NewProviderRepository construye el repositorio.
func NewProviderRepository(s *Store) *ProviderRepo {
	return &ProviderRepo{s: s}
}

func (r *ProviderRepo) find(id string) int {
	return indexOf(r.s.providers, func(p *entity.Provider) bool { return p.ID == id })
}

func (r *ProviderRepo) Create(ctx context.Context, provider *entity.Provider) error {
	unlock := r.s.wlock(ctx)
	defer unlock()
	if r.find(provider.ID) >= 0 {
		return domain.ErrInvalidInput
	}
	cp := *provider
	r.s.providers = append(r.s.providers, &cp)
	return nil
}

func (r *ProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	i := r.find(id)
	if i < 0 {
		return nil, nil
	}
	cp := *r.s.providers[i]
	return &cp, nil
}

func (r *ProviderRepo) Update(ctx context.Context, provider *entity.Provider) error {
	unlock := r.s.wlock(ctx)
	defer unlock()
	i := r.find(provider.ID)
	if i < 0 {
		return domain.ErrProviderNotFound
	}
	cp := *provider
	r.s.providers[i] = &cp
	return nil
}

func (r *ProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	out := make([]*entity.Provider, 0, len(r.s.providers))
	for _, p := range r.s.providers {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Delete no toca los productos que referencian al proveedor.
func (r *ProviderRepo) Delete(ctx context.Context, id string) (bool, error) {
	unlock := r.s.wlock(ctx)
	defer unlock()
	i := r.find(id)
	if i < 0 {
		return false, nil
	}
	r.s.providers = remove(r.s.providers, i)
	return true, nil
}
