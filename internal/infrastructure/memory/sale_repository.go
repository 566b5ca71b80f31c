package memory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas sembradas, solo lectura.
type SaleRepo struct {
	s *Store
}

func NewSaleRepository(s *Store) *SaleRepo {
	return &SaleRepo{s: s}
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, s := range r.s.sales {
		cp := *s
		cp.Items = append([]entity.SaleItem(nil), s.Items...)
		out = append(out, &cp)
	}
	return out, nil
}
