package memory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo ledger en memoria: solo agrega.
type MovementRepo struct {
	s *Store
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{s: s}
}

func (r *MovementRepo) Append(ctx context.Context, movement *entity.Movement) error {
	unlock := r.s.wlock(ctx)
	defer unlock()
	cp := *movement
	r.s.movements = append(r.s.movements, &cp)
	r.s.onRollback(ctx, func() { r.s.movements = r.s.movements[:len(r.s.movements)-1] })
	return nil
}

func (r *MovementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	out := make([]*entity.Movement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}
