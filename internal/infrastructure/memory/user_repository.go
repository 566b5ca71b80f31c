package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository. El email es único sin distinguir
// mayúsculas.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) find(id string) int {
	return indexOf(r.s.users, func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepo) findEmail(email string) int {
	return indexOf(r.s.users, func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

// Create revisa el email duplicado y agrega bajo el mismo lock.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	unlock := r.s.wlock(ctx)
	defer unlock()
	if r.findEmail(user.Email) >= 0 {
		return domain.ErrEmailAlreadyExists
	}
	cp := *user
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	i := r.find(id)
	if i < 0 {
		return nil, nil
	}
	cp := *r.s.users[i]
	return &cp, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	i := r.findEmail(email)
	if i < 0 {
		return nil, nil
	}
	cp := *r.s.users[i]
	return &cp, nil
}

// Update rechaza cambiar el email a uno que ya usa otro usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	unlock := r.s.wlock(ctx)
	defer unlock()
	i := r.find(user.ID)
	if i < 0 {
		return domain.ErrUserNotFound
	}
	if j := r.findEmail(user.Email); j >= 0 && j != i {
		return domain.ErrEmailAlreadyExists
	}
	cp := *user
	r.s.users[i] = &cp
	return nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	unlock := r.s.wlock(ctx)
	defer unlock()
	i := r.find(id)
	if i < 0 {
		return false, nil
	}
	r.s.users = remove(r.s.users, i)
	return true, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	return len(r.s.users), nil
}
