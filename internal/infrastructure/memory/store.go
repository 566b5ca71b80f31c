// Package memory implementa los repositorios sobre un almacén en memoria protegido por un
// único sync.RWMutex. Las lecturas comparten el lock; escrituras y transacciones lo toman en
// exclusiva, así ningún lector observa un movimiento aplicado a medias.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/fixtures"
)

// Store almacén en memoria. Los slices conservan el orden de inserción.
type Store struct {
	mu        sync.RWMutex
	products  []*entity.Product
	providers []*entity.Provider
	users     []*entity.User
	movements []*entity.Movement
	sales     []*entity.Sale
}

// NewStore crea un almacén vacío o sembrado con seed (puede ser nil).
func NewStore(seed *fixtures.Set) *Store {
	s := &Store{}
	if seed != nil {
		s.products = seed.Products
		s.providers = seed.Providers
		s.users = seed.Users
		s.movements = seed.Movements
		s.sales = seed.Sales
	}
	return s
}

// txState marca un contexto que ya tiene el lock de escritura de un Store y
// acumula las operaciones para deshacer si el callback falla.
type txState struct {
	store *Store
	undo  []func()
}

type txKey struct{}

func (s *Store) tx(ctx context.Context) *txState {
	st, ok := ctx.Value(txKey{}).(*txState)
	if ok && st.store == s {
		return st
	}
	return nil
}

type readKey struct{}

// reading indica que ctx viene de withRead sobre este Store.
func (s *Store) reading(ctx context.Context) bool {
	st, ok := ctx.Value(readKey{}).(*Store)
	return ok && st == s
}

func (s *Store) rlock(ctx context.Context) func() {
	if s.tx(ctx) != nil || s.reading(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) wlock(ctx context.Context) func() {
	if s.tx(ctx) != nil {
		return func() {}
	}
	if s.reading(ctx) {
		panic("memory: escritura dentro de una vista de lectura")
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// onRollback registra fn para deshacer la mutación si la transacción falla.
// Fuera de una transacción no hace nada.
func (s *Store) onRollback(ctx context.Context, fn func()) {
	if st := s.tx(ctx); st != nil {
		st.undo = append(st.undo, fn)
	}
}

// withTx ejecuta fn con el lock de escritura tomado. Si fn devuelve error se deshacen sus
// mutaciones en orden inverso.
func (s *Store) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx(ctx) != nil {
		return fn(ctx)
	}
	if s.reading(ctx) {
		panic("memory: transacción dentro de una vista de lectura")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &txState{store: s}
	if err := fn(context.WithValue(ctx, txKey{}, st)); err != nil {
		for i := len(st.undo) - 1; i >= 0; i-- {
			st.undo[i]()
		}
		return err
	}
	return nil
}

// withRead ejecuta fn con el lock de lectura tomado; las lecturas de fn no vuelven a tomarlo.
func (s *Store) withRead(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx(ctx) != nil || s.reading(ctx) {
		return fn(ctx)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(context.WithValue(ctx, readKey{}, s))
}

func indexOf[T any](items []*T, match func(*T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}

func remove[T any](items []*T, i int) []*T {
	out := make([]*T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
