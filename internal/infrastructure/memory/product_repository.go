package memory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) find(id string) int {
	return indexOf(r.s.products, func(p *entity.Product) bool { return p.ID == id })
}

// Create agrega una copia del producto al final.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	unlock := r.s.wlock(ctx)
	defer unlock()
	if r.find(product.ID) >= 0 {
		return domain.ErrInvalidInput
	}
	cp := *product
	r.s.products = append(r.s.products, &cp)
	r.s.onRollback(ctx, func() { r.s.products = r.s.products[:len(r.s.products)-1] })
	return nil
}

// GetByID devuelve una copia o (nil, nil).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	i := r.find(id)
	if i < 0 {
		return nil, nil
	}
	cp := *r.s.products[i]
	return &cp, nil
}

// GetForUpdate es GetByID: dentro de TxRunner.Run el lock ya es exclusivo.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza el producto completo.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	unlock := r.s.wlock(ctx)
	defer unlock()
	i := r.find(product.ID)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	prev := r.s.products[i]
	cp := *product
	r.s.products[i] = &cp
	r.s.onRollback(ctx, func() { r.s.products[i] = prev })
	return nil
}

// UpdateStock cambia solo el stock vigente.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	if stock < 0 {
		return domain.ErrInvalidInput
	}
	unlock := r.s.wlock(ctx)
	defer unlock()
	i := r.find(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	prev := r.s.products[i]
	cp := *prev
	cp.Stock = stock
	r.s.products[i] = &cp
	r.s.onRollback(ctx, func() { r.s.products[i] = prev })
	return nil
}

// List devuelve copias en orden de inserción.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	unlock := r.s.rlock(ctx)
	defer unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Delete quita el producto; false si no existía.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	unlock := r.s.wlock(ctx)
	defer unlock()
	i := r.find(id)
	if i < 0 {
		return false, nil
	}
	prev := r.s.products
	r.s.products = remove(r.s.products, i)
	r.s.onRollback(ctx, func() { r.s.products = prev })
	return true, nil
}
