package usecase

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/mapper"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// SaleUseCase consulta de ventas registradas.
type SaleUseCase struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewSaleUseCase(repo repository.SaleRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, productRepo: productRepo, userRepo: userRepo}
}

// List devuelve las ventas con los nombres de producto y usuario resueltos.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := mapper.NewNames(products, nil, users)
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, mapper.Sale(s, names))
	}
	return out, nil
}
