package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/mapper"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/domain/validation"
	"github.com/jhoicas/inventario-ledger/pkg/textsearch"
)

// ProductUseCase casos de uso CRUD para productos.
// Las ediciones pasan por el TxRunner del ledger porque pueden tocar el stock.
type ProductUseCase struct {
	repo         repository.ProductRepository
	providerRepo repository.ProviderRepository
	txRunner     inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, providerRepo repository.ProviderRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, providerRepo: providerRepo, txRunner: txRunner}
}

// Create valida y crea un producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	values, err := validation.Product(validation.ProductInput{
		Name:        in.Nombre,
		Description: in.Descripcion,
		Price:       in.Precio.String(),
		Stock:       in.Stock.String(),
		MinStock:    in.StockMinimo.String(),
		Category:    in.Categoria,
		ProviderID:  in.ProveedorID,
	})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        values.Name,
		Description: values.Description,
		Price:       values.Price,
		Stock:       values.Stock,
		MinStock:    values.MinStock,
		Category:    values.Category,
		ProviderID:  values.ProviderID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.response(ctx, product)
}

// GetByID obtiene un producto; domain.ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return uc.response(ctx, product)
}

// List lista productos en orden de alta, con búsqueda por nombre o descripción,
// categoría exacta y solo stock bajo.
func (uc *ProductUseCase) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := uc.providerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if filter.Categoria != "" && p.Category != filter.Categoria {
			continue
		}
		if filter.LowStock && !p.IsLowStock() {
			continue
		}
		if !textsearch.Contains(filter.Q, p.Name, p.Description) {
			continue
		}
		out = append(out, p)
	}
	return mapper.Products(out, mapper.NewNames(nil, providers, nil)), nil
}

// Update aplica solo los campos presentes, validando cada uno en el orden del alta.
// Un stock editado se escribe con el stock bloqueado, igual que un movimiento.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		ctx context.Context,
		products repository.ProductRepository,
		_ repository.MovementRepository,
	) error {
		product, err := products.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if err := applyProductPatch(product, in); err != nil {
			return err
		}
		product.UpdatedAt = time.Now()
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.response(ctx, updated)
}

func applyProductPatch(p *entity.Product, in dto.UpdateProductRequest) error {
	var err error
	if in.Nombre != nil {
		if p.Name, err = validation.ProductName(*in.Nombre); err != nil {
			return err
		}
	}
	if in.Precio != nil {
		if p.Price, err = validation.Price(in.Precio.String()); err != nil {
			return err
		}
	}
	if in.Stock != nil {
		if p.Stock, err = validation.Stock(in.Stock.String()); err != nil {
			return err
		}
	}
	if in.StockMinimo != nil {
		if p.MinStock, err = validation.MinStock(in.StockMinimo.String()); err != nil {
			return err
		}
	}
	if in.Categoria != nil {
		if p.Category, err = validation.Category(*in.Categoria); err != nil {
			return err
		}
	}
	if in.ProveedorID != nil {
		if p.ProviderID, err = validation.ProviderRef(*in.ProveedorID); err != nil {
			return err
		}
	}
	if in.Descripcion != nil {
		p.Description = *in.Descripcion
	}
	return nil
}

// Delete elimina un producto. Sus movimientos quedan en el ledger.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProductNotFound
	}
	return nil
}

func (uc *ProductUseCase) response(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	name := entity.NoProviderName
	provider, err := uc.providerRepo.GetByID(ctx, p.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider != nil {
		name = provider.Name
	}
	r := mapper.Product(p, name)
	return &r, nil
}
