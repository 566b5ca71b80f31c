package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/mapper"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/domain/validation"
	"github.com/jhoicas/inventario-ledger/pkg/textsearch"
)

// ProviderUseCase casos de uso CRUD para proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

func (uc *ProviderUseCase) Create(ctx context.Context, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	values, err := validation.Provider(validation.ProviderInput{
		Name:    in.Nombre,
		Email:   in.Email,
		Phone:   in.Telefono,
		Address: in.Direccion,
	})
	if err != nil {
		return nil, err
	}
	provider := &entity.Provider{
		ID:        uuid.New().String(),
		Name:      values.Name,
		Email:     values.Email,
		Phone:     values.Phone,
		Address:   values.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, provider); err != nil {
		return nil, err
	}
	r := mapper.Provider(provider)
	return &r, nil
}

func (uc *ProviderUseCase) GetByID(ctx context.Context, id string) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrProviderNotFound
	}
	r := mapper.Provider(provider)
	return &r, nil
}

// List filtra por nombre, email o teléfono.
func (uc *ProviderUseCase) List(ctx context.Context, q string) ([]dto.ProviderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		if textsearch.Contains(q, p.Name, p.Email, p.Phone) {
			out = append(out, mapper.Provider(p))
		}
	}
	return out, nil
}

// Update aplica los campos presentes en orden nombre → email → teléfono → dirección.
func (uc *ProviderUseCase) Update(ctx context.Context, id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrProviderNotFound
	}
	if in.Nombre != nil {
		if provider.Name, err = validation.ProviderName(*in.Nombre); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		if provider.Email, err = validation.Email(*in.Email); err != nil {
			return nil, err
		}
	}
	if in.Telefono != nil {
		if provider.Phone, err = validation.Phone(*in.Telefono); err != nil {
			return nil, err
		}
	}
	if in.Direccion != nil {
		if provider.Address, err = validation.Address(*in.Direccion); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(ctx, provider); err != nil {
		return nil, err
	}
	r := mapper.Provider(provider)
	return &r, nil
}

// Delete elimina el proveedor; los productos que lo referencian no cambian.
func (uc *ProviderUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProviderNotFound
	}
	return nil
}
