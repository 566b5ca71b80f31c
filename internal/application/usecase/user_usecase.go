package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/mapper"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/domain/validation"
	"github.com/jhoicas/inventario-ledger/pkg/textsearch"
)

// UserUseCase aplica reglas de negocio para usuarios. Las respuestas nunca llevan la contraseña.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create valida, hashea la contraseña con bcrypt y persiste.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	values, err := validation.User(validation.UserInput{
		Name:            in.Nombre,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
		Role:            in.Rol,
	})
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, values.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(values.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        values.Email,
		PasswordHash: string(hash),
		Name:         values.Name,
		Role:         values.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	r := mapper.User(user)
	return &r, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	r := mapper.User(user)
	return &r, nil
}

// List filtra por nombre o email.
func (uc *UserUseCase) List(ctx context.Context, q string) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		if textsearch.Contains(q, u.Name, u.Email) {
			out = append(out, mapper.User(u))
		}
	}
	return out, nil
}

// Update aplica nombre → email → contraseña → rol. La contraseña solo cambia si llega
// password, y entonces debe coincidir con confirmPassword.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombre != nil {
		if user.Name, err = validation.UserName(*in.Nombre); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		if user.Email, err = validation.Email(*in.Email); err != nil {
			return nil, err
		}
	}
	if in.Password != nil {
		confirm := ""
		if in.ConfirmPassword != nil {
			confirm = *in.ConfirmPassword
		}
		if err := validation.Password(*in.Password, confirm); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Rol != nil {
		if user.Role, err = validation.Role(*in.Rol); err != nil {
			return nil, err
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	r := mapper.User(user)
	return &r, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}
