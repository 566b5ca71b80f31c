package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/mapper"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/domain/validation"
	"github.com/jhoicas/inventario-ledger/pkg/textsearch"
)

// LedgerUseCase registra y consulta movimientos de inventario.
// Cada movimiento aceptado ajusta el stock del producto y agrega un registro al ledger
// dentro de una misma sección crítica (TxRunner).
type LedgerUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	movementRepo repository.MovementRepository
	now          func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	movementRepo repository.MovementRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		userRepo:     userRepo,
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// NormalizeMovementType acepta entrada/salida y los alias entry/in, exit/out.
func NormalizeMovementType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case entity.MovementEntry, "entry", "in":
		return entity.MovementEntry
	case entity.MovementExit, "exit", "out":
		return entity.MovementExit
	}
	return strings.TrimSpace(t)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// RecordMovement valida el envío, y con el stock bloqueado vuelve a verificar la
// disponibilidad, actualiza el stock y agrega el movimiento. Si algo falla no cambia nada.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.RecordMovementResponse, error) {
	input := validation.MovementInput{
		Type:      NormalizeMovementType(firstNonEmpty(in.Tipo, in.Kind)),
		ProductID: firstNonEmpty(in.ProductoID, in.ProductID),
		Quantity:  firstNonEmpty(in.Cantidad.String(), in.Quantity.String()),
		Reason:    firstNonEmpty(in.Motivo, in.Reason),
	}
	values, err := validation.Movement(input, func(productID string) (int, error) {
		p, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil {
			return 0, err
		}
		if p == nil {
			return 0, domain.ErrProductNotFound
		}
		return p.Stock, nil
	})
	if err != nil {
		return nil, err
	}

	var (
		mov         *entity.Movement
		productName string
	)
	err = uc.txRunner.Run(ctx, func(
		ctx context.Context,
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error {
		// El stock pudo cambiar entre la validación y el bloqueo.
		product, err := products.GetForUpdate(ctx, values.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		newStock, err := inventory.ApplyMovement(product.Stock, values.Type, values.Quantity)
		if err != nil {
			return err
		}
		if err := products.UpdateStock(ctx, product.ID, newStock); err != nil {
			return err
		}
		m := &entity.Movement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Type:        values.Type,
			Quantity:    values.Quantity,
			Reason:      values.Reason,
			UserID:      userID,
			StockBefore: product.Stock,
			StockAfter:  newStock,
			CreatedAt:   uc.now(),
		}
		if err := movements.Append(ctx, m); err != nil {
			return err
		}
		mov = m
		productName = product.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	names := mapper.Names{
		Products: map[string]string{mov.ProductID: productName},
		Users:    map[string]string{},
	}
	if u, err := uc.userRepo.GetByID(ctx, userID); err == nil && u != nil {
		names.Users[u.ID] = u.Name
	}
	return &dto.RecordMovementResponse{
		Movimiento: mapper.Movement(mov, names),
		NuevoStock: mov.StockAfter,
	}, nil
}

// ListMovements devuelve el ledger del más reciente al más antiguo, filtrado por tipo
// y por texto sobre el nombre del producto o el motivo.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, filter dto.MovementFilter) ([]dto.MovementResponse, error) {
	tipo := ""
	if strings.TrimSpace(filter.Tipo) != "" {
		tipo = NormalizeMovementType(filter.Tipo)
		if !entity.ValidMovementType(tipo) {
			return nil, domain.NewValidationError("El tipo de movimiento no es válido")
		}
	}
	movs, err := uc.movementRepo.List(ctx)
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

	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range inventory.NewestFirst(movs) {
		if tipo != "" && m.Type != tipo {
			continue
		}
		r := mapper.Movement(m, names)
		if !textsearch.Contains(filter.Q, r.ProductoNombre, r.Motivo) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
