package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// SaleRepository lectura de ventas registradas.
type SaleRepository interface {
	List(ctx context.Context) ([]*entity.Sale, error)
}
