package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Stock es el valor vigente;
// cambia por movimientos del ledger o por edición explícita.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	MinStock    int
	Category    string
	ProviderID  string // puede apuntar a un proveedor eliminado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica stock en o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// Value es precio × stock.
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
