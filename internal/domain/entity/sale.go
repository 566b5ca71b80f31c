package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta.
type SaleItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Sale venta registrada (solo lectura).
type Sale struct {
	ID        string
	Items     []SaleItem
	Total     decimal.Decimal
	UserID    string
	CreatedAt time.Time
}
