package entity

import "time"

// Tipos de movimiento.
const (
	MovementEntry = "entrada"
	MovementExit  = "salida"
)

// Movement es un registro inmutable del ledger de inventario.
type Movement struct {
	ID          string
	ProductID   string
	Type        string // entrada, salida
	Quantity    int    // siempre positivo
	Reason      string
	UserID      string
	StockBefore int
	StockAfter  int
	CreatedAt   time.Time
}

// ValidMovementType reporta si t es entrada o salida.
func ValidMovementType(t string) bool {
	return t == MovementEntry || t == MovementExit
}
