package validation

import (
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// MovementInput campos enviados para registrar un movimiento.
type MovementInput struct {
	Type      string
	ProductID string
	Quantity  string
	Reason    string
}

// MovementValues movimiento aceptado.
type MovementValues struct {
	Type      string
	ProductID string
	Quantity  int
	Reason    string
}

// StockLookup devuelve el stock actual del producto o domain.ErrProductNotFound.
type StockLookup func(productID string) (int, error)

// Movement valida tipo → producto → cantidad → stock suficiente (salidas) → motivo.
// lookup se invoca una sola vez, después de validar la cantidad.
func Movement(in MovementInput, lookup StockLookup) (MovementValues, error) {
	var out MovementValues
	out.Type = trim(in.Type)
	if !entity.ValidMovementType(out.Type) {
		return MovementValues{}, fail("El tipo de movimiento no es válido")
	}
	out.ProductID = trim(in.ProductID)
	if out.ProductID == "" {
		return MovementValues{}, fail("Selecciona un producto")
	}
	qty, err := Quantity(in.Quantity)
	if err != nil {
		return MovementValues{}, err
	}
	out.Quantity = qty
	stock, err := lookup(out.ProductID)
	if err != nil {
		return MovementValues{}, err
	}
	if err := Sufficient(out.Type, qty, stock); err != nil {
		return MovementValues{}, err
	}
	if out.Reason, err = required(in.Reason, "El motivo es requerido"); err != nil {
		return MovementValues{}, err
	}
	return out, nil
}

func Quantity(s string) (int, error) {
	n, ok := parseInt(s)
	if !ok || n <= 0 {
		return 0, fail("La cantidad debe ser un número mayor a 0")
	}
	return n, nil
}

// Sufficient rechaza una salida mayor al stock (con el disponible en el mensaje) y una
// entrada que desborda el stock.
func Sufficient(movementType string, quantity, stock int) error {
	_, err := inventory.ApplyMovement(stock, movementType, quantity)
	return err
}
