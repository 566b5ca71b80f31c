package validation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// ProductInput campos enviados para un producto.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Stock       string
	MinStock    string
	Category    string
	ProviderID  string
}

// ProductValues valores aceptados y normalizados.
type ProductValues struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	MinStock    int
	Category    string
	ProviderID  string
}

// Product valida nombre → precio → stock → stock mínimo → categoría → proveedor.
func Product(in ProductInput) (ProductValues, error) {
	var (
		out ProductValues
		err error
	)
	if out.Name, err = ProductName(in.Name); err != nil {
		return ProductValues{}, err
	}
	if out.Price, err = Price(in.Price); err != nil {
		return ProductValues{}, err
	}
	if out.Stock, err = Stock(in.Stock); err != nil {
		return ProductValues{}, err
	}
	if out.MinStock, err = MinStock(in.MinStock); err != nil {
		return ProductValues{}, err
	}
	if out.Category, err = Category(in.Category); err != nil {
		return ProductValues{}, err
	}
	if out.ProviderID, err = ProviderRef(in.ProviderID); err != nil {
		return ProductValues{}, err
	}
	out.Description = trim(in.Description)
	return out, nil
}

func ProductName(s string) (string, error) {
	return required(s, "El nombre del producto es requerido")
}

func Price(s string) (decimal.Decimal, error) {
	d, ok := parseDecimal(s)
	if !ok || !d.GreaterThan(decimal.Zero) {
		return decimal.Zero, fail("El precio debe ser un número mayor a 0")
	}
	return d, nil
}

func Stock(s string) (int, error) {
	n, ok := parseInt(s)
	if !ok || n < 0 {
		return 0, fail("El stock debe ser un número mayor o igual a 0")
	}
	return n, nil
}

func MinStock(s string) (int, error) {
	n, ok := parseInt(s)
	if !ok || n < 0 {
		return 0, fail("El stock mínimo debe ser un número mayor o igual a 0")
	}
	return n, nil
}

func Category(s string) (string, error) {
	s, err := required(s, "La categoría es requerida")
	if err != nil {
		return "", err
	}
	if !entity.ValidCategory(s) {
		return "", fail("La categoría no es válida")
	}
	return s, nil
}

func ProviderRef(s string) (string, error) {
	return required(s, "El proveedor es requerido")
}
