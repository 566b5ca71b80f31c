package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemResponse línea de venta con el nombre del producto resuelto.
type SaleItemResponse struct {
	ProductoID     string          `json:"productoId"`
	ProductoNombre string          `json:"productoNombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" swaggertype:"number"`
	Subtotal       decimal.Decimal `json:"subtotal" swaggertype:"number"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID            string             `json:"id"`
	Productos     []SaleItemResponse `json:"productos"`
	Total         decimal.Decimal    `json:"total" swaggertype:"number"`
	UsuarioID     string             `json:"usuarioId"`
	UsuarioNombre string             `json:"usuarioNombre"`
	CreatedAt     time.Time          `json:"createdAt"`
}
