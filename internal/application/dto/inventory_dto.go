package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
// Acepta los nombres del cliente web (productoId, tipo, cantidad, motivo) y sus
// equivalentes en inglés (productId, kind, quantity, reason).
type RegisterMovementRequest struct {
	ProductoID string  `json:"productoId"`
	Tipo       string  `json:"tipo"`
	Cantidad   Numeric `json:"cantidad" swaggertype:"integer"`
	Motivo     string  `json:"motivo"`

	ProductID string  `json:"productId,omitempty"`
	Kind      string  `json:"kind,omitempty"`
	Quantity  Numeric `json:"quantity,omitempty" swaggertype:"integer"`
	Reason    string  `json:"reason,omitempty"`
}

// MovementFilter filtros de GET /api/movements.
type MovementFilter struct {
	Tipo string
	Q    string
}

// MovementResponse salida de un movimiento con nombres resueltos.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductoID     string    `json:"productoId"`
	ProductoNombre string    `json:"productoNombre"`
	Tipo           string    `json:"tipo"`
	Cantidad       int       `json:"cantidad"`
	Motivo         string    `json:"motivo"`
	UsuarioID      string    `json:"usuarioId"`
	UsuarioNombre  string    `json:"usuarioNombre"`
	StockAnterior  int       `json:"stockAnterior"`
	StockNuevo     int       `json:"stockNuevo"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RecordMovementResponse respuesta de POST /api/movements.
type RecordMovementResponse struct {
	Movimiento MovementResponse `json:"movimiento"`
	NuevoStock int              `json:"nuevoStock"`
}
