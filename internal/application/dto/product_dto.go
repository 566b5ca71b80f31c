package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      Numeric `json:"precio" swaggertype:"number"`
	Stock       Numeric `json:"stock" swaggertype:"integer"`
	StockMinimo Numeric `json:"stockMinimo" swaggertype:"integer"`
	Categoria   string  `json:"categoria"`
	ProveedorID string  `json:"proveedorId"`
}

// UpdateProductRequest campos editables de un producto; nil = sin cambio.
type UpdateProductRequest struct {
	Nombre      *string  `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Precio      *Numeric `json:"precio" swaggertype:"number"`
	Stock       *Numeric `json:"stock" swaggertype:"integer"`
	StockMinimo *Numeric `json:"stockMinimo" swaggertype:"integer"`
	Categoria   *string  `json:"categoria"`
	ProveedorID *string  `json:"proveedorId"`
}

// ProductFilter filtros de GET /api/products.
type ProductFilter struct {
	Q         string
	Categoria string
	LowStock  bool
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion"`
	Precio          decimal.Decimal `json:"precio" swaggertype:"number"`
	Stock           int             `json:"stock"`
	StockMinimo     int             `json:"stockMinimo"`
	StockBajo       bool            `json:"stockBajo"`
	Categoria       string          `json:"categoria"`
	ProveedorID     string          `json:"proveedorId"`
	ProveedorNombre string          `json:"proveedorNombre"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
