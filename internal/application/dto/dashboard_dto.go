package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProductos       int                `json:"totalProductos"`
	TotalProveedores     int                `json:"totalProveedores"`
	TotalUsuarios        int                `json:"totalUsuarios"`
	ProductosStockBajo   []ProductResponse  `json:"productosStockBajo"`
	ValorInventario      decimal.Decimal    `json:"valorInventario" swaggertype:"number"`
	Mes                  MonthlyCountsDTO   `json:"mes"`
	MovimientosRecientes []MovementResponse `json:"movimientosRecientes"`
	Periodo              string             `json:"periodo"` // ej: "Enero 2024"
}

// MonthlyCountsDTO entradas y salidas en [Desde, Hasta].
type MonthlyCountsDTO struct {
	Entradas int       `json:"entradas"`
	Salidas  int       `json:"salidas"`
	Desde    time.Time `json:"desde"`
	Hasta    time.Time `json:"hasta"`
}

// ValuationDTO valor del inventario (Σ precio × stock).
type ValuationDTO struct {
	Valor     decimal.Decimal `json:"valor" swaggertype:"number"`
	Productos int             `json:"productos"`
	Unidades  int             `json:"unidades"`
}

// InventoryReportDTO datos del reporte PDF de inventario.
type InventoryReportDTO struct {
	Titulo     string
	GeneradoEn time.Time
	Productos  []ProductResponse
	StockBajo  []ProductResponse
	Valuacion  ValuationDTO
}
