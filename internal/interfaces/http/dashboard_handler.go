package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-ledger/internal/application/analytics"
	"github.com/jhoicas/inventario-ledger/internal/domain"
)

const defaultRecentLimit = 5

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del inventario
// @Description  Totales, stock bajo, valor del inventario, conteos del mes y últimos movimientos.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStockProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Valuation godoc
// @Summary      Valor del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationDTO
// @Router       /api/dashboard/valuation [get]
func (h *DashboardHandler) Valuation(c *fiber.Ctx) error {
	out, err := h.uc.InventoryValuation(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Entradas y salidas del mes
// @Description  Cuenta desde el primer día del mes de ref hasta ahora. Sin ref usa la fecha actual.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        ref  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200  {object}  dto.MonthlyCountsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/monthly [get]
func (h *DashboardHandler) Monthly(c *fiber.Ctx) error {
	ref := time.Now()
	if raw := c.Query("ref"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return respondError(c, domain.NewValidationError("La fecha de referencia debe tener formato YYYY-MM-DD"))
		}
		ref = t
	}
	out, err := h.uc.MonthlyMovementCounts(c.UserContext(), ref)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Últimos movimientos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (por defecto 5)"
// @Success      200    {array}   dto.MovementResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/dashboard/recent [get]
func (h *DashboardHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRecentLimit)
	out, err := h.uc.RecentMovements(c.UserContext(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
