// Package analytics contiene las consultas de solo lectura sobre el inventario:
// stock bajo, valuación, conteos del mes, movimientos recientes y el resumen del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/mapper"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

const dashboardRecent = 5 // movimientos en el widget del dashboard

// DashboardUseCase agrega datos del inventario. Cada consulta lee de una sola vista del
// almacén (SnapshotReader); no hay caché.
type DashboardUseCase struct {
	reader repository.SnapshotReader
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reader repository.SnapshotReader) *DashboardUseCase {
	return &DashboardUseCase{reader: reader, now: time.Now}
}

// LowStockProducts productos con stock ≤ stock mínimo, en el orden del almacén.
func (uc *DashboardUseCase) LowStockProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	err := uc.reader.View(ctx, func(ctx context.Context, s repository.Snapshot) error {
		products, err := s.Products.List(ctx)
		if err != nil {
			return err
		}
		providers, err := s.Providers.List(ctx)
		if err != nil {
			return err
		}
		out = mapper.Products(lowStock(products), mapper.NewNames(nil, providers, nil))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InventoryValuation suma precio × stock de todos los productos.
func (uc *DashboardUseCase) InventoryValuation(ctx context.Context) (*dto.ValuationDTO, error) {
	var v dto.ValuationDTO
	err := uc.reader.View(ctx, func(ctx context.Context, s repository.Snapshot) error {
		products, err := s.Products.List(ctx)
		if err != nil {
			return err
		}
		v = valuation(products)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// MonthlyMovementCounts cuenta entradas y salidas desde el primer día del mes de ref hasta ahora.
func (uc *DashboardUseCase) MonthlyMovementCounts(ctx context.Context, ref time.Time) (*dto.MonthlyCountsDTO, error) {
	var c dto.MonthlyCountsDTO
	err := uc.reader.View(ctx, func(ctx context.Context, s repository.Snapshot) error {
		movs, err := s.Movements.List(ctx)
		if err != nil {
			return err
		}
		c = monthlyCounts(movs, ref, uc.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// RecentMovements los limit movimientos más recientes, del más nuevo al más antiguo.
func (uc *DashboardUseCase) RecentMovements(ctx context.Context, limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		return nil, domain.NewValidationError("El límite debe ser un número mayor a 0")
	}
	var out []dto.MovementResponse
	err := uc.reader.View(ctx, func(ctx context.Context, s repository.Snapshot) error {
		st, err := readAll(ctx, s)
		if err != nil {
			return err
		}
		out = mapper.Movements(recent(st.movements, limit), st.names())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetSummary construye el resumen del dashboard. Las cuatro colecciones salen de la misma
// vista, así stock y ledger siempre cuadran.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var out *dto.DashboardSummaryDTO
	err := uc.reader.View(ctx, func(ctx context.Context, s repository.Snapshot) error {
		now := uc.now()
		st, err := readAll(ctx, s)
		if err != nil {
			return err
		}
		names := st.names()
		out = &dto.DashboardSummaryDTO{
			TotalProductos:       len(st.products),
			TotalProveedores:     len(st.providers),
			TotalUsuarios:        len(st.users),
			ProductosStockBajo:   mapper.Products(lowStock(st.products), names),
			ValorInventario:      valuation(st.products).Valor,
			Mes:                  monthlyCounts(st.movements, now, now),
			MovimientosRecientes: mapper.Movements(recent(st.movements, dashboardRecent), names),
			Periodo:              monthLabel(now),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// state colecciones leídas de una vista.
type state struct {
	products  []*entity.Product
	providers []*entity.Provider
	users     []*entity.User
	movements []*entity.Movement
}

func (st state) names() mapper.Names {
	return mapper.NewNames(st.products, st.providers, st.users)
}

func readAll(ctx context.Context, s repository.Snapshot) (state, error) {
	var (
		st  state
		err error
	)
	if st.products, err = s.Products.List(ctx); err != nil {
		return st, fmt.Errorf("dashboard: productos: %w", err)
	}
	if st.providers, err = s.Providers.List(ctx); err != nil {
		return st, fmt.Errorf("dashboard: proveedores: %w", err)
	}
	if st.users, err = s.Users.List(ctx); err != nil {
		return st, fmt.Errorf("dashboard: usuarios: %w", err)
	}
	if st.movements, err = s.Movements.List(ctx); err != nil {
		return st, fmt.Errorf("dashboard: movimientos: %w", err)
	}
	return st, nil
}

func lowStock(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

func valuation(products []*entity.Product) dto.ValuationDTO {
	v := dto.ValuationDTO{Valor: decimal.Zero, Productos: len(products)}
	for _, p := range products {
		v.Valor = v.Valor.Add(p.Value())
		v.Unidades += p.Stock
	}
	return v
}

// monthlyCounts cuenta en [primer día del mes de ref, now], ambos inclusive.
func monthlyCounts(movs []*entity.Movement, ref, now time.Time) dto.MonthlyCountsDTO {
	from := monthStart(ref)
	c := dto.MonthlyCountsDTO{Desde: from, Hasta: now}
	for _, m := range movs {
		if m.CreatedAt.Before(from) || m.CreatedAt.After(now) {
			continue
		}
		switch m.Type {
		case entity.MovementEntry:
			c.Entradas++
		case entity.MovementExit:
			c.Salidas++
		}
	}
	return c
}

func recent(movs []*entity.Movement, limit int) []*entity.Movement {
	sorted := inventory.NewestFirst(movs)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
