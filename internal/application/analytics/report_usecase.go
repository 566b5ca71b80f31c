package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/mapper"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// InventoryPDFGenerator puerto de salida para renderizar el reporte de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report dto.InventoryReportDTO) ([]byte, error)
}

// ReportUseCase genera el reporte PDF con la valuación y los productos con stock bajo.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, generator InventoryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator}
}

// InventoryReport devuelve los bytes del PDF y un nombre de archivo sugerido.
func (uc *ReportUseCase) InventoryReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	d := uc.dashboard
	now := d.now()
	var report dto.InventoryReportDTO
	err = d.reader.View(ctx, func(ctx context.Context, s repository.Snapshot) error {
		products, err := s.Products.List(ctx)
		if err != nil {
			return fmt.Errorf("reporte: productos: %w", err)
		}
		providers, err := s.Providers.List(ctx)
		if err != nil {
			return fmt.Errorf("reporte: proveedores: %w", err)
		}
		names := mapper.NewNames(nil, providers, nil)
		report = dto.InventoryReportDTO{
			Titulo:     "Reporte de inventario",
			GeneradoEn: now,
			Productos:  mapper.Products(products, names),
			StockBajo:  mapper.Products(lowStock(products), names),
			Valuacion:  valuation(products),
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateInventoryPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("inventario-%s.pdf", now.Format("2006-01-02")), nil
}
