// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                        │  Fecha de corte    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Productos | Unidades | Valor del inventario       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Proveedor | Stock | Valor    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK BAJO: Producto | Stock | Mínimo                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/analytics"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ analytics.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, report dto.InventoryReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Valuacion))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("PRODUCTOS", colorPrimary))
	m.AddRows(productHeaderRow())
	m.AddRows(productRows(report.Productos)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow(fmt.Sprintf("STOCK BAJO (%d)", len(report.StockBajo)), colorAlert))
	if len(report.StockBajo) == 0 {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Todos los productos están por encima de su stock mínimo.", props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	} else {
		m.AddRows(lowStockHeaderRow())
		m.AddRows(lowStockRows(report.StockBajo)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report dto.InventoryReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Titulo, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Fecha de corte", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(report.GeneradoEn.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func summaryRow(v dto.ValuationDTO) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		cell("Productos", strconv.Itoa(v.Productos)),
		cell("Unidades en stock", formatInt(int64(v.Unidades))),
		cell("Valor del inventario", formatMoney(v.Valor)),
	)
}

func sectionRow(title string, color *props.Color) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: color, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func productHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Producto", 4, align.Left),
		headerCell("Categoría", 2, align.Left),
		headerCell("Proveedor", 2, align.Left),
		headerCell("Stock", 1, align.Right),
		headerCell("Precio", 1, align.Right),
		headerCell("Valor", 2, align.Right),
	)
}

func productRows(products []dto.ProductResponse) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		stockColor := &props.Color{}
		if p.StockBajo {
			stockColor = colorAlert
		}
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(p.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Categoria, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.ProveedorNombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.Stock), props.Text{
				Size: 8, Top: 1, Right: 1, Align: align.Right, Color: stockColor,
			})),
			col.New(1).Add(text.New(formatMoney(p.Precio), props.Text{Size: 8, Top: 1, Right: 1, Align: align.Right})),
			col.New(2).Add(text.New(
				formatMoney(p.Precio.Mul(decimal.NewFromInt(int64(p.Stock)))),
				props.Text{Size: 8, Top: 1, Right: 1, Align: align.Right},
			)),
		))
	}
	return rows
}

func lowStockHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Producto", 6, align.Left),
		headerCell("Stock", 2, align.Right),
		headerCell("Mínimo", 2, align.Right),
		headerCell("Faltante", 2, align.Right),
	)
}

func lowStockRows(products []dto.ProductResponse) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(p.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(p.Stock), props.Text{Size: 8, Top: 1, Right: 1, Align: align.Right, Color: colorAlert})),
			col.New(2).Add(text.New(strconv.Itoa(p.StockMinimo), props.Text{Size: 8, Top: 1, Right: 1, Align: align.Right})),
			col.New(2).Add(text.New(strconv.Itoa(p.StockMinimo-p.Stock), props.Text{Size: 8, Top: 1, Right: 1, Align: align.Right})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney da formato $1,234.50 a un importe.
func formatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, formatInt(whole.IntPart()), cents)
}

// formatInt inserta comas de miles. Ej: 1000000 → "1,000,000".
func formatInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return "-" + formatInt(-n)
	}
	if len(s) <= 3 {
		return s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
