// Package pdf implementa la exportación del reporte de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app      │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA STOCK: Código | Nombre | Categoría | Cant. | Precio   │
//	│  TOTALES: cantidad total / valor total                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA MOVIMIENTOS: Fecha | Tipo | Cant. | Producto | Obs.   │
//	│  ESTADÍSTICAS: entradas / salidas / saldo                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/report"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/currency"
)

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	title    string
	currency string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(title, currencyCode string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{title: title, currency: currencyCode}
}

// GenerateStockReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReportPDF(
	_ context.Context,
	stock dto.StockListReport,
	movements dto.MovementReport,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("PRODUCTOS"))
	m.AddRows(stockHeaderRow())
	for _, r := range g.stockRows(stock.Products) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.stockTotalsRow(stock))

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("MOVIMIENTOS"))
	if movements.Empty {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Ningún movimiento registrado.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	} else {
		m.AddRows(movementHeaderRow())
		for _, r := range movementRows(movements.Movements) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(movementStatsRow(movements))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Reporte de stock y movimientos", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generado: "+at.Format(entity.MovementDateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func header(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func stockHeaderRow() core.Row {
	return row.New(7).Add(
		header("Código", 2, align.Left),
		header("Nombre", 3, align.Left),
		header("Categoría", 3, align.Left),
		header("Cant.", 1, align.Center),
		header("Precio", 1, align.Right),
		header("Valor", 2, align.Right),
	)
}

func (g *MarotoPDFGenerator) stockRows(products []dto.ProductResponse) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		qty := col.New(1).Add(text.New(strconv.Itoa(p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1}))
		if p.Quantity == 0 {
			qty = col.New(1).Add(text.New("0", props.Text{Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold, Color: colorAlert}))
		}
		result = append(result, row.New(6).Add(
			cell(p.Code, 2, align.Left),
			cell(p.Name, 3, align.Left),
			cell(p.Category, 3, align.Left),
			qty,
			cell(currency.Format(p.UnitPrice, g.currency), 1, align.Right),
			cell(currency.Format(p.StockValue, g.currency), 2, align.Right),
		))
	}
	return result
}

func (g *MarotoPDFGenerator) stockTotalsRow(stock dto.StockListReport) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Cantidad total:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}),
			text.New("Valor total:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
		),
		col.New(3).Add(
			text.New(strconv.Itoa(stock.TotalQuantity), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(currency.Format(stock.TotalValue, g.currency), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 5, Color: colorPrimary,
			}),
		),
	)
}

func movementHeaderRow() core.Row {
	return row.New(7).Add(
		header("Fecha", 3, align.Left),
		header("Tipo", 2, align.Left),
		header("Cant.", 1, align.Center),
		header("Producto", 2, align.Left),
		header("Observación", 4, align.Left),
	)
}

func movementRows(movements []dto.MovementResponse) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		result = append(result, row.New(6).Add(
			cell(mv.Date.Format(entity.MovementDateLayout), 3, align.Left),
			cell(mv.Kind, 2, align.Left),
			cell(strconv.Itoa(mv.Quantity), 1, align.Center),
			cell(mv.ProductCode, 2, align.Left),
			cell(mv.Note, 4, align.Left),
		))
	}
	return result
}

func movementStatsRow(r dto.MovementReport) core.Row {
	return row.New(18).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de movimientos: %d", r.Total), props.Text{Size: 8, Top: 1}),
		text.New(fmt.Sprintf("Entradas: %d movimientos (%d unidades)", r.EntryCount, r.EntryQty), props.Text{Size: 8, Top: 5}),
		text.New(fmt.Sprintf("Salidas: %d movimientos (%d unidades)", r.ExitCount, r.ExitQty), props.Text{Size: 8, Top: 9}),
		text.New(fmt.Sprintf("Saldo: %d unidades", r.NetQty), props.Text{Style: fontstyle.Bold, Size: 8, Top: 13}),
	))
}
