// Package pdf implementa los reportes PDF de stock e historial con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por registro                                │
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

	"github.com/jhoicas/stocktrack-api/internal/application/report"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// StockReport genera el PDF del stock actual y devuelve sus bytes.
func (g *MarotoReportGenerator) StockReport(_ context.Context, entries []*entity.StockEntryView) ([]byte, error) {
	m := newDocument("Stock por sede")

	m.AddRows(tableHeaderRow(
		headerCell("Sede", 4, align.Left),
		headerCell("Producto", 6, align.Left),
		headerCell("Cantidad", 2, align.Right),
	))
	for _, e := range entries {
		m.AddRows(row.New(6).Add(
			bodyCell(e.SiteName, 4, align.Left),
			bodyCell(e.ProductName, 6, align.Left),
			bodyCell(strconv.FormatInt(e.Quantity, 10), 2, align.Right),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de stock: %w", err)
	}
	return doc.GetBytes(), nil
}

// HistoryReport genera el PDF del historial de movimientos y devuelve sus bytes.
func (g *MarotoReportGenerator) HistoryReport(_ context.Context, movements []*entity.StockMovementView) ([]byte, error) {
	m := newDocument("Historial de movimientos")

	m.AddRows(tableHeaderRow(
		headerCell("Fecha", 3, align.Left),
		headerCell("Sede", 2, align.Left),
		headerCell("Producto", 3, align.Left),
		headerCell("Cambio", 1, align.Right),
		headerCell("Tipo", 1, align.Center),
		headerCell("Usuario", 2, align.Left),
	))
	for _, mv := range movements {
		username := "—"
		if mv.Username != nil {
			username = *mv.Username
		}
		m.AddRows(row.New(6).Add(
			bodyCell(mv.Timestamp.Format("02/01/2006 15:04"), 3, align.Left),
			bodyCell(mv.SiteName, 2, align.Left),
			bodyCell(mv.ProductName, 3, align.Left),
			bodyCell(strconv.FormatInt(mv.QuantityChange, 10), 1, align.Right),
			bodyCell(mv.Type, 1, align.Center),
			bodyCell(username, 2, align.Left),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar historial: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// newDocument crea el documento A4 con el header común.
func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

func tableHeaderRow(cols ...core.Col) core.Row {
	return row.New(8).Add(cols...)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}
