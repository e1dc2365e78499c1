// Package pdf renderiza los reportes de inventario y proyectos con Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte         │  Fecha de generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales del reporte                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por ítem / proyecto / transacción          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/application/reports"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

var _ reports.PDFRenderer = (*MarotoReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorOK      = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// column describe una columna de tabla (ancho en la grilla de 12).
type column struct {
	label string
	size  int
	align align.Type
}

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoReportRenderer implementa reports.PDFRenderer usando Maroto v2.
type MarotoReportRenderer struct {
	author string
}

// NewMarotoReportRenderer construye el renderer. author queda en los metadatos del PDF.
func NewMarotoReportRenderer(author string) *MarotoReportRenderer {
	return &MarotoReportRenderer{author: author}
}

func (g *MarotoReportRenderer) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// InventoryStatusPDF estado del inventario con la lista de stock bajo resaltada.
func (g *MarotoReportRenderer) InventoryStatusPDF(_ context.Context, r *dto.InventoryStatusReport) ([]byte, error) {
	m := g.newDocument("Estado del inventario")
	m.AddRows(headerRow("ESTADO DEL INVENTARIO", r.GeneratedAt))
	m.AddRows(separator(0.5))
	m.AddRows(summaryRow(
		[2]string{"Ítems", strconv.Itoa(r.TotalItems)},
		[2]string{"Stock bajo", strconv.Itoa(r.LowStockItems)},
		[2]string{"Unidades", strconv.Itoa(r.TotalStock)},
		[2]string{"Valor total", "$" + formatMoney(r.TotalValue.StringFixed(0))},
	))
	m.AddRows(separator(0.3))

	cols := []column{
		{"Código", 2, align.Left},
		{"Nombre", 4, align.Left},
		{"Categoría", 2, align.Left},
		{"Stock", 1, align.Right},
		{"Mínimo", 1, align.Right},
		{"Ubicación", 2, align.Left},
	}
	m.AddRows(tableHeaderRow(cols))
	for _, it := range r.InventoryList {
		var color *props.Color
		if it.LowStock {
			color = colorAlert
		}
		m.AddRows(tableRow(cols, color,
			it.ItemCode, it.ItemName, nonEmpty(it.Category, "-"),
			strconv.Itoa(it.CurrentStock), strconv.Itoa(it.MinStock), nonEmpty(it.Location, "-"),
		))
	}
	return generate(m)
}

// ProjectSummaryPDF resumen de proyectos con conteo por estado.
func (g *MarotoReportRenderer) ProjectSummaryPDF(_ context.Context, r *dto.ProjectSummaryReport) ([]byte, error) {
	m := g.newDocument("Resumen de proyectos")
	m.AddRows(headerRow("RESUMEN DE PROYECTOS", r.GeneratedAt))
	m.AddRows(separator(0.5))

	pairs := [][2]string{{"Total", strconv.Itoa(r.TotalProjects)}}
	for _, s := range entity.ProjectStatuses {
		pairs = append(pairs, [2]string{s, strconv.Itoa(r.StatusCounts[s])})
	}
	m.AddRows(summaryRow(pairs...))
	m.AddRows(separator(0.3))

	cols := []column{
		{"Código", 2, align.Left},
		{"Nombre", 4, align.Left},
		{"Cliente", 2, align.Left},
		{"Estado", 2, align.Center},
		{"Fin", 2, align.Right},
	}
	m.AddRows(tableHeaderRow(cols))
	for _, p := range r.Projects {
		end := "-"
		if p.EndDate != nil {
			end = *p.EndDate
		}
		m.AddRows(tableRow(cols, nil, p.ProjectCode, p.ProjectName, nonEmpty(p.Client, "-"), p.Status, end))
	}
	return generate(m)
}

// TransactionHistoryPDF historial de movimientos con totales IN/OUT.
func (g *MarotoReportRenderer) TransactionHistoryPDF(_ context.Context, r *dto.TransactionHistoryReport) ([]byte, error) {
	m := g.newDocument("Historial de transacciones")
	m.AddRows(headerRow("HISTORIAL DE TRANSACCIONES", r.GeneratedAt))
	m.AddRows(separator(0.5))
	m.AddRows(summaryRow(
		[2]string{"Transacciones", strconv.Itoa(r.TotalTransactions)},
		[2]string{"Entradas", fmt.Sprintf("%d (%d u.)", r.InTransactions, r.TotalInQuantity)},
		[2]string{"Salidas", fmt.Sprintf("%d (%d u.)", r.OutTransactions, r.TotalOutQuantity)},
	))
	m.AddRows(separator(0.3))

	cols := []column{
		{"Fecha", 2, align.Left},
		{"Tipo", 1, align.Center},
		{"Código", 2, align.Left},
		{"Ítem", 3, align.Left},
		{"Cant.", 1, align.Right},
		{"Proyecto", 3, align.Left},
	}
	m.AddRows(tableHeaderRow(cols))
	for _, t := range r.Transactions {
		color := colorOK
		if t.TransactionType == entity.TransactionTypeOUT {
			color = colorAlert
		}
		m.AddRows(tableRow(cols, color,
			t.TransactionDate.Format("02/01/2006"), t.TransactionType, t.ItemCode, t.ItemName,
			strconv.Itoa(t.Quantity), nonEmpty(t.ProjectName, "-"),
		))
	}
	return generate(m)
}

// AvailabilityPDF disponibilidad de un proyecto, con QR del identificador para la bodega.
func (g *MarotoReportRenderer) AvailabilityPDF(_ context.Context, r *dto.ProjectAvailabilityResponse) ([]byte, error) {
	m := g.newDocument("Disponibilidad de proyecto")
	m.AddRows(headerRow("DISPONIBILIDAD: "+r.ProjectName, time.Now()))
	m.AddRows(separator(0.5))

	status, color := "TODOS LOS COMPONENTES DISPONIBLES", colorOK
	if !r.AllItemsAvailable {
		status, color = "FALTAN COMPONENTES", colorAlert
	}
	m.AddRows(row.New(30).Add(
		col.New(3).Add(code.NewQr(fmt.Sprintf("PROJECT:%d", r.ProjectID), props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New(fmt.Sprintf("Proyecto #%d", r.ProjectID), props.Text{Size: 9, Top: 4, Left: 3, Color: colorGray}),
			text.New(status, props.Text{Style: fontstyle.Bold, Size: 12, Top: 12, Left: 3, Color: color}),
		),
	))
	m.AddRows(separator(0.3))

	cols := []column{
		{"Código", 2, align.Left},
		{"Ítem", 4, align.Left},
		{"Requerido", 2, align.Right},
		{"Disponible", 2, align.Right},
		{"Faltante", 2, align.Right},
	}
	m.AddRows(tableHeaderRow(cols))
	for _, it := range r.Items {
		var c *props.Color
		if !it.IsAvailable {
			c = colorAlert
		}
		m.AddRows(tableRow(cols, c,
			it.ItemCode, it.ItemName,
			strconv.Itoa(it.RequiredQuantity), strconv.Itoa(it.AvailableStock), strconv.Itoa(it.Shortfall),
		))
	}
	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 4, Color: colorGray,
		})),
	)
}

func separator(thickness float64) core.Row {
	return line.NewRow(1, props.Line{Color: colorPrimary, Thickness: thickness})
}

// summaryRow reparte los pares etiqueta/valor en la grilla de 12 columnas.
func summaryRow(pairs ...[2]string) core.Row {
	size := 12 / max(len(pairs), 1)
	cols := make([]core.Col, 0, len(pairs))
	for _, p := range pairs {
		cols = append(cols, col.New(size).Add(
			text.New(p[0], props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(p[1], props.Text{Style: fontstyle.Bold, Size: 10, Top: 5, Align: align.Center}),
		))
	}
	return row.New(12).Add(cols...)
}

func tableHeaderRow(cols []column) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

func tableRow(cols []column, color *props.Color, values ...string) core.Row {
	out := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		out = append(out, col.New(c.size).Add(text.New(v, props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1, Color: color,
		})))
	}
	return row.New(6).Add(out...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
