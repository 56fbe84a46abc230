package report

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// pdfColumns ancho de cada columna de Header sobre la grilla de 12 de maroto.
var pdfColumns = []int{1, 1, 2, 2, 1, 1, 1, 1, 2}

var _ attendance.ReportRenderer = (*PDFRenderer)(nil)

// PDFRenderer tabla A4 apaisada con título, periodo y fila de totales.
type PDFRenderer struct {
	title string
}

// NewPDFRenderer construye el renderer; title encabeza el documento.
func NewPDFRenderer(title string) *PDFRenderer {
	if title == "" {
		title = "Reporte de asistencia"
	}
	return &PDFRenderer{title: title}
}

func (*PDFRenderer) Format() string      { return "pdf" }
func (*PDFRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *PDFRenderer) Render(_ context.Context, rep attendance.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(g.title, periodLabel(rep)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableRow(Header, true))

	total := decimal.Zero
	for _, r := range rep.Rows {
		m.AddRows(tableRow(cells(r, rep.Location), false))
		if r.TotalHours.Valid {
			total = total.Add(r.TotalHours.Decimal)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(8).Add(text.New(fmt.Sprintf("Registros: %d", len(rep.Rows)), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		})),
		col.New(4).Add(text.New("Total horas: "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title, period string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New("Periodo: "+period, props.Text{Size: 9, Align: align.Right, Top: 3, Color: colorGray}),
		),
	)
}

func tableRow(values []string, header bool) core.Row {
	style := props.Text{Size: 7, Top: 1.5, Left: 0.5, Right: 0.5}
	height := 6.0
	if header {
		style.Style = fontstyle.Bold
		style.Color = colorPrimary
		height = 7
	}
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(pdfColumns[i]).Add(text.New(v, style)))
	}
	return row.New(height).Add(cols...)
}
