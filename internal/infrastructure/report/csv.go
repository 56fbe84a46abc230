package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var _ attendance.ReportRenderer = (*CSVRenderer)(nil)

// CSVRenderer CSV con comillas RFC 4180; opcionalmente en Windows-1252 para Excel antiguo.
type CSVRenderer struct{}

// NewCSVRenderer construye el renderer.
func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

func (CSVRenderer) Format() string      { return "csv" }
func (CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

// Render escribe la cabecera y una línea por fila. Sin filas devuelve solo la cabecera.
func (CSVRenderer) Render(_ context.Context, rep attendance.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, r := range rep.Rows {
		if err := w.Write(cells(r, rep.Location)); err != nil {
			return nil, fmt.Errorf("csv: fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}

	if rep.Charset != "windows-1252" {
		return buf.Bytes(), nil
	}
	// Caracteres sin equivalente se reemplazan en vez de abortar la exportación.
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, _, err := transform.Bytes(enc, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("csv: windows-1252: %w", err)
	}
	return out, nil
}

