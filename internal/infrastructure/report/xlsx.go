package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/xuri/excelize/v2"
)

// SheetName hoja del libro exportado.
const SheetName = "Attendance"

var _ attendance.ReportRenderer = (*XLSXRenderer)(nil)

// XLSXRenderer libro Excel con una hoja y cabecera resaltada.
type XLSXRenderer struct{}

// NewXLSXRenderer construye el renderer.
func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

func (XLSXRenderer) Format() string { return "xlsx" }
func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render las horas van como número para que la hoja pueda sumarlas.
func (XLSXRenderer) Render(_ context.Context, rep attendance.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}

	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetRowStyle(SheetName, 1, 1, headerStyle)
	}

	for i, r := range rep.Rows {
		values := cells(r, rep.Location)
		rowNum := i + 2
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			var value any = v
			if j == len(values)-1 {
				hours, _ := r.TotalHours.Decimal.Round(2).Float64()
				value = hours
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", rowNum, err)
			}
		}
	}

	_ = f.SetColWidth(SheetName, "A", "B", 13)
	_ = f.SetColWidth(SheetName, "C", "D", 26)
	_ = f.SetColWidth(SheetName, "E", "E", 16)
	_ = f.SetColWidth(SheetName, "F", "G", 20)
	_ = f.SetColWidth(SheetName, "H", "I", 12)
	_ = f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
