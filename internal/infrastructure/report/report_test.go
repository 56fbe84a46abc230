package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport(t *testing.T) attendance.Report {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	in := time.Date(2026, 3, 10, 9, 31, 0, 0, loc)
	out := in.Add(3 * time.Hour)
	return attendance.Report{
		Location: loc,
		Rows: []attendance.ReportRow{
			{
				Date: day, EmployeeID: "EMP001", Name: "Pérez, Ana", Email: "ana@company.com",
				Department: "Ventas", CheckInTime: &in, CheckOutTime: &out, Status: "half-day",
				TotalHours: decimal.NewNullDecimal(decimal.RequireFromString("3")),
			},
			{
				Date: day, EmployeeID: "EMP002", Name: "Bob", Email: "bob@company.com",
				Department: "Engineering", Status: "absent",
			},
		},
	}
}

func TestCSVRenderer_SinRegistrosSoloCabecera(t *testing.T) {
	out, err := NewCSVRenderer().Render(context.Background(), attendance.Report{})
	require.NoError(t, err)
	assert.Equal(t, "Date,Employee ID,Name,Email,Department,Check In,Check Out,Status,Total Hours\n", string(out))
}

func TestCSVRenderer_FilasYComillas(t *testing.T) {
	out, err := NewCSVRenderer().Render(context.Background(), sampleReport(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"2026-03-10", "EMP001", "Pérez, Ana", "ana@company.com", "Ventas",
		"2026-03-10 09:31:00", "2026-03-10 12:31:00", "half-day", "3.00",
	}, records[1])
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "0", records[2][8])
	assert.Contains(t, string(out), `"Pérez, Ana"`)
}

func TestCSVRenderer_Windows1252(t *testing.T) {
	rep := sampleReport(t)
	rep.Charset = "windows-1252"
	out, err := NewCSVRenderer().Render(context.Background(), rep)
	require.NoError(t, err)

	assert.True(t, bytes.Contains(out, []byte{'P', 0xE9, 'r', 'e', 'z'}))
	assert.False(t, strings.Contains(string(out), "Pérez"))
}

func TestXLSXRenderer_LibroLegible(t *testing.T) {
	out, err := NewXLSXRenderer().Render(context.Background(), sampleReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "EMP001", rows[1][1])
	assert.Equal(t, "3", rows[1][8])
}

func TestPDFRenderer_GeneraDocumento(t *testing.T) {
	r := NewPDFRenderer("")
	out, err := r.Render(context.Background(), sampleReport(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", r.ContentType())
}
