// Package report serializa el reporte de asistencia a CSV, XLSX y PDF.
package report

import (
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
)

const timestampLayout = "2006-01-02 15:04:05"

// Header columnas comunes a todos los formatos.
var Header = []string{
	"Date", "Employee ID", "Name", "Email", "Department",
	"Check In", "Check Out", "Status", "Total Hours",
}

// cells valores de texto de una fila en el orden de Header.
func cells(r attendance.ReportRow, loc *time.Location) []string {
	return []string{
		r.Date.Format("2006-01-02"),
		r.EmployeeID,
		r.Name,
		r.Email,
		r.Department,
		formatTimestamp(r.CheckInTime, loc),
		formatTimestamp(r.CheckOutTime, loc),
		r.Status,
		formatHours(r),
	}
}

func formatTimestamp(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timestampLayout)
}

// formatHours "0" sin horas calculadas; dos decimales en otro caso.
func formatHours(r attendance.ReportRow) string {
	if !r.TotalHours.Valid {
		return "0"
	}
	return r.TotalHours.Decimal.StringFixed(2)
}

func periodLabel(rep attendance.Report) string {
	switch {
	case rep.From.IsZero() && rep.To.IsZero():
		return "Todos los registros"
	case rep.From.IsZero():
		return "Hasta " + rep.To.Format("2006-01-02")
	case rep.To.IsZero():
		return "Desde " + rep.From.Format("2006-01-02")
	}
	return rep.From.Format("2006-01-02") + " a " + rep.To.Format("2006-01-02")
}
