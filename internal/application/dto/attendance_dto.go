package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceResponse salida de un registro de asistencia.
type AttendanceResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Date         string           `json:"date"` // YYYY-MM-DD
	CheckInTime  *time.Time       `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time       `json:"check_out_time,omitempty"`
	Status       string           `json:"status"`
	TotalHours   *decimal.Decimal `json:"total_hours,omitempty"`
	Employee     *EmployeeSummary `json:"employee,omitempty"`
}

// TodayStatusResponse vista del día para el propio usuario.
// Sin registro: checked_in=false, checked_out=false, status="absent" (no persistido).
type TodayStatusResponse struct {
	CheckedIn    bool             `json:"checked_in"`
	CheckedOut   bool             `json:"checked_out"`
	Status       string           `json:"status"`
	CheckInTime  *time.Time       `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time       `json:"check_out_time,omitempty"`
	TotalHours   *decimal.Decimal `json:"total_hours,omitempty"`
}

// MonthlySummaryResponse resumen mensual de un usuario.
type MonthlySummaryResponse struct {
	Present    int             `json:"present"`
	Absent     int             `json:"absent"`
	Late       int             `json:"late"`
	HalfDay    int             `json:"half_day"`
	TotalHours decimal.Decimal `json:"total_hours"`
	TotalDays  int             `json:"total_days"`
}

// TeamSummaryResponse resumen de equipo en un mes.
type TeamSummaryResponse struct {
	Present      int `json:"present"`
	Absent       int `json:"absent"`
	Late         int `json:"late"`
	HalfDay      int `json:"half_day"`
	TotalRecords int `json:"total_records"`
}

// ListAttendanceQuery filtros de GET /attendance/all. Date tiene prioridad sobre Month/Year.
type ListAttendanceQuery struct {
	EmployeeID string `query:"employeeId"`
	Date       string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Status     string `query:"status" validate:"omitempty,oneof=present late half-day absent"`
	Month      int    `query:"month" validate:"omitempty,min=1,max=12"`
	Year       int    `query:"year" validate:"omitempty,min=1970,max=9999"`
}

// TodayOverviewResponse foto del día para managers.
type TodayOverviewResponse struct {
	Present    int                  `json:"present"`
	Absent     int                  `json:"absent"`
	Late       int                  `json:"late"`
	Attendance []AttendanceResponse `json:"attendance"`
}

// ExportQuery parámetros de GET /attendance/export.
type ExportQuery struct {
	StartDate  string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EmployeeID string `query:"employeeId"`
	Format     string `query:"format" validate:"omitempty,oneof=csv xlsx pdf"`
	Charset    string `query:"charset" validate:"omitempty,oneof=utf-8 windows-1252"`
}

// ExportFile archivo generado listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
