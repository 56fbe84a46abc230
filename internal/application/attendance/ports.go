package attendance

import (
	"context"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		records repository.AttendanceRepository,
	) error) error
}

// ReportRow una fila del reporte de asistencia.
type ReportRow struct {
	Date         time.Time
	EmployeeID   string
	Name         string
	Email        string
	Department   string
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       string
	TotalHours   decimal.NullDecimal
}

// Report contenido a renderizar. From/To pueden ser cero (sin límite).
type Report struct {
	From     time.Time
	To       time.Time
	Location *time.Location
	Charset  string // solo CSV: "utf-8" (defecto) o "windows-1252"
	Rows     []ReportRow
}

// ReportRenderer serializa un Report a un formato de archivo.
type ReportRenderer interface {
	Format() string // "csv", "xlsx", "pdf"
	ContentType() string
	Render(ctx context.Context, report Report) ([]byte, error)
}
