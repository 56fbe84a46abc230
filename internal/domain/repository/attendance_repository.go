package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// AttendanceFilter criterios de consulta. From/To son días calendario inclusivos;
// un valor cero significa "sin límite".
type AttendanceFilter struct {
	UserID          string
	From            time.Time
	To              time.Time
	Status          entity.AttendanceStatus
	Limit           int
	IncludeEmployee bool
}

// AttendanceRepository define el puerto de persistencia para registros de asistencia.
// La unicidad (user_id, día) la garantiza el almacén, no la aplicación.
type AttendanceRepository interface {
	// FindByUserAndDay devuelve el registro del día o (nil, nil).
	FindByUserAndDay(ctx context.Context, userID string, day time.Time) (*entity.Attendance, error)

	// CheckIn crea el registro del día o completa un placeholder sin entrada,
	// de forma atómica. Devuelve domain.ErrAlreadyCheckedIn si el día ya tiene entrada.
	CheckIn(ctx context.Context, rec *entity.Attendance) (*entity.Attendance, error)

	// CheckOut fija salida, horas y estado solo si aún no hay salida.
	// Devuelve domain.ErrAlreadyCheckedOut si otra petición ganó la carrera.
	CheckOut(ctx context.Context, rec *entity.Attendance) error

	// List devuelve registros ordenados por fecha descendente.
	List(ctx context.Context, filter AttendanceFilter) ([]*entity.Attendance, error)

	// InsertIfAbsent persiste un registro histórico (backfill); devuelve false
	// si ya existía uno para ese usuario y día.
	InsertIfAbsent(ctx context.Context, rec *entity.Attendance) (bool, error)
}
