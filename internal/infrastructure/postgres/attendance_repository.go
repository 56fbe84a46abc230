package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `a.id, a.user_id, a.work_date, a.check_in_time, a.check_out_time, a.status, a.total_hours, a.created_at, a.updated_at`

// AttendanceRepo implementación de AttendanceRepository sobre PostgreSQL (usable con pool o tx).
// loc es la zona de la aplicación: las columnas DATE se interpretan en ella.
type AttendanceRepo struct {
	q   Querier
	loc *time.Location
}

// NewAttendanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier, loc *time.Location) *AttendanceRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceRepo{q: q, loc: loc}
}

// FindByUserAndDay devuelve el registro del día o (nil, nil).
func (r *AttendanceRepo) FindByUserAndDay(ctx context.Context, userID string, day time.Time) (*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.user_id = $1 AND a.work_date = $2::date`
	rec, err := r.scan(r.q.QueryRow(ctx, query, userID, dayParam(day)), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance by day: %w", err)
	}
	return rec, nil
}

// CheckIn inserta el registro del día o completa un placeholder sin entrada en una sola sentencia.
// Si el día ya tiene entrada el WHERE del DO UPDATE no actualiza nada y no hay fila devuelta.
func (r *AttendanceRepo) CheckIn(ctx context.Context, rec *entity.Attendance) (*entity.Attendance, error) {
	query := `
		INSERT INTO attendances AS a (id, user_id, work_date, check_in_time, status, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $6)
		ON CONFLICT (user_id, work_date) DO UPDATE
			SET check_in_time = EXCLUDED.check_in_time,
			    status = EXCLUDED.status,
			    updated_at = EXCLUDED.updated_at
			WHERE a.check_in_time IS NULL
		RETURNING ` + attendanceColumns
	saved, err := r.scan(r.q.QueryRow(ctx, query,
		rec.ID, rec.UserID, dayParam(rec.Date), rec.CheckInTime, string(rec.Status), rec.CreatedAt,
	), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("check in: %w", err)
	}
	return saved, nil
}

// CheckOut fija salida, horas y estado solo si el registro aún no tiene salida.
func (r *AttendanceRepo) CheckOut(ctx context.Context, rec *entity.Attendance) error {
	query := `
		UPDATE attendances
		SET check_out_time = $3, total_hours = $4, status = $5, updated_at = $6
		WHERE user_id = $1 AND work_date = $2::date
		  AND check_in_time IS NOT NULL AND check_out_time IS NULL`
	tag, err := r.q.Exec(ctx, query,
		rec.UserID, dayParam(rec.Date), rec.CheckOutTime, rec.TotalHours, string(rec.Status), rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("check out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyCheckedOut
	}
	return nil
}

// List devuelve registros filtrados por fecha descendente. Con IncludeEmployee hace join con users.
func (r *AttendanceRepo) List(ctx context.Context, f repository.AttendanceFilter) ([]*entity.Attendance, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.UserID != "" {
		add("a.user_id = $%d", f.UserID)
	}
	if !f.From.IsZero() {
		add("a.work_date >= $%d::date", dayParam(f.From))
	}
	if !f.To.IsZero() {
		add("a.work_date <= $%d::date", dayParam(f.To))
	}
	if f.Status != "" {
		add("a.status = $%d", string(f.Status))
	}

	cols := attendanceColumns
	from := ` FROM attendances a`
	if f.IncludeEmployee {
		cols += `, u.name, u.email, u.employee_id, u.department`
		from += ` JOIN users u ON u.id = a.user_id`
	}
	query := `SELECT ` + cols + from
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY a.work_date DESC, a.created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Attendance, 0)
	for rows.Next() {
		rec, err := r.scan(rows, f.IncludeEmployee)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// InsertIfAbsent persiste un registro histórico sin pisar uno existente.
func (r *AttendanceRepo) InsertIfAbsent(ctx context.Context, rec *entity.Attendance) (bool, error) {
	query := `
		INSERT INTO attendances (id, user_id, work_date, check_in_time, check_out_time, status, total_hours, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, work_date) DO NOTHING`
	tag, err := r.q.Exec(ctx, query,
		rec.ID, rec.UserID, dayParam(rec.Date), rec.CheckInTime, rec.CheckOutTime,
		string(rec.Status), rec.TotalHours, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert attendance: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AttendanceRepo) scan(row pgxScanner, withEmployee bool) (*entity.Attendance, error) {
	var (
		a      entity.Attendance
		day    time.Time
		status string
		hours  decimal.NullDecimal
	)
	dest := []any{
		&a.ID, &a.UserID, &day, &a.CheckInTime, &a.CheckOutTime, &status, &hours, &a.CreatedAt, &a.UpdatedAt,
	}
	var emp entity.EmployeeRef
	if withEmployee {
		dest = append(dest, &emp.Name, &emp.Email, &emp.EmployeeID, &emp.Department)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	a.Date = dayFromDB(day, r.loc)
	a.CheckInTime = inLoc(a.CheckInTime, r.loc)
	a.CheckOutTime = inLoc(a.CheckOutTime, r.loc)
	a.Status = entity.AttendanceStatus(status)
	a.TotalHours = hours
	if withEmployee {
		emp.ID = a.UserID
		a.Employee = &emp
	}
	return &a, nil
}
