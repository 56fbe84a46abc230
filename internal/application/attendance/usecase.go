// Package attendance contiene los casos de uso de la jornada diaria:
// entrada, salida, consultas por usuario y por equipo, y exportación.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	rules "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase servicio de asistencia diaria. Sin estado entre peticiones:
// el instante "now" siempre llega como parámetro.
type UseCase struct {
	records   repository.AttendanceRepository
	users     repository.UserRepository
	policy    rules.Policy
	loc       *time.Location
	renderers map[string]ReportRenderer
}

// NewUseCase construye el caso de uso. loc define el día calendario.
func NewUseCase(
	records repository.AttendanceRepository,
	users repository.UserRepository,
	policy rules.Policy,
	loc *time.Location,
	renderers ...ReportRenderer,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	byFormat := make(map[string]ReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &UseCase{records: records, users: users, policy: policy, loc: loc, renderers: byFormat}
}

// Location zona horaria de la jornada.
func (uc *UseCase) Location() *time.Location { return uc.loc }

// CheckIn registra la entrada del día: NoRecord → CheckedIn.
// Un placeholder sin entrada (backfill) se completa en el mismo registro.
func (uc *UseCase) CheckIn(ctx context.Context, userID string, now time.Time) (*dto.AttendanceResponse, error) {
	now = now.In(uc.loc)
	day := rules.CalendarDay(now)

	existing, err := uc.records.FindByUserAndDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if existing.CheckedIn() {
		return nil, domain.ErrAlreadyCheckedIn
	}

	rec := &entity.Attendance{
		ID:          uuid.New().String(),
		UserID:      userID,
		Date:        day,
		CheckInTime: &now,
		Status:      uc.policy.ClassifyCheckIn(now, day),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// La carrera entre la lectura y la escritura la resuelve el almacén.
	saved, err := uc.records.CheckIn(ctx, rec)
	if err != nil {
		return nil, err
	}
	return ToResponse(saved), nil
}

// CheckOut registra la salida del día: CheckedIn → CheckedOut.
func (uc *UseCase) CheckOut(ctx context.Context, userID string, now time.Time) (*dto.AttendanceResponse, error) {
	now = now.In(uc.loc)
	day := rules.CalendarDay(now)

	rec, err := uc.records.FindByUserAndDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if !rec.CheckedIn() {
		return nil, domain.ErrNotCheckedIn
	}
	if rec.CheckedOut() {
		return nil, domain.ErrAlreadyCheckedOut
	}

	worked := now.Sub(*rec.CheckInTime)
	rec.CheckOutTime = &now
	rec.TotalHours = decimal.NewNullDecimal(rules.HoursBetween(*rec.CheckInTime, now))
	rec.Status = uc.policy.ClassifyCheckOut(rec.Status, worked)
	rec.UpdatedAt = now

	if err := uc.records.CheckOut(ctx, rec); err != nil {
		return nil, err
	}
	return ToResponse(rec), nil
}

// Today estado del día del usuario.
func (uc *UseCase) Today(ctx context.Context, userID string, now time.Time) (dto.TodayStatusResponse, error) {
	rec, err := uc.records.FindByUserAndDay(ctx, userID, rules.CalendarDay(now.In(uc.loc)))
	if err != nil {
		return dto.TodayStatusResponse{}, err
	}
	return ToTodayStatus(rec), nil
}

// MyHistory registros del mes pedido, más reciente primero.
func (uc *UseCase) MyHistory(ctx context.Context, userID string, q dto.MonthQuery, now time.Time) ([]dto.AttendanceResponse, error) {
	list, err := uc.monthRecords(ctx, userID, q, now)
	if err != nil {
		return nil, err
	}
	return ToResponses(list), nil
}

// MySummary resumen mensual del usuario.
func (uc *UseCase) MySummary(ctx context.Context, userID string, q dto.MonthQuery, now time.Time) (dto.MonthlySummaryResponse, error) {
	list, err := uc.monthRecords(ctx, userID, q, now)
	if err != nil {
		return dto.MonthlySummaryResponse{}, err
	}
	return ToMonthlySummary(rules.Summarize(list)), nil
}

// List consulta de managers. Un employeeId inexistente devuelve lista vacía.
func (uc *UseCase) List(ctx context.Context, q dto.ListAttendanceQuery) ([]dto.AttendanceResponse, error) {
	filter := repository.AttendanceFilter{IncludeEmployee: true}

	if q.EmployeeID != "" {
		user, err := uc.users.GetByEmployeeID(ctx, q.EmployeeID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return []dto.AttendanceResponse{}, nil
		}
		filter.UserID = user.ID
	}

	switch {
	case q.Date != "":
		day, err := rules.ParseDay(q.Date, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		filter.From, filter.To = day, day
	case q.Month != 0 && q.Year != 0:
		month, year, err := rules.ResolveMonth(q.Month, q.Year, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		filter.From, filter.To = rules.MonthRange(year, month, uc.loc)
	}

	if q.Status != "" {
		status := entity.AttendanceStatus(q.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, q.Status)
		}
		filter.Status = status
	}

	list, err := uc.records.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToResponses(list), nil
}

// EmployeeRecords registros de un empleado en el mes. id acepta el UUID o el employee ID.
func (uc *UseCase) EmployeeRecords(ctx context.Context, id string, q dto.MonthQuery, now time.Time) ([]dto.AttendanceResponse, error) {
	user, err := uc.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.MyHistory(ctx, user.ID, q, now)
}

// TeamSummary conteos por estado de toda la organización en el mes.
func (uc *UseCase) TeamSummary(ctx context.Context, q dto.MonthQuery, now time.Time) (dto.TeamSummaryResponse, error) {
	list, err := uc.monthRecords(ctx, "", q, now)
	if err != nil {
		return dto.TeamSummaryResponse{}, err
	}
	s := rules.SummarizeTeam(list)
	return dto.TeamSummaryResponse{
		Present:      s.Present,
		Absent:       s.Absent,
		Late:         s.Late,
		HalfDay:      s.HalfDay,
		TotalRecords: s.TotalRecords,
	}, nil
}

// TodayOverview foto del día de toda la organización.
func (uc *UseCase) TodayOverview(ctx context.Context, now time.Time) (dto.TodayOverviewResponse, error) {
	day := rules.CalendarDay(now.In(uc.loc))
	list, err := uc.records.List(ctx, repository.AttendanceFilter{From: day, To: day, IncludeEmployee: true})
	if err != nil {
		return dto.TodayOverviewResponse{}, err
	}
	s := rules.TodaySnapshot(list)
	return dto.TodayOverviewResponse{
		Present:    s.Present,
		Absent:     s.Absent,
		Late:       s.Late,
		Attendance: ToResponses(list),
	}, nil
}

func (uc *UseCase) findUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.users.GetByEmployeeID(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (uc *UseCase) monthRecords(ctx context.Context, userID string, q dto.MonthQuery, now time.Time) ([]*entity.Attendance, error) {
	month, year, err := rules.ResolveMonth(q.Month, q.Year, now.In(uc.loc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	from, to := rules.MonthRange(year, month, uc.loc)
	return uc.records.List(ctx, repository.AttendanceFilter{UserID: userID, From: from, To: to})
}
