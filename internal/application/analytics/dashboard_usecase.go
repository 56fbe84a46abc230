// Package analytics contiene los casos de uso de los dashboards de empleado y manager.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/application/dto"
	rules "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

const (
	recentDays = 7 // ventana de "asistencia reciente" del empleado
	trendDays  = 7 // puntos de la tendencia semanal del manager
)

// DashboardUseCase arma los dashboards a partir de lecturas de solo consulta.
type DashboardUseCase struct {
	records repository.AttendanceRepository
	users   repository.UserRepository
	loc     *time.Location
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(records repository.AttendanceRepository, users repository.UserRepository, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{records: records, users: users, loc: loc}
}

// EmployeeDashboard estado de hoy, resumen del mes en curso y últimos 7 días.
func (uc *DashboardUseCase) EmployeeDashboard(ctx context.Context, userID string, now time.Time) (*dto.EmployeeDashboardResponse, error) {
	today := rules.CalendarDay(now.In(uc.loc))
	monthStart, monthEnd := rules.MonthRange(today.Year(), today.Month(), uc.loc)

	todayRec, err := uc.records.FindByUserAndDay(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("dashboard: registro de hoy: %w", err)
	}
	month, err := uc.records.List(ctx, repository.AttendanceFilter{UserID: userID, From: monthStart, To: monthEnd})
	if err != nil {
		return nil, fmt.Errorf("dashboard: registros del mes: %w", err)
	}
	recent, err := uc.records.List(ctx, repository.AttendanceFilter{
		UserID: userID,
		From:   rules.AddDays(today, -(recentDays - 1)),
		To:     today,
		Limit:  recentDays,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: registros recientes: %w", err)
	}

	return &dto.EmployeeDashboardResponse{
		TodayStatus:      attendance.ToTodayStatus(todayRec),
		MonthlyStats:     attendance.ToMonthlySummary(rules.Summarize(month)),
		RecentAttendance: attendance.ToResponses(recent),
	}, nil
}

// ManagerDashboard vista de la organización para hoy.
//
// Tres lecturas en paralelo:
//  1. empleados (rol employee)
//  2. registros de hoy
//  3. registros de la ventana semanal
func (uc *DashboardUseCase) ManagerDashboard(ctx context.Context, now time.Time) (*dto.ManagerDashboardResponse, error) {
	today := rules.CalendarDay(now.In(uc.loc))
	weekStart := rules.AddDays(today, -(trendDays - 1))

	type usersResult struct {
		users []*entity.User
		err   error
	}
	type recordsResult struct {
		records []*entity.Attendance
		err     error
	}

	usersCh := make(chan usersResult, 1)
	todayCh := make(chan recordsResult, 1)
	weekCh := make(chan recordsResult, 1)

	go func() {
		list, err := uc.users.ListByRole(ctx, entity.RoleEmployee)
		usersCh <- usersResult{list, err}
	}()
	go func() {
		list, err := uc.records.List(ctx, repository.AttendanceFilter{From: today, To: today})
		todayCh <- recordsResult{list, err}
	}()
	go func() {
		list, err := uc.records.List(ctx, repository.AttendanceFilter{From: weekStart, To: today})
		weekCh <- recordsResult{list, err}
	}()

	employees := <-usersCh
	todayRecs := <-todayCh
	week := <-weekCh

	if employees.err != nil {
		return nil, fmt.Errorf("dashboard: empleados: %w", employees.err)
	}
	if todayRecs.err != nil {
		return nil, fmt.Errorf("dashboard: registros de hoy: %w", todayRecs.err)
	}
	if week.err != nil {
		return nil, fmt.Errorf("dashboard: tendencia semanal: %w", week.err)
	}

	ids := make(map[string]struct{}, len(employees.users))
	for _, u := range employees.users {
		ids[u.ID] = struct{}{}
	}
	snap := rules.TodaySnapshot(onlyUsers(todayRecs.records, ids))
	total := len(employees.users)

	resp := &dto.ManagerDashboardResponse{
		TotalEmployees: total,
		TodayStats: dto.TodayStatsDTO{
			Present: snap.Present,
			Absent:  total - snap.Present,
			Late:    snap.Late,
		},
		WeeklyTrend:     make([]dto.DayTrendDTO, 0, trendDays),
		DepartmentWise:  make([]dto.DepartmentDTO, 0),
		AbsentEmployees: make([]dto.EmployeeSummary, 0),
	}
	for _, d := range rules.WeeklyTrend(onlyUsers(week.records, ids), today, trendDays) {
		resp.WeeklyTrend = append(resp.WeeklyTrend, dto.DayTrendDTO{
			Date:    d.Date.Format(rules.DateLayout),
			Present: d.Present,
			Absent:  d.Absent,
		})
	}
	for _, d := range rules.DepartmentBreakdown(employees.users, todayRecs.records) {
		resp.DepartmentWise = append(resp.DepartmentWise, dto.DepartmentDTO{
			Department: d.Department,
			Total:      d.Total,
			Present:    d.Present,
			Absent:     d.Absent,
		})
	}
	for _, u := range rules.AbsentEmployees(employees.users, todayRecs.records) {
		resp.AbsentEmployees = append(resp.AbsentEmployees, attendance.ToEmployeeSummary(u))
	}
	return resp, nil
}

// onlyUsers descarta registros de usuarios fuera del conjunto (p. ej. managers que marcaron entrada).
func onlyUsers(records []*entity.Attendance, ids map[string]struct{}) []*entity.Attendance {
	out := make([]*entity.Attendance, 0, len(records))
	for _, r := range records {
		if _, ok := ids[r.UserID]; ok {
			out = append(out, r)
		}
	}
	return out
}
