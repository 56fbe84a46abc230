package attendance

import (
	"github.com/jhoicas/asistencia-api/internal/application/dto"
	rules "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// ToResponse convierte un registro a su DTO.
func ToResponse(a *entity.Attendance) *dto.AttendanceResponse {
	if a == nil {
		return nil
	}
	out := &dto.AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Date:         a.Date.Format(rules.DateLayout),
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       string(a.Status),
	}
	if a.TotalHours.Valid {
		h := a.TotalHours.Decimal
		out.TotalHours = &h
	}
	if a.Employee != nil {
		out.Employee = &dto.EmployeeSummary{
			ID:         a.Employee.ID,
			Name:       a.Employee.Name,
			Email:      a.Employee.Email,
			EmployeeID: a.Employee.EmployeeID,
			Department: a.Employee.Department,
		}
	}
	return out
}

// ToResponses convierte una lista; nunca devuelve nil para que el JSON sea [].
func ToResponses(list []*entity.Attendance) []dto.AttendanceResponse {
	out := make([]dto.AttendanceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *ToResponse(a))
	}
	return out
}

// ToTodayStatus vista del día; sin registro el estado es "absent" solo en la vista.
func ToTodayStatus(a *entity.Attendance) dto.TodayStatusResponse {
	if a == nil {
		return dto.TodayStatusResponse{Status: string(entity.StatusAbsent)}
	}
	out := dto.TodayStatusResponse{
		CheckedIn:    a.CheckedIn(),
		CheckedOut:   a.CheckedOut(),
		Status:       string(a.Status),
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
	}
	if a.TotalHours.Valid {
		h := a.TotalHours.Decimal
		out.TotalHours = &h
	}
	return out
}

// ToMonthlySummary adapta el agregado de dominio.
func ToMonthlySummary(s rules.MonthlySummary) dto.MonthlySummaryResponse {
	return dto.MonthlySummaryResponse{
		Present:    s.Present,
		Absent:     s.Absent,
		Late:       s.Late,
		HalfDay:    s.HalfDay,
		TotalHours: s.TotalHours,
		TotalDays:  s.TotalDays,
	}
}

// ToEmployeeSummary datos mínimos de un usuario.
func ToEmployeeSummary(u *entity.User) dto.EmployeeSummary {
	return dto.EmployeeSummary{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		EmployeeID: u.EmployeeID,
		Department: u.Department,
	}
}
