package attendance

import (
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Los buckets "absent" de estos agregados cuentan solo registros absent
// explícitos; un día sin registro no aporta nada.

// MonthlySummary conteo por estado de un conjunto de registros de un usuario.
type MonthlySummary struct {
	Present    int
	Absent     int
	Late       int
	HalfDay    int
	TotalHours decimal.Decimal
	TotalDays  int
}

// TeamSummary conteo por estado de todos los usuarios en un rango.
type TeamSummary struct {
	Present      int
	Absent       int
	Late         int
	HalfDay      int
	TotalRecords int
}

// DepartmentStat presencia binaria de un departamento para hoy.
type DepartmentStat struct {
	Department string
	Total      int
	Present    int
	Absent     int
}

// DayTrend punto de la tendencia diaria.
type DayTrend struct {
	Date    time.Time
	Present int
	Absent  int
}

// Snapshot resumen del día para el listado del manager.
type Snapshot struct {
	Present int // present o late
	Absent  int // absent explícito
	Late    int
}

type statusCounts struct {
	present, absent, late, halfDay int
}

func countStatuses(records []*entity.Attendance) statusCounts {
	var c statusCounts
	for _, r := range records {
		switch r.Status {
		case entity.StatusPresent:
			c.present++
		case entity.StatusAbsent:
			c.absent++
		case entity.StatusLate:
			c.late++
		case entity.StatusHalfDay:
			c.halfDay++
		}
	}
	return c
}

// Summarize resumen mensual; TotalHours suma horas (ausentes cuentan 0) y se redondea al final.
func Summarize(records []*entity.Attendance) MonthlySummary {
	c := countStatuses(records)
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Hours())
	}
	return MonthlySummary{
		Present:    c.present,
		Absent:     c.absent,
		Late:       c.late,
		HalfDay:    c.halfDay,
		TotalHours: total.Round(2),
		TotalDays:  len(records),
	}
}

// SummarizeTeam resumen de equipo.
func SummarizeTeam(records []*entity.Attendance) TeamSummary {
	c := countStatuses(records)
	return TeamSummary{
		Present:      c.present,
		Absent:       c.absent,
		Late:         c.late,
		HalfDay:      c.halfDay,
		TotalRecords: len(records),
	}
}

// presentUserIDs usuarios con registro present o late.
func presentUserIDs(records []*entity.Attendance) map[string]struct{} {
	ids := make(map[string]struct{}, len(records))
	for _, r := range records {
		if IsPresent(r.Status) {
			ids[r.UserID] = struct{}{}
		}
	}
	return ids
}

func employeesOnly(users []*entity.User) []*entity.User {
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u.Role == entity.RoleEmployee {
			out = append(out, u)
		}
	}
	return out
}

// DepartmentBreakdown agrupa empleados (rol employee) por departamento.
// Absent = Total - Present. El orden sigue la primera aparición en users.
func DepartmentBreakdown(users []*entity.User, today []*entity.Attendance) []DepartmentStat {
	present := presentUserIDs(today)
	index := make(map[string]int)
	var stats []DepartmentStat
	for _, u := range employeesOnly(users) {
		i, ok := index[u.Department]
		if !ok {
			i = len(stats)
			index[u.Department] = i
			stats = append(stats, DepartmentStat{Department: u.Department})
		}
		stats[i].Total++
		if _, ok := present[u.ID]; ok {
			stats[i].Present++
		}
	}
	for i := range stats {
		stats[i].Absent = stats[i].Total - stats[i].Present
	}
	return stats
}

// WeeklyTrend una entrada por día de la ventana [today-days+1, today], el más antiguo primero.
func WeeklyTrend(records []*entity.Attendance, today time.Time, days int) []DayTrend {
	if days <= 0 {
		days = 7
	}
	today = CalendarDay(today)
	trend := make([]DayTrend, days)
	for i := range trend {
		trend[i].Date = AddDays(today, i-days+1)
	}
	for _, r := range records {
		for i := range trend {
			if !SameDay(r.Date, trend[i].Date) {
				continue
			}
			if IsPresent(r.Status) {
				trend[i].Present++
			} else if r.Status == entity.StatusAbsent {
				trend[i].Absent++
			}
			break
		}
	}
	return trend
}

// AbsentEmployees empleados sin registro present/late hoy, en el orden de users.
func AbsentEmployees(users []*entity.User, today []*entity.Attendance) []*entity.User {
	present := presentUserIDs(today)
	var out []*entity.User
	for _, u := range employeesOnly(users) {
		if _, ok := present[u.ID]; !ok {
			out = append(out, u)
		}
	}
	return out
}

// TodaySnapshot cuenta presencia, ausencias explícitas y tardanzas del día.
func TodaySnapshot(today []*entity.Attendance) Snapshot {
	var s Snapshot
	for _, r := range today {
		if IsPresent(r.Status) {
			s.Present++
		}
		switch r.Status {
		case entity.StatusAbsent:
			s.Absent++
		case entity.StatusLate:
			s.Late++
		}
	}
	return s
}
