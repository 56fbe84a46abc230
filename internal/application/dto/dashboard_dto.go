package dto

// EmployeeDashboardResponse respuesta de GET /api/dashboard/employee.
type EmployeeDashboardResponse struct {
	TodayStatus      TodayStatusResponse    `json:"today_status"`
	MonthlyStats     MonthlySummaryResponse `json:"monthly_stats"`
	RecentAttendance []AttendanceResponse   `json:"recent_attendance"`
}

// ManagerDashboardResponse respuesta de GET /api/dashboard/manager.
type ManagerDashboardResponse struct {
	TotalEmployees  int               `json:"total_employees"`
	TodayStats      TodayStatsDTO     `json:"today_stats"`
	WeeklyTrend     []DayTrendDTO     `json:"weekly_trend"`
	DepartmentWise  []DepartmentDTO   `json:"department_wise"`
	AbsentEmployees []EmployeeSummary `json:"absent_employees"`
}

// TodayStatsDTO absent = total de empleados - presentes (presencia binaria).
type TodayStatsDTO struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

// DayTrendDTO punto de la tendencia semanal.
type DayTrendDTO struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// DepartmentDTO presencia por departamento.
type DepartmentDTO struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
}
