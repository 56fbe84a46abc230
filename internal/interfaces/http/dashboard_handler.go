package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/asistencia-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints de dashboards.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	now func() time.Time
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{uc: uc, now: now}
}

// Employee devuelve el dashboard del usuario autenticado.
// GET /api/dashboard/employee
//
// Respuesta: today_status, monthly_stats (mes en curso) y recent_attendance (últimos 7 días).
func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	out, err := h.uc.EmployeeDashboard(c.UserContext(), GetUserID(c), h.now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Manager devuelve la vista de la organización para hoy.
// GET /api/dashboard/manager
//
// Respuesta: total_employees, today_stats, weekly_trend[7], department_wise, absent_employees.
func (h *DashboardHandler) Manager(c *fiber.Ctx) error {
	out, err := h.uc.ManagerDashboard(c.UserContext(), h.now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
