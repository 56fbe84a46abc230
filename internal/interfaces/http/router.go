package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/asistencia-api/internal/application/analytics"
	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/application/auth"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AttendanceUC *attendance.UseCase
	DashboardUC  *appanalytics.DashboardUseCase
	JWTSecret    string
	// Now reloj de la aplicación; nil usa time.Now.
	Now func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)
	managerOnly := RequireRole(entity.RoleManager)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Attendance: propias (cualquier rol) y de equipo (manager)
	attHandler := NewAttendanceHandler(deps.AttendanceUC, deps.Now)
	att := api.Group("/attendance", requireAuth)
	att.Post("/checkin", attHandler.CheckIn)
	att.Post("/checkout", attHandler.CheckOut)
	att.Get("/today", attHandler.Today)
	att.Get("/my-history", attHandler.MyHistory)
	att.Get("/my-summary", attHandler.MySummary)
	att.Get("/all", managerOnly, attHandler.List)
	att.Get("/employee/:id", managerOnly, attHandler.EmployeeRecords)
	att.Get("/summary", managerOnly, attHandler.TeamSummary)
	att.Get("/export", managerOnly, attHandler.Export)
	att.Get("/today-status", managerOnly, attHandler.TodayOverview)

	// Dashboards
	dashHandler := NewDashboardHandler(deps.DashboardUC, deps.Now)
	dash := api.Group("/dashboard", requireAuth)
	dash.Get("/employee", dashHandler.Employee)
	dash.Get("/manager", managerOnly, dashHandler.Manager)
}
