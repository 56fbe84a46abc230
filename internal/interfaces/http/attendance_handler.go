package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/application/dto"
)

// AttendanceHandler endpoints de la jornada diaria y consultas de asistencia.
type AttendanceHandler struct {
	uc  *attendance.UseCase
	now func() time.Time
}

// NewAttendanceHandler construye el handler. now permite fijar el reloj en tests.
func NewAttendanceHandler(uc *attendance.UseCase, now func() time.Time) *AttendanceHandler {
	if now == nil {
		now = time.Now
	}
	return &AttendanceHandler{uc: uc, now: now}
}

func (h *AttendanceHandler) clock() time.Time { return h.now().In(h.uc.Location()) }

// CheckIn godoc
// @Summary      Registrar entrada
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	out, err := h.uc.CheckIn(c.UserContext(), GetUserID(c), h.clock())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckOut godoc
// @Summary      Registrar salida
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attendance/checkout [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOut(c.UserContext(), GetUserID(c), h.clock())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Estado de hoy del usuario
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.TodayStatusResponse
// @Router       /api/attendance/today [get]
func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.UserContext(), GetUserID(c), h.clock())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MyHistory godoc
// @Summary      Historial mensual propio
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  int  false  "1-12 (por defecto el mes en curso)"
// @Param        year   query  int  false  "año"
// @Success      200   {array}   dto.AttendanceResponse
// @Router       /api/attendance/my-history [get]
func (h *AttendanceHandler) MyHistory(c *fiber.Ctx) error {
	var q dto.MonthQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.MyHistory(c.UserContext(), GetUserID(c), q, h.clock())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MySummary godoc
// @Summary      Resumen mensual propio
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  int  false  "1-12"
// @Param        year   query  int  false  "año"
// @Success      200   {object}  dto.MonthlySummaryResponse
// @Router       /api/attendance/my-summary [get]
func (h *AttendanceHandler) MySummary(c *fiber.Ctx) error {
	var q dto.MonthQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.MySummary(c.UserContext(), GetUserID(c), q, h.clock())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Registros de todos los empleados (manager)
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  query  string  false  "EMP001"
// @Param        date        query  string  false  "YYYY-MM-DD (prioridad sobre month/year)"
// @Param        status      query  string  false  "present | late | half-day | absent"
// @Param        month       query  int     false  "1-12"
// @Param        year        query  int     false  "año"
// @Success      200   {array}   dto.AttendanceResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/attendance/all [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	var q dto.ListAttendanceQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EmployeeRecords godoc
// @Summary      Registros mensuales de un empleado (manager)
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        id     path   string  true   "UUID o employee ID"
// @Param        month  query  int     false  "1-12"
// @Param        year   query  int     false  "año"
// @Success      200   {array}   dto.AttendanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attendance/employee/{id} [get]
func (h *AttendanceHandler) EmployeeRecords(c *fiber.Ctx) error {
	var q dto.MonthQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.EmployeeRecords(c.UserContext(), c.Params("id"), q, h.clock())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TeamSummary godoc
// @Summary      Resumen del equipo (manager)
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  int  false  "1-12"
// @Param        year   query  int  false  "año"
// @Success      200   {object}  dto.TeamSummaryResponse
// @Router       /api/attendance/summary [get]
func (h *AttendanceHandler) TeamSummary(c *fiber.Ctx) error {
	var q dto.MonthQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.TeamSummary(c.UserContext(), q, h.clock())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TodayOverview godoc
// @Summary      Asistencia de hoy de la organización (manager)
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.TodayOverviewResponse
// @Router       /api/attendance/today-status [get]
func (h *AttendanceHandler) TodayOverview(c *fiber.Ctx) error {
	out, err := h.uc.TodayOverview(c.UserContext(), h.clock())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte (manager)
// @Tags         attendance
// @Produce      text/csv
// @Security     BearerAuth
// @Param        startDate   query  string  false  "YYYY-MM-DD"
// @Param        endDate     query  string  false  "YYYY-MM-DD"
// @Param        employeeId  query  string  false  "EMP001"
// @Param        format      query  string  false  "csv | xlsx | pdf"
// @Param        charset     query  string  false  "utf-8 | windows-1252 (solo csv)"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attendance/export [get]
func (h *AttendanceHandler) Export(c *fiber.Ctx) error {
	var q dto.ExportQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	file, err := h.uc.Export(c.UserContext(), q, h.clock())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(file.Filename))
	return c.Send(file.Body)
}
