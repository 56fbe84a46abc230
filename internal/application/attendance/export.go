package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	rules "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

const defaultExportFormat = "csv"

// Export genera el reporte de asistencia en el formato pedido (csv por defecto).
// Un employeeId desconocido es ErrNotFound: exportar todo en su lugar sería engañoso.
func (uc *UseCase) Export(ctx context.Context, q dto.ExportQuery, now time.Time) (*dto.ExportFile, error) {
	format := q.Format
	if format == "" {
		format = defaultExportFormat
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato no soportado %q", domain.ErrInvalidInput, format)
	}

	filter := repository.AttendanceFilter{IncludeEmployee: true}
	if q.StartDate != "" {
		from, err := rules.ParseDay(q.StartDate, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		filter.From = from
	}
	if q.EndDate != "" {
		to, err := rules.ParseDay(q.EndDate, uc.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		filter.To = to
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, fmt.Errorf("%w: endDate anterior a startDate", domain.ErrInvalidInput)
	}

	if q.EmployeeID != "" {
		user, err := uc.users.GetByEmployeeID(ctx, q.EmployeeID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrNotFound
		}
		filter.UserID = user.ID
	}

	list, err := uc.records.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := Report{
		From:     filter.From,
		To:       filter.To,
		Location: uc.loc,
		Charset:  q.Charset,
		Rows:     make([]ReportRow, 0, len(list)),
	}
	for _, a := range list {
		row := ReportRow{
			Date:         a.Date,
			CheckInTime:  a.CheckInTime,
			CheckOutTime: a.CheckOutTime,
			Status:       string(a.Status),
			TotalHours:   a.TotalHours,
		}
		if a.Employee != nil {
			row.EmployeeID = a.Employee.EmployeeID
			row.Name = a.Employee.Name
			row.Email = a.Employee.Email
			row.Department = a.Employee.Department
		}
		report.Rows = append(report.Rows, row)
	}

	body, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}

	contentType := renderer.ContentType()
	if format == "csv" && q.Charset == "windows-1252" {
		contentType = "text/csv; charset=windows-1252"
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("attendance-report-%s.%s", now.In(uc.loc).Format("20060102"), format),
		ContentType: contentType,
		Body:        body,
	}, nil
}
