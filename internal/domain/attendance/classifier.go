// Package attendance contiene las reglas puras de la jornada: clasificación
// de estado, cálculo de horas y agregaciones sobre conjuntos de registros.
package attendance

import (
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var msPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// Policy umbrales de clasificación.
type Policy struct {
	LateHour     int
	LateMinute   int
	HalfDayBelow time.Duration
}

// DefaultPolicy: tarde después de las 09:30, media jornada bajo 4 horas.
func DefaultPolicy() Policy {
	return Policy{LateHour: 9, LateMinute: 30, HalfDayBelow: 4 * time.Hour}
}

// LateCutoff devuelve el instante límite de entrada para el día dado.
func (p Policy) LateCutoff(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), p.LateHour, p.LateMinute, 0, 0, day.Location())
}

// ClassifyCheckIn estado inicial: late si la entrada es estrictamente posterior al corte.
func (p Policy) ClassifyCheckIn(checkIn, day time.Time) entity.AttendanceStatus {
	if checkIn.After(p.LateCutoff(day)) {
		return entity.StatusLate
	}
	return entity.StatusPresent
}

// ClassifyCheckOut degrada a half-day cuando la jornada es más corta que el umbral.
// Compara la duración sin redondear.
func (p Policy) ClassifyCheckOut(current entity.AttendanceStatus, worked time.Duration) entity.AttendanceStatus {
	if worked < p.HalfDayBelow {
		return entity.StatusHalfDay
	}
	return current
}

// HoursBetween horas entre dos instantes a partir de milisegundos enteros, redondeadas a 2 decimales.
func HoursBetween(in, out time.Time) decimal.Decimal {
	ms := out.Sub(in).Milliseconds()
	return decimal.NewFromInt(ms).Div(msPerHour).Round(2)
}

// IsPresent presencia binaria de dashboards: present o late.
func IsPresent(s entity.AttendanceStatus) bool {
	return s == entity.StatusPresent || s == entity.StatusLate
}
