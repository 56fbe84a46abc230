package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceStatus estado de una jornada.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusLate    AttendanceStatus = "late"
	StatusHalfDay AttendanceStatus = "half-day"
	StatusAbsent  AttendanceStatus = "absent"
)

// Valid indica si s es uno de los cuatro estados conocidos.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay, StatusAbsent:
		return true
	}
	return false
}

// Attendance registro de asistencia: uno por (usuario, día calendario).
// Date está normalizada a medianoche en la zona horaria de la aplicación.
// CheckOutTime nunca se fija sin CheckInTime; TotalHours solo existe tras la salida.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       AttendanceStatus
	TotalHours   decimal.NullDecimal
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Employee se completa solo en consultas de manager (join con users).
	Employee *EmployeeRef
}

// EmployeeRef datos del dueño del registro para listados y reportes.
type EmployeeRef struct {
	ID         string
	Name       string
	Email      string
	EmployeeID string
	Department string
}

// CheckedIn indica si la jornada tiene entrada registrada.
func (a *Attendance) CheckedIn() bool { return a != nil && a.CheckInTime != nil }

// CheckedOut indica si la jornada tiene salida registrada.
func (a *Attendance) CheckedOut() bool { return a != nil && a.CheckOutTime != nil }

// Hours devuelve TotalHours o cero si aún no se calculó.
func (a *Attendance) Hours() decimal.Decimal {
	if a == nil || !a.TotalHours.Valid {
		return decimal.Zero
	}
	return a.TotalHours.Decimal
}
