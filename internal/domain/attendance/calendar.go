package attendance

import (
	"fmt"
	"time"
)

// DateLayout formato de día calendario en la API y reportes.
const DateLayout = "2006-01-02"

// CalendarDay trunca t a medianoche en su propia zona horaria.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay compara año, mes y día ignorando la hora.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddDays desplaza un día calendario respetando cambios de horario.
func AddDays(day time.Time, n int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+n, 0, 0, 0, 0, day.Location())
}

// MonthRange primer y último día del mes (ambos inclusivos).
func MonthRange(year int, month time.Month, loc *time.Location) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last = AddDays(first.AddDate(0, 1, 0), -1)
	return first, last
}

// ResolveMonth aplica el mes en curso cuando month/year vienen en cero y valida rangos.
func ResolveMonth(month, year int, now time.Time) (time.Month, int, error) {
	if month == 0 && year == 0 {
		return now.Month(), now.Year(), nil
	}
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("mes fuera de rango: %d", month)
	}
	if year < 1970 || year > 9999 {
		return 0, 0, fmt.Errorf("año fuera de rango: %d", year)
	}
	return time.Month(month), year, nil
}

// ParseDay interpreta YYYY-MM-DD como día calendario en loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}
