// Package identity define el formato de los identificadores legibles de usuario
// (EMP001, MGR001, ...).
package identity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

const (
	EmployeePrefix = "EMP"
	ManagerPrefix  = "MGR"

	minDigits = 3
)

var sequential = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// PrefixForRole prefijo del identificador según el rol.
func PrefixForRole(role string) string {
	if role == entity.RoleManager {
		return ManagerPrefix
	}
	return EmployeePrefix
}

// First primer identificador de la secuencia (EMP001).
func First(prefix string) string {
	return Format(prefix, 1)
}

// Format aplica relleno de ceros a 3 dígitos; más allá de 999 crece sin truncar.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, minDigits, n)
}

// Next calcula el siguiente identificador a partir del último existente.
// Si lastID está vacío o no pertenece a la secuencia del prefijo devuelve First.
func Next(prefix, lastID string) string {
	n, ok := Sequence(prefix, lastID)
	if !ok {
		return First(prefix)
	}
	return Format(prefix, n+1)
}

// Sequence extrae el número de un identificador PREFIX + dígitos.
func Sequence(prefix, id string) (int64, bool) {
	m := sequential.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil || m[1] != prefix {
		return 0, false
	}
	n, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Fallback identificador derivado del reloj (últimos 6 dígitos de los milisegundos Unix)
// para cuando el almacén no puede consultarse.
func Fallback(prefix string, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return prefix + ms
}
