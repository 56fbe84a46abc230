package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrEmployeeIDExists   = errors.New("el employee ID ya existe")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Transiciones del registro diario: NoRecord → CheckedIn → CheckedOut.
	ErrAlreadyCheckedIn  = errors.New("ya registró entrada hoy")
	ErrNotCheckedIn      = errors.New("debe registrar entrada primero")
	ErrAlreadyCheckedOut = errors.New("ya registró salida hoy")
)
