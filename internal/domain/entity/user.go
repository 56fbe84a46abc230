package entity

import "time"

// Roles válidos para User.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User representa un empleado o manager de la organización.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // employee, manager
	EmployeeID   string // legible: EMP001, MGR001
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager indica si el usuario tiene rol manager.
func (u *User) IsManager() bool {
	return u != nil && u.Role == RoleManager
}
