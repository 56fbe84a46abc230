package dto

import "time"

// RegisterRequest entrada para registro. EmployeeID vacío = se asigna automáticamente.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"omitempty,oneof=employee manager"`
	EmployeeID string `json:"employee_id" validate:"omitempty,max=32"`
	Department string `json:"department" validate:"omitempty,max=120"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	EmployeeID string    `json:"employee_id"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthResponse salida de registro y login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// EmployeeSummary datos mínimos de un empleado para listados.
type EmployeeSummary struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
}
