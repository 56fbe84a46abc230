package repository

import (
	"context"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists o domain.ErrEmployeeIDExists
	// cuando el almacén rechaza la unicidad.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*entity.User, error)
	// ListByRole lista usuarios de un rol ordenados por employee_id.
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	CountByRole(ctx context.Context, role string) (int, error)
	// LastEmployeeID devuelve el mayor identificador con forma PREFIX + dígitos
	// (orden numérico) o "" si no hay ninguno.
	LastEmployeeID(ctx context.Context, prefix string) (string, error)
}
