package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/identity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo UserRepository en memoria. Email y employee ID son únicos.
type UserRepo struct {
	s *Store
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
		if u.EmployeeID == user.EmployeeID {
			return domain.ErrEmployeeIDExists
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

// GetByEmployeeID obtiene un usuario por su identificador legible.
func (r *UserRepo) GetByEmployeeID(_ context.Context, employeeID string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.EmployeeID == employeeID }), nil
}

// ListByRole lista usuarios del rol ordenados por employee_id.
func (r *UserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.User, 0)
	for _, u := range r.s.users {
		if u.Role == role {
			list = append(list, cloneUser(u))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EmployeeID < list[j].EmployeeID })
	return list, nil
}

// CountByRole cuenta usuarios del rol.
func (r *UserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	list, err := r.ListByRole(ctx, role)
	return len(list), err
}

// LastEmployeeID mayor identificador de la secuencia del prefijo.
func (r *UserRepo) LastEmployeeID(_ context.Context, prefix string) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var (
		last string
		best int64 = -1
	)
	for _, u := range r.s.users {
		if n, ok := identity.Sequence(prefix, u.EmployeeID); ok && n > best {
			best, last = n, u.EmployeeID
		}
	}
	return last, nil
}

func (r *UserRepo) find(match func(*entity.User) bool) *entity.User {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			return cloneUser(u)
		}
	}
	return nil
}
