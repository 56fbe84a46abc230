// Package auth registro, login y usuario actual.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/identity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/jhoicas/asistencia-api/pkg/jwt"
	"github.com/jhoicas/asistencia-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// maxAllocAttempts intentos de asignar un employee ID automático ante colisión.
const maxAllocAttempts = 3

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log.Component("auth"), now: time.Now}
}

// RegisterUser crea el usuario y devuelve su token.
// Un employee ID explícito se respeta tal cual; si falta se asigna el siguiente de la secuencia del rol.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID != "" {
		taken, err := uc.userRepo.GetByEmployeeID(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, domain.ErrEmployeeIDExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   employeeID,
		Department:   strings.TrimSpace(in.Department),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if employeeID != "" {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err := uc.createWithAllocatedID(ctx, user); err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// createWithAllocatedID reintenta cuando otro registro tomó el mismo ID.
// Agotados los reintentos usa un ID derivado del reloj: el registro no falla por la secuencia.
func (uc *AuthUseCase) createWithAllocatedID(ctx context.Context, user *entity.User) error {
	prefix := identity.PrefixForRole(user.Role)
	for attempt := 1; attempt <= maxAllocAttempts; attempt++ {
		user.EmployeeID = uc.nextEmployeeID(ctx, prefix)
		err := uc.userRepo.Create(ctx, user)
		if !errors.Is(err, domain.ErrEmployeeIDExists) {
			return err
		}
		uc.log.Debug().Str("employee_id", user.EmployeeID).Int("attempt", attempt).Msg("colisión de employee ID, reintentando")
	}

	user.EmployeeID = identity.Fallback(prefix, uc.now())
	uc.log.Warn().Str("employee_id", user.EmployeeID).Int("attempts", maxAllocAttempts).Msg("secuencia de employee ID bloqueada, usando ID de respaldo")
	return uc.userRepo.Create(ctx, user)
}

// nextEmployeeID nunca falla: si el almacén no responde usa un ID derivado del reloj.
func (uc *AuthUseCase) nextEmployeeID(ctx context.Context, prefix string) string {
	last, err := uc.userRepo.LastEmployeeID(ctx, prefix)
	if err != nil {
		id := identity.Fallback(prefix, uc.now())
		uc.log.Warn().Err(err).Str("employee_id", id).Msg("no se pudo consultar la secuencia, usando ID de respaldo")
		return id
	}
	return identity.Next(prefix, last)
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(user)
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:     user.ID,
		EmployeeID: user.EmployeeID,
		Role:       user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: ToUserResponse(user)}, nil
}

// ToUserResponse mapea la entidad sin el hash de password.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}
