package auth_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/auth"
	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/jhoicas/asistencia-api/internal/infrastructure/memory"
	"github.com/jhoicas/asistencia-api/pkg/jwt"
	"github.com/jhoicas/asistencia-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newAuth(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, logger.Nop())
}

func register(t *testing.T, uc *auth.AuthUseCase, email, role, employeeID string) *dto.AuthResponse {
	t.Helper()
	resp, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Name: "Usuario", Email: email, Password: "secret1", Role: role, EmployeeID: employeeID,
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterUser_AsignaSecuenciaPorRol(t *testing.T) {
	uc := newAuth(memory.NewStore().Users())

	a := register(t, uc, "a@company.com", "", "")
	b := register(t, uc, "b@company.com", entity.RoleEmployee, "")
	m := register(t, uc, "m@company.com", entity.RoleManager, "")

	assert.Equal(t, "EMP001", a.User.EmployeeID)
	assert.Equal(t, entity.RoleEmployee, a.User.Role)
	assert.Equal(t, "EMP002", b.User.EmployeeID)
	assert.Equal(t, "MGR001", m.User.EmployeeID)

	id, err := jwt.Parse(secret, m.Token)
	require.NoError(t, err)
	assert.Equal(t, m.User.ID, id.UserID)
	assert.Equal(t, entity.RoleManager, id.Role)
	assert.Equal(t, "MGR001", id.EmployeeID)
}

func TestRegisterUser_ContinuaDesdeElMayor(t *testing.T) {
	uc := newAuth(memory.NewStore().Users())
	register(t, uc, "a@company.com", "", "EMP007")
	register(t, uc, "b@company.com", "", "EMP003")

	next := register(t, uc, "c@company.com", "", "")
	assert.Equal(t, "EMP008", next.User.EmployeeID)
}

func TestRegisterUser_Duplicados(t *testing.T) {
	uc := newAuth(memory.NewStore().Users())
	register(t, uc, "a@company.com", "", "EMP010")

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Name: "X", Email: "A@company.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{Name: "X", Email: "x@company.com", Password: "secret1", EmployeeID: "EMP010"})
	assert.ErrorIs(t, err, domain.ErrEmployeeIDExists)
}

// staleSequence devuelve un último ID desactualizado las primeras `stale` veces.
type staleSequence struct {
	repository.UserRepository
	stale int
	calls int
}

func (s *staleSequence) LastEmployeeID(ctx context.Context, prefix string) (string, error) {
	s.calls++
	if s.calls <= s.stale {
		return "", nil
	}
	return s.UserRepository.LastEmployeeID(ctx, prefix)
}

func TestRegisterUser_ReintentaAnteColision(t *testing.T) {
	store := memory.NewStore()
	register(t, newAuth(store.Users()), "a@company.com", "", "EMP001")

	repo := &staleSequence{UserRepository: store.Users(), stale: 1}
	resp := register(t, newAuth(repo), "b@company.com", "", "")

	assert.Equal(t, "EMP002", resp.User.EmployeeID)
	assert.Equal(t, 2, repo.calls)
}

func TestRegisterUser_AgotaReintentosUsaIDDeRespaldo(t *testing.T) {
	store := memory.NewStore()
	register(t, newAuth(store.Users()), "a@company.com", "", "EMP001")

	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "debug", Output: &buf})
	repo := &staleSequence{UserRepository: store.Users(), stale: 10}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, log)

	resp, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Name: "B", Email: "b@company.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Regexp(t, `^EMP[0-9]{6}$`, resp.User.EmployeeID)
	assert.Equal(t, 3, repo.calls)

	saved, err := store.Users().GetByEmail(context.Background(), "b@company.com")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, resp.User.EmployeeID, saved.EmployeeID)

	var warn string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, `"level":"warn"`) {
			warn = line
		}
	}
	require.NotEmpty(t, warn)
	assert.Contains(t, warn, resp.User.EmployeeID)
	assert.Equal(t, 1, strings.Count(warn, `"component"`))
}

// textOrderSequence devuelve el mayor ID por longitud y luego texto, sin leer los dígitos.
type textOrderSequence struct {
	repository.UserRepository
	ids []string
}

func (s textOrderSequence) LastEmployeeID(context.Context, string) (string, error) {
	best := ""
	for _, id := range s.ids {
		if len(id) > len(best) || (len(id) == len(best) && id > best) {
			best = id
		}
	}
	return best, nil
}

func TestRegisterUser_SecuenciaBloqueadaPorIDConCeros(t *testing.T) {
	store := memory.NewStore()
	seed := newAuth(store.Users())
	ids := []string{"EMP0005", "EMP006", "EMP999"}
	for i, id := range ids {
		register(t, seed, fmt.Sprintf("u%d@company.com", i), "", id)
	}

	// Orden numérico: EMP999 es el mayor aunque EMP0005 tenga más caracteres.
	next := register(t, seed, "m@company.com", "", "")
	assert.Equal(t, "EMP1000", next.User.EmployeeID)

	blocked := newAuth(textOrderSequence{UserRepository: store.Users(), ids: ids})
	resp, err := blocked.RegisterUser(context.Background(), dto.RegisterRequest{Name: "N", Email: "n@company.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Regexp(t, `^EMP[0-9]{6}$`, resp.User.EmployeeID)
}

type brokenSequence struct {
	repository.UserRepository
}

func (brokenSequence) LastEmployeeID(context.Context, string) (string, error) {
	return "", errors.New("conexión perdida")
}

func TestRegisterUser_IDDeRespaldo(t *testing.T) {
	repo := brokenSequence{memory.NewStore().Users()}
	resp := register(t, newAuth(repo), "a@company.com", entity.RoleManager, "")

	assert.Regexp(t, `^MGR[0-9]{6}$`, resp.User.EmployeeID)
}

func TestLogin(t *testing.T) {
	uc := newAuth(memory.NewStore().Users())
	reg := register(t, uc, "a@company.com", "", "")

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "A@Company.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@company.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@company.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe(t *testing.T) {
	uc := newAuth(memory.NewStore().Users())
	reg := register(t, uc, "a@company.com", "", "")

	me, err := uc.Me(context.Background(), reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@company.com", me.Email)
	assert.WithinDuration(t, time.Now(), me.CreatedAt, time.Minute)

	_, err = uc.Me(context.Background(), "desconocido")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
