package identity_test

import (
	"testing"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/identity"
	"github.com/stretchr/testify/assert"
)

func TestNext_Secuencia(t *testing.T) {
	assert.Equal(t, "EMP008", identity.Next(identity.EmployeePrefix, "EMP007"))
	assert.Equal(t, "EMP001", identity.Next(identity.EmployeePrefix, ""))
	assert.Equal(t, "MGR002", identity.Next(identity.ManagerPrefix, "MGR001"))
	assert.Equal(t, "EMP100", identity.Next(identity.EmployeePrefix, "EMP099"))
}

func TestNext_SuperaTresDigitosSinTruncar(t *testing.T) {
	assert.Equal(t, "EMP1000", identity.Next(identity.EmployeePrefix, "EMP999"))
	assert.Equal(t, "EMP1001", identity.Next(identity.EmployeePrefix, "EMP1000"))
}

func TestNext_IgnoraIdentificadoresAjenos(t *testing.T) {
	assert.Equal(t, "EMP001", identity.Next(identity.EmployeePrefix, "MGR010"))
	assert.Equal(t, "EMP001", identity.Next(identity.EmployeePrefix, "EMP-7"))
	assert.Equal(t, "EMP001", identity.Next(identity.EmployeePrefix, "custom"))
}

func TestPrefixForRole(t *testing.T) {
	assert.Equal(t, "MGR", identity.PrefixForRole(entity.RoleManager))
	assert.Equal(t, "EMP", identity.PrefixForRole(entity.RoleEmployee))
	assert.Equal(t, "EMP", identity.PrefixForRole(""))
}

func TestFallback_SeisDigitosDelReloj(t *testing.T) {
	now := time.UnixMilli(1760000123456)
	assert.Equal(t, "EMP123456", identity.Fallback(identity.EmployeePrefix, now))
	assert.Equal(t, "MGR123456", identity.Fallback(identity.ManagerPrefix, now))
}
