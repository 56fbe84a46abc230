//go:build integration

// Pruebas contra una base real: DATABASE_URL=postgres://... go test -tags integration ./internal/infrastructure/postgres/
package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/pkg/config"
)

func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	_, err = Migrate(ctx, pool)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// testPrefix prefijo aleatorio para no chocar con datos existentes.
func testPrefix() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte('A' + rand.IntN(26))
	}
	return "IT" + string(b)
}

func createTestUser(t *testing.T, pool *pgxpool.Pool, employeeID string) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         employeeID,
		Email:        fmt.Sprintf("%s-%s@test.local", employeeID, uuid.NewString()[:8]),
		PasswordHash: "x",
		Role:         entity.RoleEmployee,
		EmployeeID:   employeeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, NewUserRepository(pool).Create(context.Background(), u))
	t.Cleanup(func() {
		ctx := context.Background()
		_, _ = pool.Exec(ctx, `DELETE FROM attendances WHERE user_id = $1`, u.ID)
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, u.ID)
	})
	return u
}

func TestUserRepo_LastEmployeeIDOrdenNumerico(t *testing.T) {
	pool := openTestPool(t)
	prefix := testPrefix()
	for _, n := range []string{"0005", "006", "999", "0010"} {
		createTestUser(t, pool, prefix+n)
	}
	createTestUser(t, pool, prefix+"X1")

	last, err := NewUserRepository(pool).LastEmployeeID(context.Background(), prefix)
	require.NoError(t, err)
	assert.Equal(t, prefix+"999", last)

	createTestUser(t, pool, prefix+"1000")
	last, err = NewUserRepository(pool).LastEmployeeID(context.Background(), prefix)
	require.NoError(t, err)
	assert.Equal(t, prefix+"1000", last)
}

func TestUserRepo_EmployeeIDDuplicado(t *testing.T) {
	pool := openTestPool(t)
	id := testPrefix() + "001"
	createTestUser(t, pool, id)

	err := NewUserRepository(pool).Create(context.Background(), &entity.User{
		ID: uuid.NewString(), Name: "dup", Email: uuid.NewString() + "@test.local", PasswordHash: "x",
		Role: entity.RoleEmployee, EmployeeID: id, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeIDExists)
}

func checkInRecord(userID string, day, at time.Time) *entity.Attendance {
	return &entity.Attendance{
		ID: uuid.NewString(), UserID: userID, Date: day, CheckInTime: &at,
		Status: entity.StatusPresent, CreatedAt: at, UpdatedAt: at,
	}
}

func TestAttendanceRepo_CheckInConcurrenteUnSoloGanador(t *testing.T) {
	pool := openTestPool(t)
	u := createTestUser(t, pool, testPrefix()+"001")
	repo := NewAttendanceRepository(pool, time.UTC)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	const n = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, dups int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CheckIn(context.Background(), checkInRecord(u.ID, day, at))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrAlreadyCheckedIn):
				dups++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dups)
}

func TestAttendanceRepo_CheckInCompletaPlaceholderYCheckOutUnaVez(t *testing.T) {
	pool := openTestPool(t)
	u := createTestUser(t, pool, testPrefix()+"001")
	repo := NewAttendanceRepository(pool, time.UTC)
	ctx := context.Background()
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	placeholder := &entity.Attendance{ID: uuid.NewString(), UserID: u.ID, Date: day, Status: entity.StatusAbsent, CreatedAt: day, UpdatedAt: day}
	inserted, err := repo.InsertIfAbsent(ctx, placeholder)
	require.NoError(t, err)
	require.True(t, inserted)

	in := time.Date(2026, 3, 11, 9, 45, 0, 0, time.UTC)
	rec := checkInRecord(u.ID, day, in)
	rec.Status = entity.StatusLate
	saved, err := repo.CheckIn(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, placeholder.ID, saved.ID)
	assert.Equal(t, entity.StatusLate, saved.Status)

	out := time.Date(2026, 3, 11, 17, 45, 0, 0, time.UTC)
	checkout := &entity.Attendance{
		UserID: u.ID, Date: day, CheckOutTime: &out, Status: entity.StatusLate, UpdatedAt: out,
		TotalHours: decimal.NewNullDecimal(decimal.RequireFromString("8.00")),
	}
	require.NoError(t, repo.CheckOut(ctx, checkout))
	assert.ErrorIs(t, repo.CheckOut(ctx, checkout), domain.ErrAlreadyCheckedOut)

	got, err := repo.FindByUserAndDay(ctx, u.ID, day)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CheckedOut())
	assert.Equal(t, "8.00", got.TotalHours.Decimal.StringFixed(2))
}
