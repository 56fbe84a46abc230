package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

func day(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

func at(d, h, m int) *time.Time {
	t := time.Date(2026, 3, d, h, m, 0, 0, time.UTC)
	return &t
}

func seedUser(t *testing.T, s *Store, id, email, employeeID, role string) {
	t.Helper()
	require.NoError(t, s.Users().Create(context.Background(), &entity.User{
		ID: id, Name: id, Email: email, EmployeeID: employeeID, Role: role, Department: "Engineering",
	}))
}

func TestUserRepo_Unicidad(t *testing.T) {
	s := NewStore()
	seedUser(t, s, "u1", "alice@company.com", "EMP001", entity.RoleEmployee)

	err := s.Users().Create(context.Background(), &entity.User{ID: "u2", Email: "ALICE@company.com", EmployeeID: "EMP002"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	err = s.Users().Create(context.Background(), &entity.User{ID: "u3", Email: "bob@company.com", EmployeeID: "EMP001"})
	assert.ErrorIs(t, err, domain.ErrEmployeeIDExists)

	got, err := s.Users().GetByEmail(context.Background(), "Alice@Company.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	missing, err := s.Users().GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_LastEmployeeIDOrdenNumerico(t *testing.T) {
	s := NewStore()
	seedUser(t, s, "u1", "a@x.com", "EMP999", entity.RoleEmployee)
	seedUser(t, s, "u2", "b@x.com", "EMP1000", entity.RoleEmployee)
	seedUser(t, s, "u3", "c@x.com", "MGR004", entity.RoleManager)
	seedUser(t, s, "u4", "d@x.com", "CUSTOM", entity.RoleEmployee)
	seedUser(t, s, "u5", "e@x.com", "EMP0005", entity.RoleEmployee)

	last, err := s.Users().LastEmployeeID(context.Background(), "EMP")
	require.NoError(t, err)
	assert.Equal(t, "EMP1000", last)

	last, err = s.Users().LastEmployeeID(context.Background(), "MGR")
	require.NoError(t, err)
	assert.Equal(t, "MGR004", last)

	n, err := s.Users().CountByRole(context.Background(), entity.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestAttendanceRepo_Transiciones(t *testing.T) {
	s := NewStore()
	repo := s.Attendance()
	ctx := context.Background()

	err := repo.CheckOut(ctx, &entity.Attendance{UserID: "u1", Date: day(10), CheckOutTime: at(10, 17, 0)})
	assert.ErrorIs(t, err, domain.ErrNotCheckedIn)

	rec, err := repo.CheckIn(ctx, &entity.Attendance{ID: "a1", UserID: "u1", Date: day(10), CheckInTime: at(10, 9, 0), Status: entity.StatusPresent})
	require.NoError(t, err)
	assert.Equal(t, "a1", rec.ID)

	_, err = repo.CheckIn(ctx, &entity.Attendance{ID: "a2", UserID: "u1", Date: day(10), CheckInTime: at(10, 9, 5), Status: entity.StatusPresent})
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)

	out := &entity.Attendance{
		UserID: "u1", Date: day(10), CheckOutTime: at(10, 17, 0), Status: entity.StatusPresent,
		TotalHours: decimal.NewNullDecimal(decimal.RequireFromString("8.00")),
	}
	require.NoError(t, repo.CheckOut(ctx, out))
	assert.ErrorIs(t, repo.CheckOut(ctx, out), domain.ErrAlreadyCheckedOut)

	got, err := repo.FindByUserAndDay(ctx, "u1", day(10))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CheckedOut())
	assert.Equal(t, "8", got.TotalHours.Decimal.String())
}

func TestAttendanceRepo_CheckInCompletaPlaceholder(t *testing.T) {
	s := NewStore()
	repo := s.Attendance()
	ctx := context.Background()

	inserted, err := repo.InsertIfAbsent(ctx, &entity.Attendance{ID: "p1", UserID: "u1", Date: day(10), Status: entity.StatusAbsent})
	require.NoError(t, err)
	assert.True(t, inserted)

	rec, err := repo.CheckIn(ctx, &entity.Attendance{ID: "nuevo", UserID: "u1", Date: day(10), CheckInTime: at(10, 9, 45), Status: entity.StatusLate})
	require.NoError(t, err)
	assert.Equal(t, "p1", rec.ID)
	assert.Equal(t, entity.StatusLate, rec.Status)

	inserted, err = repo.InsertIfAbsent(ctx, &entity.Attendance{ID: "p2", UserID: "u1", Date: day(10), Status: entity.StatusAbsent})
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestAttendanceRepo_ListFiltraYOrdena(t *testing.T) {
	s := NewStore()
	seedUser(t, s, "u1", "alice@company.com", "EMP001", entity.RoleEmployee)
	seedUser(t, s, "u2", "bob@company.com", "EMP002", entity.RoleEmployee)
	repo := s.Attendance()
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range []struct {
		user   string
		d      int
		status entity.AttendanceStatus
	}{
		{"u1", 9, entity.StatusPresent},
		{"u2", 10, entity.StatusLate},
		{"u1", 10, entity.StatusPresent},
		{"u1", 11, entity.StatusAbsent},
	} {
		_, err := repo.InsertIfAbsent(ctx, &entity.Attendance{
			ID: r.user + "-" + day(r.d).Format("02"), UserID: r.user, Date: day(r.d), Status: r.status,
			CreatedAt: created.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, repository.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "u1-11", all[0].ID)
	assert.Equal(t, "u1-10", all[1].ID, "mismo día: el creado más tarde primero")
	assert.Equal(t, "u2-10", all[2].ID)
	assert.Nil(t, all[0].Employee)

	ranged, err := repo.List(ctx, repository.AttendanceFilter{UserID: "u1", From: day(9), To: day(10), IncludeEmployee: true})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	require.NotNil(t, ranged[0].Employee)
	assert.Equal(t, "EMP001", ranged[0].Employee.EmployeeID)

	late, err := repo.List(ctx, repository.AttendanceFilter{Status: entity.StatusLate})
	require.NoError(t, err)
	require.Len(t, late, 1)
	assert.Equal(t, "u2", late[0].UserID)

	limited, err := repo.List(ctx, repository.AttendanceFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestTxRunner_RollbackAlFallar(t *testing.T) {
	s := NewStore()
	tx := NewTxRunner(s)
	boom := errors.New("boom")

	err := tx.Run(context.Background(), func(users repository.UserRepository, records repository.AttendanceRepository) error {
		if err := users.Create(context.Background(), &entity.User{ID: "u1", Email: "a@x.com", EmployeeID: "EMP001"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Users().GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = tx.Run(context.Background(), func(users repository.UserRepository, _ repository.AttendanceRepository) error {
		return users.Create(context.Background(), &entity.User{ID: "u1", Email: "a@x.com", EmployeeID: "EMP001"})
	})
	require.NoError(t, err)
	got, _ = s.Users().GetByID(context.Background(), "u1")
	assert.NotNil(t, got)
}
