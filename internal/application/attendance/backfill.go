package attendance

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/asistencia-api/internal/domain"
	rules "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// absentRate probabilidad de que un día laboral quede como ausencia explícita.
const absentRate = 0.10

// SeedUser usuario de demostración.
type SeedUser struct {
	Name       string
	Email      string
	Password   string
	Role       string
	EmployeeID string
	Department string
}

// BackfillResult conteos de lo creado.
type BackfillResult struct {
	UsersCreated   int
	RecordsCreated int
	RecordsSkipped int
}

// BackfillUseCase puebla usuarios e historial de asistencia.
// Los días con registro previo no se tocan; sábados y domingos se omiten.
type BackfillUseCase struct {
	tx     TxRunner
	policy rules.Policy
	loc    *time.Location
	rng    *rand.Rand
}

// NewBackfillUseCase construye el caso de uso. rng permite resultados reproducibles.
func NewBackfillUseCase(tx TxRunner, policy rules.Policy, loc *time.Location, rng *rand.Rand) *BackfillUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	return &BackfillUseCase{tx: tx, policy: policy, loc: loc, rng: rng}
}

// Run crea los usuarios que falten y genera `days` días de historial anteriores a hoy,
// todo en una transacción. Hoy queda libre para registrar entrada.
func (uc *BackfillUseCase) Run(ctx context.Context, seed []SeedUser, days int, now time.Time) (BackfillResult, error) {
	var res BackfillResult
	if days <= 0 {
		return res, fmt.Errorf("%w: days debe ser positivo", domain.ErrInvalidInput)
	}
	today := rules.CalendarDay(now.In(uc.loc))

	err := uc.tx.Run(ctx, func(users repository.UserRepository, records repository.AttendanceRepository) error {
		res = BackfillResult{}
		var employees []*entity.User
		for _, s := range seed {
			u, created, err := uc.ensureUser(ctx, users, s, now)
			if err != nil {
				return err
			}
			if created {
				res.UsersCreated++
			}
			if u.Role == entity.RoleEmployee {
				employees = append(employees, u)
			}
		}

		for _, u := range employees {
			for i := 1; i <= days; i++ {
				day := rules.AddDays(today, -i)
				if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
					continue
				}
				ok, err := records.InsertIfAbsent(ctx, uc.historicRecord(u.ID, day))
				if err != nil {
					return fmt.Errorf("backfill %s %s: %w", u.EmployeeID, day.Format(rules.DateLayout), err)
				}
				if ok {
					res.RecordsCreated++
				} else {
					res.RecordsSkipped++
				}
			}
		}
		return nil
	})
	return res, err
}

func (uc *BackfillUseCase) ensureUser(ctx context.Context, users repository.UserRepository, s SeedUser, now time.Time) (*entity.User, bool, error) {
	existing, err := users.GetByEmail(ctx, s.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: string(hash),
		Role:         s.Role,
		EmployeeID:   s.EmployeeID,
		Department:   s.Department,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, u); err != nil {
		return nil, false, fmt.Errorf("crear %s: %w", s.Email, err)
	}
	return u, true, nil
}

// historicRecord ausencia explícita (~10%) o jornada con entrada entre 08:00 y 10:00 y 8–9 horas.
func (uc *BackfillUseCase) historicRecord(userID string, day time.Time) *entity.Attendance {
	rec := &entity.Attendance{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      day,
		CreatedAt: day,
		UpdatedAt: day,
	}
	if uc.rng.Float64() < absentRate {
		rec.Status = entity.StatusAbsent
		return rec
	}

	in := time.Date(day.Year(), day.Month(), day.Day(), 8+uc.rng.IntN(2), uc.rng.IntN(60), 0, 0, day.Location())
	worked := 8*time.Hour + time.Duration(uc.rng.Int64N(int64(time.Hour)))
	worked = worked.Truncate(time.Minute)
	out := in.Add(worked)

	rec.CheckInTime = &in
	rec.CheckOutTime = &out
	rec.Status = uc.policy.ClassifyCheckOut(uc.policy.ClassifyCheckIn(in, day), worked)
	rec.TotalHours = decimal.NewNullDecimal(rules.HoursBetween(in, out))
	rec.UpdatedAt = out
	return rec
}

// DemoUsers el equipo de demostración: un manager y cinco empleados.
func DemoUsers() []SeedUser {
	return []SeedUser{
		{Name: "John Manager", Email: "manager@company.com", Password: "manager123", Role: entity.RoleManager, EmployeeID: "MGR001", Department: "Management"},
		{Name: "Alice Johnson", Email: "alice@company.com", Password: "employee123", Role: entity.RoleEmployee, EmployeeID: "EMP001", Department: "Engineering"},
		{Name: "Bob Smith", Email: "bob@company.com", Password: "employee123", Role: entity.RoleEmployee, EmployeeID: "EMP002", Department: "Engineering"},
		{Name: "Carol Williams", Email: "carol@company.com", Password: "employee123", Role: entity.RoleEmployee, EmployeeID: "EMP003", Department: "Sales"},
		{Name: "David Brown", Email: "david@company.com", Password: "employee123", Role: entity.RoleEmployee, EmployeeID: "EMP004", Department: "Sales"},
		{Name: "Eva Davis", Email: "eva@company.com", Password: "employee123", Role: entity.RoleEmployee, EmployeeID: "EMP005", Department: "HR"},
	}
}
