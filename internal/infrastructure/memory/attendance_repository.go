package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo AttendanceRepository en memoria. Un registro por (usuario, día).
type AttendanceRepo struct {
	s *Store
}

// FindByUserAndDay devuelve el registro del día o (nil, nil).
func (r *AttendanceRepo) FindByUserAndDay(_ context.Context, userID string, day time.Time) (*entity.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a, ok := r.s.records[recordKey(userID, day)]; ok {
		return cloneRecord(a), nil
	}
	return nil, nil
}

// CheckIn crea el registro o completa un placeholder sin entrada.
func (r *AttendanceRepo) CheckIn(_ context.Context, rec *entity.Attendance) (*entity.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := recordKey(rec.UserID, rec.Date)
	existing, ok := r.s.records[key]
	if !ok {
		r.s.records[key] = cloneRecord(rec)
		return cloneRecord(rec), nil
	}
	if existing.CheckInTime != nil {
		return nil, domain.ErrAlreadyCheckedIn
	}
	t := *rec.CheckInTime
	existing.CheckInTime = &t
	existing.Status = rec.Status
	existing.UpdatedAt = rec.UpdatedAt
	return cloneRecord(existing), nil
}

// CheckOut fija salida, horas y estado si el registro aún no tiene salida.
func (r *AttendanceRepo) CheckOut(_ context.Context, rec *entity.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.records[recordKey(rec.UserID, rec.Date)]
	if !ok || existing.CheckInTime == nil {
		return domain.ErrNotCheckedIn
	}
	if existing.CheckOutTime != nil {
		return domain.ErrAlreadyCheckedOut
	}
	t := *rec.CheckOutTime
	existing.CheckOutTime = &t
	existing.TotalHours = rec.TotalHours
	existing.Status = rec.Status
	existing.UpdatedAt = rec.UpdatedAt
	return nil
}

// List filtra y ordena por fecha descendente (empate: creación más reciente primero).
func (r *AttendanceRepo) List(_ context.Context, f repository.AttendanceFilter) ([]*entity.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	from, to := dayKey(f.From), dayKey(f.To)
	list := make([]*entity.Attendance, 0)
	for _, a := range r.s.records {
		if f.UserID != "" && a.UserID != f.UserID {
			continue
		}
		d := dayKey(a.Date)
		if from != "" && d < from {
			continue
		}
		if to != "" && d > to {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		c := cloneRecord(a)
		if f.IncludeEmployee {
			if u, ok := r.s.users[a.UserID]; ok {
				c.Employee = &entity.EmployeeRef{
					ID:         u.ID,
					Name:       u.Name,
					Email:      u.Email,
					EmployeeID: u.EmployeeID,
					Department: u.Department,
				}
			}
		}
		list = append(list, c)
	}

	sort.Slice(list, func(i, j int) bool {
		di, dj := dayKey(list[i].Date), dayKey(list[j].Date)
		if di != dj {
			return di > dj
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if f.Limit > 0 && len(list) > f.Limit {
		list = list[:f.Limit]
	}
	return list, nil
}

// InsertIfAbsent inserta el registro si el día del usuario está libre.
func (r *AttendanceRepo) InsertIfAbsent(_ context.Context, rec *entity.Attendance) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := recordKey(rec.UserID, rec.Date)
	if _, ok := r.s.records[key]; ok {
		return false, nil
	}
	r.s.records[key] = cloneRecord(rec)
	return true, nil
}

func dayKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(attendance.DateLayout)
}
