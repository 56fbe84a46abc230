// Package memory implementa los repositorios en memoria del proceso.
// Se usa con DB_DRIVER=memory y como doble de pruebas; aplica las mismas
// reglas de unicidad que el esquema PostgreSQL.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu      sync.Mutex
	txMu    sync.Mutex
	users   map[string]*entity.User       // por id
	records map[string]*entity.Attendance // por recordKey
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:   make(map[string]*entity.User),
		records: make(map[string]*entity.Attendance),
	}
}

// Users repositorio de usuarios sobre el almacén.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Attendance repositorio de asistencia sobre el almacén.
func (s *Store) Attendance() *AttendanceRepo { return &AttendanceRepo{s: s} }

func recordKey(userID string, day time.Time) string {
	return userID + "|" + day.Format(attendance.DateLayout)
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func cloneRecord(a *entity.Attendance) *entity.Attendance {
	c := *a
	if a.CheckInTime != nil {
		t := *a.CheckInTime
		c.CheckInTime = &t
	}
	if a.CheckOutTime != nil {
		t := *a.CheckOutTime
		c.CheckOutTime = &t
	}
	c.Employee = nil
	return &c
}

func (s *Store) snapshot() (map[string]*entity.User, map[string]*entity.Attendance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make(map[string]*entity.User, len(s.users))
	for k, v := range s.users {
		users[k] = cloneUser(v)
	}
	records := make(map[string]*entity.Attendance, len(s.records))
	for k, v := range s.records {
		records[k] = cloneRecord(v)
	}
	return users, records
}

func (s *Store) restore(users map[string]*entity.User, records map[string]*entity.Attendance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	s.records = records
}
