// Package storage elige el backend de persistencia según DB_DRIVER.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/jhoicas/asistencia-api/internal/infrastructure/memory"
	"github.com/jhoicas/asistencia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/asistencia-api/pkg/config"
	"github.com/jhoicas/asistencia-api/pkg/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Backend repositorios listos para inyectar en los casos de uso.
type Backend struct {
	Users   repository.UserRepository
	Records repository.AttendanceRepository
	Tx      attendance.TxRunner
	close   func()
}

// Close libera las conexiones del backend.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open conecta el backend configurado. Con postgres aplica las migraciones pendientes.
func Open(ctx context.Context, cfg config.DBConfig, loc *time.Location, log *logger.Logger) (*Backend, error) {
	switch cfg.Driver {
	case DriverMemory:
		log.Warn().Msg("usando almacén en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &Backend{
			Users:   store.Users(),
			Records: store.Attendance(),
			Tx:      memory.NewTxRunner(store),
		}, nil
	case DriverPostgres, "":
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Int("applied", applied).Msg("migraciones aplicadas")
		return &Backend{
			Users:   postgres.NewUserRepository(pool),
			Records: postgres.NewAttendanceRepository(pool, loc),
			Tx:      postgres.NewTxRunner(pool, loc),
			close:   pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("DB_DRIVER desconocido %q", cfg.Driver)
}
