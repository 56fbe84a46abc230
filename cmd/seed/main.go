// Comando seed: crea los usuarios de demostración y genera historial de asistencia.
//
//	go run ./cmd/seed -days 30
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	rules "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/infrastructure/storage"
	"github.com/jhoicas/asistencia-api/pkg/config"
	"github.com/jhoicas/asistencia-api/pkg/logger"
)

func main() {
	days := flag.Int("days", 30, "días de historial anteriores a hoy")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.DB.Driver == storage.DriverMemory {
		log.Fatal().Msg("seed requiere DB_DRIVER=postgres; el almacén en memoria no persiste")
	}

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}
	lateHour, lateMinute, _ := cfg.Attendance.LateCutoff()
	policy := rules.Policy{LateHour: lateHour, LateMinute: lateMinute, HalfDayBelow: cfg.Attendance.HalfDayThreshold()}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	backend, err := storage.Open(ctx, cfg.DB, loc, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de asistencia")
	}
	defer backend.Close()

	uc := attendance.NewBackfillUseCase(backend.Tx, policy, loc, nil)
	res, err := uc.Run(ctx, attendance.DemoUsers(), *days, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	log.Info().
		Int("users_created", res.UsersCreated).
		Int("records_created", res.RecordsCreated).
		Int("records_skipped", res.RecordsSkipped).
		Int("days", *days).
		Msg("seed completado")
	for _, u := range attendance.DemoUsers() {
		log.Info().Str("email", u.Email).Str("role", u.Role).Str("employee_id", u.EmployeeID).Msg("usuario demo")
	}
}
