package memory

import (
	"context"

	"github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ attendance.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones y restaura el estado previo si fn falla.
// Escrituras concurrentes fuera de la transacción se pierden en el rollback.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con los repositorios del almacén.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	records repository.AttendanceRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	users, records := r.s.snapshot()
	if err := fn(r.s.Users(), r.s.Attendance()); err != nil {
		r.s.restore(users, records)
		return err
	}
	return ctx.Err()
}
