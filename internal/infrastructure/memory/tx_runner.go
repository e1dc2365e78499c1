package memory

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// journal registra cómo deshacer cada escritura hecha dentro de una transacción.
// Solo revierte lo que escribió la transacción; las escrituras concurrentes de otros
// repositorios se conservan.
type journal struct {
	undo []func()
}

func (j *journal) record(fn func()) {
	if j != nil {
		j.undo = append(j.undo, fn)
	}
}

// rollback requiere s.mu tomado en escritura.
func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// TxRunner serializa las transacciones y deshace sus escrituras si fn falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repositorios sobre el mismo almacén.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	j := &journal{}
	itemRepo := &ItemRepository{s: r.s, j: j}
	txRepo := &TransactionRepository{s: r.s, j: j}
	if err := fn(itemRepo, txRepo); err != nil {
		r.s.mu.Lock()
		j.rollback()
		r.s.mu.Unlock()
		return err
	}
	return nil
}
