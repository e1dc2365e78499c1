package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// MaxReferenceLen límite de reference_no y created_by.
const MaxReferenceLen = 100

// Transaction movimiento de stock de un ítem, opcionalmente imputado a un proyecto.
// ItemCode, ItemName y ProjectName vienen del JOIN en las lecturas.
type Transaction struct {
	ID              int64
	ItemID          int64
	Type            string
	Quantity        int // siempre positivo; el signo lo da Type
	ProjectID       *int64
	ReferenceNo     string
	TransactionDate time.Time
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time

	ItemCode    string
	ItemName    string
	ProjectName string
}

// Delta variación de stock que produce la transacción.
func (t *Transaction) Delta() int {
	if t.Type == TransactionTypeOUT {
		return -t.Quantity
	}
	return t.Quantity
}
