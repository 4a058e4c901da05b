package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Invoice. Conjunto cerrado sin grafo de transiciones:
// cualquier estado puede seguir a cualquier otro.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice representa la cabecera de una factura de la agencia.
// Amount siempre es un valor derivado: la suma de los Amount de sus líneas.
type Invoice struct {
	ID            string
	InvoiceNumber string // asignado por el servidor al crear (INV-00001, ...)
	ClientID      string
	ProjectID     string // vacío = sin proyecto asociado (NULL en DB)
	Amount        decimal.Decimal
	Status        string // pending, paid, overdue
	DueDate       string // fecha calendario YYYY-MM-DD
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
