package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de factura en el body de create/update. Amount se
// acepta por compatibilidad con el formulario pero se recalcula siempre en el
// servidor como quantity × rate.
type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"required,gt=0"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount,omitempty"`
}

// SaveInvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// Amount se ignora: el servidor sustituye el total derivado de las líneas.
// ProjectID null o vacío significa "sin proyecto".
type SaveInvoiceRequest struct {
	ClientID  string               `json:"client_id" validate:"required,uuid"`
	ProjectID *string              `json:"project_id"`
	Amount    decimal.Decimal      `json:"amount,omitempty"`
	Status    string               `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	DueDate   string               `json:"due_date" validate:"required"`
	Items     []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes     string               `json:"notes,omitempty"`
}

// InvoiceItemResponse línea en la respuesta.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse factura completa en respuestas.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	ClientID      string                `json:"client_id"`
	ProjectID     *string               `json:"project_id"` // null si no hay proyecto
	Amount        decimal.Decimal       `json:"amount"`
	Status        string                `json:"status"`
	DueDate       string                `json:"due_date"`
	Items         []InvoiceItemResponse `json:"items"`
	Notes         string                `json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
