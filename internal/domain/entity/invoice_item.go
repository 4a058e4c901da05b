package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea facturable de una factura.
// Position conserva el orden de inserción; dos líneas idénticas nunca se fusionan.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Position    int
	Description string
	Quantity    int64
	Rate        decimal.Decimal
	Amount      decimal.Decimal // Quantity × Rate, sin redondeo intermedio
}
