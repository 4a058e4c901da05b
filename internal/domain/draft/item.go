package draft

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem es una línea facturable ya admitida en el borrador. Es inmutable:
// para modificarla hay que quitarla y volver a agregarla.
type LineItem struct {
	Description string
	Quantity    int64
	Rate        decimal.Decimal
	Amount      decimal.Decimal // Quantity × Rate, multiplicación decimal sin redondeo
}

// PendingItem es el buffer de entrada de una línea, tal como llega del
// formulario: cantidad y tarifa como texto. Se parsea y valida únicamente
// en la frontera (AddItem); dentro del borrador todo es numérico estricto.
type PendingItem struct {
	Description string
	Quantity    string
	Rate        string
}

// NewPendingItem devuelve el buffer limpio, listo para la siguiente línea.
// La cantidad arranca en "1" igual que el formulario.
func NewPendingItem() PendingItem {
	return PendingItem{Quantity: "1"}
}

// parse valida el buffer y produce la línea inmutable.
// Orden de validación: descripción y tarifa (ErrMissingField), luego cantidad
// (ErrInvalidQuantity). La cantidad ausente vale 1.
func (p PendingItem) parse() (LineItem, error) {
	desc := strings.TrimSpace(p.Description)
	rateText := strings.TrimSpace(p.Rate)
	if desc == "" || rateText == "" {
		return LineItem{}, ErrMissingField
	}
	rate, err := decimal.NewFromString(rateText)
	if err != nil || rate.IsNegative() {
		return LineItem{}, ErrMissingField
	}

	qty := int64(1)
	if q := strings.TrimSpace(p.Quantity); q != "" {
		n, err := strconv.ParseInt(q, 10, 64)
		if err != nil || n <= 0 {
			return LineItem{}, ErrInvalidQuantity
		}
		qty = n
	}

	return LineItem{
		Description: desc,
		Quantity:    qty,
		Rate:        rate,
		Amount:      decimal.NewFromInt(qty).Mul(rate),
	}, nil
}
