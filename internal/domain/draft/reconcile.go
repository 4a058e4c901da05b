package draft

import "github.com/shopspring/decimal"

// Persistable es la forma canónica que espera la interfaz de persistencia:
// el centinela "sin proyecto" resuelto a puntero nulo y el monto siempre
// derivado de las líneas, nunca el escalar que haya tecleado el usuario.
type Persistable struct {
	ClientID  string
	ProjectID *string // nil = sin proyecto
	Amount    decimal.Decimal
	Status    string
	DueDate   string
	Notes     string
	Items     []LineItem
}

// ToPersistable concilia el borrador terminado en su forma persistible.
// Valida en orden: líneas no vacías (ErrEmptyItemSet), cliente asignado
// (ErrMissingClient) y fecha de vencimiento (ErrMissingDueDate). Cualquier
// fallo bloquea el envío completo; el borrador sobrevive para corregirse.
func (d Draft) ToPersistable() (Persistable, error) {
	if len(d.Items) == 0 {
		return Persistable{}, ErrEmptyItemSet
	}
	if d.ClientID == "" {
		return Persistable{}, ErrMissingClient
	}
	if d.DueDate == "" {
		return Persistable{}, ErrMissingDueDate
	}

	var projectID *string
	if d.HasProject() {
		id := d.ProjectID
		projectID = &id
	}

	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)

	return Persistable{
		ClientID:  d.ClientID,
		ProjectID: projectID,
		Amount:    d.RecomputeTotal(),
		Status:    d.Status,
		DueDate:   d.DueDate,
		Notes:     d.Notes,
		Items:     items,
	}, nil
}
