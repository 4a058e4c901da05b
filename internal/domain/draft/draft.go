// Package draft implementa el motor de composición y totales de facturas:
// un borrador de factura que acumula líneas validadas, deriva su total y
// concilia la relación opcional cliente → proyecto antes del envío.
//
// Todas las operaciones reciben y devuelven el Draft por valor; ningún estado
// compartido, cada transición es testeable de forma aislada. El slice de
// líneas nunca se muta en sitio: agregar o quitar produce un slice nuevo.
package draft

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
)

// ProjectNone es el centinela explícito "sin proyecto seleccionado" que usa el
// formulario. Es distinto de campo sin asignar; el conciliador lo resuelve a
// ausencia (NULL) al construir la forma persistible.
const ProjectNone = "none"

// Draft es una factura en edición, aún no persistida. Pertenece en exclusiva
// a la sesión de formulario que la creó; no se comparte entre editores.
type Draft struct {
	ClientID  string
	ProjectID string // vacío o ProjectNone = sin proyecto
	DueDate   string // YYYY-MM-DD
	Status    string // pending, paid, overdue
	Notes     string
	Items     []LineItem
	Total     decimal.Decimal // derivado; se recalcula tras cada mutación de líneas

	editingID string // ID de la factura persistida cuando se edita; vacío al crear
}

// New devuelve un borrador vacío para una factura nueva.
func New() Draft {
	return Draft{
		ProjectID: ProjectNone,
		Status:    entity.InvoiceStatusPending,
		Total:     decimal.Zero,
	}
}

// FromInvoice siembra un borrador en modo edición desde una factura persistida.
// Las líneas se copian tal cual; si la factura no tiene proyecto se aplica el
// centinela ProjectNone. El borrador recuerda la identidad para que el envío
// se enrute a update y no a create.
func FromInvoice(inv *entity.Invoice, items []entity.InvoiceItem) Draft {
	d := Draft{
		ClientID:  inv.ClientID,
		ProjectID: inv.ProjectID,
		DueDate:   inv.DueDate,
		Status:    inv.Status,
		Notes:     inv.Notes,
		editingID: inv.ID,
	}
	if d.ProjectID == "" {
		d.ProjectID = ProjectNone
	}
	d.Items = make([]LineItem, 0, len(items))
	for _, it := range items {
		d.Items = append(d.Items, LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		})
	}
	d.Total = d.RecomputeTotal()
	return d
}

// Editing devuelve la identidad de la factura que se está editando y si el
// borrador opera en modo edición. El llamador elige el verbo (create/update)
// con este dato; el borrador nunca lo adivina por contenido.
func (d Draft) Editing() (string, bool) {
	return d.editingID, d.editingID != ""
}

// HasProject indica si hay un proyecto elegido (ni vacío ni centinela).
func (d Draft) HasProject() bool {
	return d.ProjectID != "" && d.ProjectID != ProjectNone
}

// AddItem valida el buffer pendiente y, si es admisible, agrega la línea al
// final del borrador y recalcula el total. Devuelve el buffer limpio listo
// para la siguiente entrada. Si la validación falla, borrador y buffer se
// devuelven intactos junto con el error.
func (d Draft) AddItem(p PendingItem) (Draft, PendingItem, error) {
	item, err := p.parse()
	if err != nil {
		return d, p, err
	}
	items := make([]LineItem, 0, len(d.Items)+1)
	items = append(items, d.Items...)
	items = append(items, item)
	d.Items = items
	d.Total = d.RecomputeTotal()
	return d, NewPendingItem(), nil
}

// RemoveItem quita exactamente la línea en la posición indicada (estable para
// el resto de índices) y recalcula el total. ErrIndexOutOfRange si la posición
// no existe; el borrador queda intacto.
func (d Draft) RemoveItem(index int) (Draft, error) {
	if index < 0 || index >= len(d.Items) {
		return d, ErrIndexOutOfRange
	}
	items := make([]LineItem, 0, len(d.Items)-1)
	items = append(items, d.Items[:index]...)
	items = append(items, d.Items[index+1:]...)
	d.Items = items
	d.Total = d.RecomputeTotal()
	return d, nil
}

// RecomputeTotal suma los Amount de las líneas restantes. Es un fold puro:
// nunca lee un total cacheado ni lo parchea incrementalmente, para evitar
// deriva por acumulación o lecturas viejas.
func (d Draft) RecomputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.Amount)
	}
	return total
}

// ValidStatus indica si s pertenece al conjunto cerrado de estados.
func ValidStatus(s string) bool {
	switch s {
	case entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue:
		return true
	}
	return false
}

// SetStatus cambia el estado validando pertenencia al conjunto cerrado.
// No hay grafo de transiciones: cualquier valor válido puede seguir a otro.
func (d Draft) SetStatus(s string) (Draft, error) {
	if !ValidStatus(s) {
		return d, ErrInvalidStatus
	}
	d.Status = s
	return d, nil
}
