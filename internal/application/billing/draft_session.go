package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/agencia-ops/internal/domain/draft"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
)

// DraftSession orquesta la vida de un borrador de factura para un formulario:
// mantiene el borrador, el buffer de línea pendiente y enruta el envío al
// almacén remoto. Una sesión sirve a un solo editor; no es segura para uso
// concurrente.
type DraftSession struct {
	store    InvoiceStore
	notifier Notifier

	draft   draft.Draft
	pending draft.PendingItem
}

// NewDraftSession arranca una sesión con borrador vacío en modo creación.
func NewDraftSession(store InvoiceStore, notifier Notifier) *DraftSession {
	return &DraftSession{
		store:    store,
		notifier: notifier,
		draft:    draft.New(),
		pending:  draft.NewPendingItem(),
	}
}

// StartNew descarta lo que hubiera y arranca un borrador vacío.
func (s *DraftSession) StartNew() {
	s.draft = draft.New()
	s.pending = draft.NewPendingItem()
}

// StartEdit siembra el borrador desde una factura persistida; el envío
// posterior se enrutará a update sobre esa misma factura.
func (s *DraftSession) StartEdit(inv *entity.Invoice, items []entity.InvoiceItem) {
	s.draft = draft.FromInvoice(inv, items)
	s.pending = draft.NewPendingItem()
}

// Draft devuelve una instantánea del borrador actual.
func (s *DraftSession) Draft() draft.Draft { return s.draft }

// Pending devuelve el buffer de línea pendiente actual.
func (s *DraftSession) Pending() draft.PendingItem { return s.pending }

// ─────────────────────────────────────────────────────────────
// Mutaciones de cabecera
// ─────────────────────────────────────────────────────────────

// SetClient cambia el cliente y revalida el proyecto elegido contra la lista
// de proyectos conocida; un proyecto de otro cliente vuelve al centinela.
func (s *DraftSession) SetClient(clientID string, allProjects []entity.Project) {
	s.draft = s.draft.OnClientChanged(clientID, allProjects)
}

// SetProject fija el proyecto elegido (o el centinela "none").
func (s *DraftSession) SetProject(projectID string) {
	if projectID == "" {
		projectID = draft.ProjectNone
	}
	s.draft.ProjectID = projectID
}

// SetDueDate fija la fecha de vencimiento (YYYY-MM-DD).
func (s *DraftSession) SetDueDate(dueDate string) { s.draft.DueDate = dueDate }

// SetNotes fija las notas libres.
func (s *DraftSession) SetNotes(notes string) { s.draft.Notes = notes }

// SetStatus cambia el estado; ErrInvalidStatus deja el borrador intacto.
func (s *DraftSession) SetStatus(status string) error {
	d, err := s.draft.SetStatus(status)
	if err != nil {
		return err
	}
	s.draft = d
	return nil
}

// ─────────────────────────────────────────────────────────────
// Buffer de línea pendiente
// ─────────────────────────────────────────────────────────────

// SetPendingDescription actualiza la descripción del buffer.
func (s *DraftSession) SetPendingDescription(v string) { s.pending.Description = v }

// SetPendingQuantity actualiza la cantidad del buffer (texto del formulario).
func (s *DraftSession) SetPendingQuantity(v string) { s.pending.Quantity = v }

// SetPendingRate actualiza la tarifa del buffer (texto del formulario).
func (s *DraftSession) SetPendingRate(v string) { s.pending.Rate = v }

// AddItem intenta admitir el buffer como línea del borrador. Si la validación
// falla, borrador y buffer quedan intactos y el error se devuelve al llamador.
func (s *DraftSession) AddItem() error {
	d, p, err := s.draft.AddItem(s.pending)
	if err != nil {
		return err
	}
	s.draft = d
	s.pending = p
	return nil
}

// RemoveItem quita la línea en la posición indicada.
func (s *DraftSession) RemoveItem(index int) error {
	d, err := s.draft.RemoveItem(index)
	if err != nil {
		return err
	}
	s.draft = d
	return nil
}

// ─────────────────────────────────────────────────────────────
// Envío
// ─────────────────────────────────────────────────────────────

// Submit concilia el borrador y lo envía al almacén: create si el borrador es
// nuevo, update si se sembró desde una factura existente. En éxito notifica y
// reinicia la sesión a un borrador vacío; en cualquier fallo el borrador
// sobrevive intacto para corregirse y reintentar.
func (s *DraftSession) Submit(ctx context.Context) error {
	p, err := s.draft.ToPersistable()
	if err != nil {
		s.notifier.Error(err.Error())
		return err
	}

	id, editing := s.draft.Editing()
	if editing {
		_, err = s.store.UpdateInvoice(ctx, id, p)
	} else {
		_, err = s.store.CreateInvoice(ctx, p)
	}
	if err != nil {
		s.notifier.Error(remoteDetail(err))
		return err
	}

	if editing {
		s.notifier.Success("Factura actualizada")
	} else {
		s.notifier.Success("Factura creada")
	}
	s.StartNew()
	return nil
}

// remoteDetail extrae el texto del servidor si el error lo trae; si no,
// describe el fallo tal cual.
func remoteDetail(err error) string {
	var re *draft.RemoteError
	if errors.As(err, &re) {
		return re.Detail
	}
	return fmt.Sprintf("error al guardar la factura: %v", err)
}
