package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/agencia-ops/internal/application/billing"
	"github.com/tu-usuario/agencia-ops/internal/domain/draft"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de almacén y notificador
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	createCalls []draft.Persistable
	updateCalls []string
	failWith    error
}

func (s *fakeStore) CreateInvoice(_ context.Context, p draft.Persistable) (*entity.Invoice, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.createCalls = append(s.createCalls, p)
	return &entity.Invoice{ID: "inv-1", InvoiceNumber: "INV-00001"}, nil
}

func (s *fakeStore) UpdateInvoice(_ context.Context, id string, p draft.Persistable) (*entity.Invoice, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.updateCalls = append(s.updateCalls, id)
	return &entity.Invoice{ID: id}, nil
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func newSession() (*billing.DraftSession, *fakeStore, *fakeNotifier) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	return billing.NewDraftSession(store, notifier), store, notifier
}

// fillValidDraft deja la sesión con un borrador enviable: cliente, fecha y una línea.
func fillValidDraft(t *testing.T, s *billing.DraftSession) {
	t.Helper()
	s.SetClient("client-a", nil)
	s.SetDueDate("2026-10-01")
	s.SetPendingDescription("Diseño")
	s.SetPendingQuantity("2")
	s.SetPendingRate("50.00")
	require.NoError(t, s.AddItem())
}

// ──────────────────────────────────────────────────────────────────────────────
// Composición
// ──────────────────────────────────────────────────────────────────────────────

// Al admitir una línea el buffer vuelve limpio con cantidad "1".
func TestDraftSession_AddItemLimpiaBuffer(t *testing.T) {
	s, _, _ := newSession()
	fillValidDraft(t, s)

	p := s.Pending()
	assert.Empty(t, p.Description)
	assert.Equal(t, "1", p.Quantity)
	assert.Empty(t, p.Rate)

	d := s.Draft()
	require.Len(t, d.Items, 1)
	assert.True(t, d.Total.Equal(decimal.RequireFromString("100.00")))
}

// Un buffer inválido no toca el borrador ni el propio buffer.
func TestDraftSession_AddItemInvalidoNoMuta(t *testing.T) {
	s, _, _ := newSession()
	s.SetPendingDescription("   ")
	s.SetPendingRate("50.00")

	err := s.AddItem()
	assert.ErrorIs(t, err, draft.ErrMissingField)
	assert.Empty(t, s.Draft().Items)
	assert.Equal(t, "   ", s.Pending().Description, "el buffer debe conservarse para corregirlo")
}

// Cambiar de cliente resetea el proyecto si dejó de ser elegible.
func TestDraftSession_CambioDeClienteReseteaProyecto(t *testing.T) {
	s, _, _ := newSession()
	projects := []entity.Project{
		{ID: "proj-a", ClientID: "client-a"},
		{ID: "proj-b", ClientID: "client-b"},
	}

	s.SetClient("client-a", projects)
	s.SetProject("proj-a")
	require.Equal(t, "proj-a", s.Draft().ProjectID)

	s.SetClient("client-b", projects)
	assert.Equal(t, draft.ProjectNone, s.Draft().ProjectID,
		"proyecto de otro cliente debe volver al centinela")
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

// Borrador nuevo → create; tras el éxito la sesión arranca un borrador limpio.
func TestDraftSession_SubmitNuevoEnrutaACreate(t *testing.T) {
	s, store, notifier := newSession()
	fillValidDraft(t, s)

	require.NoError(t, s.Submit(context.Background()))

	require.Len(t, store.createCalls, 1)
	assert.Empty(t, store.updateCalls)
	assert.Equal(t, []string{"Factura creada"}, notifier.successes)

	d := s.Draft()
	assert.Empty(t, d.Items, "tras el envío la sesión debe quedar limpia")
	assert.Empty(t, d.ClientID)
}

// Borrador sembrado desde factura existente → update con el mismo ID.
func TestDraftSession_SubmitEdicionEnrutaAUpdate(t *testing.T) {
	s, store, notifier := newSession()

	inv := &entity.Invoice{
		ID:       "inv-42",
		ClientID: "client-a",
		Status:   entity.InvoiceStatusPending,
		DueDate:  "2026-10-01",
	}
	items := []entity.InvoiceItem{
		{Description: "Diseño", Quantity: 2, Rate: decimal.RequireFromString("50.00"), Amount: decimal.RequireFromString("100.00")},
	}
	s.StartEdit(inv, items)

	require.NoError(t, s.Submit(context.Background()))

	require.Len(t, store.updateCalls, 1)
	assert.Equal(t, "inv-42", store.updateCalls[0])
	assert.Empty(t, store.createCalls)
	assert.Equal(t, []string{"Factura actualizada"}, notifier.successes)
}

// Validación de envío fallida → notifica, no llama al almacén, el borrador sobrevive.
func TestDraftSession_SubmitSinLineasBloquea(t *testing.T) {
	s, store, notifier := newSession()
	s.SetClient("client-a", nil)
	s.SetDueDate("2026-10-01")

	err := s.Submit(context.Background())
	assert.ErrorIs(t, err, draft.ErrEmptyItemSet)
	assert.Empty(t, store.createCalls)
	assert.Empty(t, store.updateCalls)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "client-a", s.Draft().ClientID, "el borrador debe sobrevivir")
}

// Fallo remoto → el detail del servidor llega al notificador y el borrador sobrevive.
func TestDraftSession_FalloRemotoPreservaBorrador(t *testing.T) {
	s, store, notifier := newSession()
	fillValidDraft(t, s)

	store.failWith = draft.NewRemoteError("create invoice", "la factura no tiene líneas válidas", nil)

	err := s.Submit(context.Background())
	require.Error(t, err)

	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "la factura no tiene líneas válidas", notifier.errors[0],
		"el texto del servidor debe mostrarse tal cual")

	d := s.Draft()
	require.Len(t, d.Items, 1, "el borrador no debe descartarse tras un fallo remoto")
	assert.Equal(t, "client-a", d.ClientID)
}

// Fallo remoto sin detail → fallback genérico.
func TestDraftSession_FalloRemotoSinDetalleUsaFallback(t *testing.T) {
	s, store, notifier := newSession()
	fillValidDraft(t, s)

	store.failWith = draft.NewRemoteError("create invoice", "", errors.New("connection refused"))

	err := s.Submit(context.Background())
	require.Error(t, err)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "operación fallida", notifier.errors[0])
}
