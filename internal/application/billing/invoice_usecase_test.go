package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/agencia-ops/internal/application/billing"
	"github.com/tu-usuario/agencia-ops/internal/application/dto"
	"github.com/tu-usuario/agencia-ops/internal/domain"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
	"github.com/tu-usuario/agencia-ops/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (estilo repositorio, sin framework de mocks)
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]*entity.InvoiceItem
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: map[string]*entity.Invoice{},
		items:    map[string][]*entity.InvoiceItem{},
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	cp := *item
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], &cp)
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	delete(r.items, invoiceID)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	delete(r.items, id)
	return nil
}

func (r *fakeInvoiceRepo) Count() (int64, error) {
	return int64(len(r.invoices)), nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error          { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) { return r.clients[id], nil }
func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error          { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) Delete(id string) error                 { delete(r.clients, id); return nil }

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func (r *fakeProjectRepo) Create(p *entity.Project) error             { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) { return r.projects[id], nil }
func (r *fakeProjectRepo) List(limit, offset int) ([]*entity.Project, error) { return nil, nil }
func (r *fakeProjectRepo) ListByClient(clientID string) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProjectRepo) Update(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) Delete(id string) error         { delete(r.projects, id); return nil }

// fakeTxRunner ejecuta fn directamente contra el repo en memoria; no hay
// transacción real que coordinar.
type fakeTxRunner struct {
	repo repository.InvoiceRepository
}

func (r *fakeTxRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(r.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func newFixture() (*billing.InvoiceUseCase, *fakeInvoiceRepo) {
	invoiceRepo := newFakeInvoiceRepo()
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		"client-a": {ID: "client-a", Name: "Acme", Email: "acme@example.com"},
		"client-b": {ID: "client-b", Name: "Globex", Email: "globex@example.com"},
	}}
	projectRepo := &fakeProjectRepo{projects: map[string]*entity.Project{
		"proj-a": {ID: "proj-a", Name: "Rediseño web", ClientID: "client-a"},
		"proj-b": {ID: "proj-b", Name: "Campaña", ClientID: "client-b"},
	}}
	uc := billing.NewInvoiceUseCase(invoiceRepo, clientRepo, projectRepo, &fakeTxRunner{repo: invoiceRepo})
	return uc, invoiceRepo
}

func itemReq(desc string, qty int64, rate string) dto.InvoiceItemRequest {
	return dto.InvoiceItemRequest{
		Description: desc,
		Quantity:    qty,
		Rate:        decimal.RequireFromString(rate),
	}
}

func validRequest() dto.SaveInvoiceRequest {
	return dto.SaveInvoiceRequest{
		ClientID: "client-a",
		DueDate:  "2026-10-01",
		Items: []dto.InvoiceItemRequest{
			itemReq("Diseño de identidad", 4, "25.00"),
			itemReq("Horas de desarrollo", 2, "10.00"),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// El monto enviado por el cliente se ignora: el servidor lo deriva de las líneas.
func TestInvoiceCreate_MontoDerivadoDeLineas(t *testing.T) {
	uc, _ := newFixture()

	in := validRequest()
	in.Amount = decimal.RequireFromString("999999.99") // debe descartarse

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// 4×25.00 + 2×10.00 = 120.00
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("120.00")),
		"total esperado 120.00, obtenido %s", out.Amount)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Amount.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, out.Items[1].Amount.Equal(decimal.RequireFromString("20.00")))
}

// Tarifas con más de dos decimales sobreviven exactas a la persistencia: una
// lectura posterior devuelve la cabecera igual a la suma de sus líneas, sin
// que ninguna capa redondee por el camino.
func TestInvoiceCreate_PersistenciaSinRedondeo(t *testing.T) {
	uc, _ := newFixture()

	in := validRequest()
	in.Items = []dto.InvoiceItemRequest{
		itemReq("Fracción A", 3, "0.333"),
		itemReq("Fracción B", 3, "0.333"),
	}

	created, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	fetched, err := uc.GetByID(created.ID)
	require.NoError(t, err)

	assert.True(t, fetched.Amount.Equal(decimal.RequireFromString("1.998")),
		"el total debe conservarse exacto, obtenido %s", fetched.Amount)

	sum := decimal.Zero
	for _, it := range fetched.Items {
		sum = sum.Add(it.Amount)
	}
	assert.True(t, fetched.Amount.Equal(sum),
		"la cabecera leída debe seguir siendo la suma de sus líneas")
}

// El consecutivo se asigna como INV-%05d a partir del conteo de facturas.
func TestInvoiceCreate_NumeracionConsecutiva(t *testing.T) {
	uc, _ := newFixture()

	first, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "INV-00001", first.InvoiceNumber)

	second, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "INV-00002", second.InvoiceNumber)
}

// Estado por defecto pending; estado fuera del conjunto cerrado se rechaza.
func TestInvoiceCreate_Estados(t *testing.T) {
	uc, _ := newFixture()

	out, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, out.Status)

	in := validRequest()
	in.Status = "archivada"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un proyecto de otro cliente no puede asociarse a la factura.
func TestInvoiceCreate_ProyectoDeOtroClienteRechazado(t *testing.T) {
	uc, _ := newFixture()

	in := validRequest()
	projectID := "proj-b" // pertenece a client-b
	in.ProjectID = &projectID

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Proyecto propio del cliente sí se asocia; "none" y nil significan sin proyecto.
func TestInvoiceCreate_ProyectoOpcional(t *testing.T) {
	uc, _ := newFixture()

	in := validRequest()
	projectID := "proj-a"
	in.ProjectID = &projectID
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out.ProjectID)
	assert.Equal(t, "proj-a", *out.ProjectID)

	in2 := validRequest()
	sentinel := "none"
	in2.ProjectID = &sentinel
	out2, err := uc.Create(context.Background(), in2)
	require.NoError(t, err)
	assert.Nil(t, out2.ProjectID, "el centinela none debe resolverse a ausencia")
}

// Cliente inexistente, líneas vacías y fecha malformada bloquean la creación.
func TestInvoiceCreate_Validaciones(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	in := validRequest()
	in.ClientID = "fantasma"
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = validRequest()
	in.Items = nil
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequest()
	in.DueDate = "01/10/2026"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequest()
	in.Items[0].Quantity = 0
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Update conserva el número original y reemplaza las líneas en bloque.
func TestInvoiceUpdate_ConservaNumeroYReemplazaLineas(t *testing.T) {
	uc, repo := newFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	in := validRequest()
	in.Items = []dto.InvoiceItemRequest{itemReq("Consultoría", 1, "500.00")}
	in.Status = entity.InvoiceStatusPaid

	updated, err := uc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber,
		"el número de factura debe sobrevivir al update")
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, entity.InvoiceStatusPaid, updated.Status)

	items, err := repo.GetItemsByInvoiceID(created.ID)
	require.NoError(t, err)
	require.Len(t, items, 1, "las líneas viejas deben reemplazarse, no acumularse")
	assert.Equal(t, "Consultoría", items[0].Description)
}

// Update sobre una factura inexistente → ErrNotFound.
func TestInvoiceUpdate_NoExiste(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Update(context.Background(), "fantasma", validRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceDelete(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete("fantasma"), domain.ErrNotFound)
}
