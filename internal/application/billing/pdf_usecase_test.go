package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/agencia-ops/internal/application/billing"
	"github.com/tu-usuario/agencia-ops/internal/domain"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
)

// fakePDFGenerator registra con qué factura se le llamó y devuelve bytes fijos.
type fakePDFGenerator struct {
	lastInvoice *entity.Invoice
	lastClient  *entity.Client
}

func (g *fakePDFGenerator) Generate(inv *entity.Invoice, _ []*entity.InvoiceItem, client *entity.Client) ([]byte, error) {
	g.lastInvoice = inv
	g.lastClient = client
	return []byte("%PDF-fake"), nil
}

// El PDF se arma con la factura y su cliente; el nombre de archivo sigue el
// patrón invoice_<número>.pdf.
func TestPDFGenerate_NombreDeArchivo(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		"client-a": {ID: "client-a", Name: "Acme", Email: "acme@example.com"},
	}}
	require.NoError(t, invoiceRepo.Create(&entity.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-00001",
		ClientID:      "client-a",
		Amount:        decimal.RequireFromString("120.00"),
		Status:        entity.InvoiceStatusPending,
		DueDate:       "2026-10-01",
	}))

	gen := &fakePDFGenerator{}
	pdfUC := billing.NewPDFUseCase(invoiceRepo, clientRepo, gen)

	data, filename, err := pdfUC.Generate("inv-1")
	require.NoError(t, err)

	assert.Equal(t, "invoice_INV-00001.pdf", filename)
	assert.NotEmpty(t, data)
	require.NotNil(t, gen.lastInvoice)
	assert.Equal(t, "inv-1", gen.lastInvoice.ID)
	require.NotNil(t, gen.lastClient)
	assert.Equal(t, "Acme", gen.lastClient.Name)
}

// Factura inexistente → ErrNotFound sin invocar el generador.
func TestPDFGenerate_FacturaInexistente(t *testing.T) {
	gen := &fakePDFGenerator{}
	pdfUC := billing.NewPDFUseCase(newFakeInvoiceRepo(), &fakeClientRepo{clients: map[string]*entity.Client{}}, gen)

	_, _, err := pdfUC.Generate("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, gen.lastInvoice)
}
