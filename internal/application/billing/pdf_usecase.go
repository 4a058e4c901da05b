package billing

import (
	"github.com/tu-usuario/agencia-ops/internal/domain"
	"github.com/tu-usuario/agencia-ops/internal/domain/repository"
)

// PDFUseCase arma el documento imprimible de una factura: carga cabecera,
// líneas y cliente, y delega el dibujo en el generador.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	generator   PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo, generator: generator}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *PDFUseCase) Generate(invoiceID string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	client, err := uc.clientRepo.GetByID(invoice.ClientID)
	if err != nil {
		return nil, "", err
	}

	data, err := uc.generator.Generate(invoice, items, client)
	if err != nil {
		return nil, "", err
	}
	return data, "invoice_" + invoice.InvoiceNumber + ".pdf", nil
}
