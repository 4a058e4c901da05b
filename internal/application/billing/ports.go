// Package billing contiene los casos de uso de facturación: creación y
// mantenimiento de facturas, la sesión de borrador que alimenta el formulario
// y la generación del PDF.
package billing

import (
	"context"

	"github.com/tu-usuario/agencia-ops/internal/domain/draft"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
	"github.com/tu-usuario/agencia-ops/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción; el repo de facturas que
// recibe fn está atado a esa transacción. Cabecera y líneas se persisten de
// forma atómica o no se persisten.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoiceStore es el almacén remoto contra el que la sesión de borrador envía
// facturas terminadas. La sesión no sabe si detrás hay HTTP o un fake de test.
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, p draft.Persistable) (*entity.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, p draft.Persistable) (*entity.Invoice, error)
}

// Notifier recibe los desenlaces de un envío para mostrárselos al usuario.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// PDFGenerator produce el documento imprimible de una factura.
type PDFGenerator interface {
	Generate(inv *entity.Invoice, items []*entity.InvoiceItem, client *entity.Client) ([]byte, error)
}
