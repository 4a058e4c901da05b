package repository

import "github.com/tu-usuario/agencia-ops/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	Update(invoice *entity.Invoice) error
	// DeleteItemsByInvoiceID borra todas las líneas; en update se reemplazan en bloque.
	DeleteItemsByInvoiceID(invoiceID string) error
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	Delete(id string) error
	// Count devuelve el total de facturas; base del consecutivo INV-%05d.
	Count() (int64, error)
}
