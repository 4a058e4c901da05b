package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/agencia-ops/internal/application/dto"
	"github.com/tu-usuario/agencia-ops/internal/domain"
	"github.com/tu-usuario/agencia-ops/internal/domain/draft"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
	"github.com/tu-usuario/agencia-ops/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas. El monto de la cabecera nunca se
// toma del request: siempre se deriva de las líneas en el servidor.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	tx          TxRunner
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	tx TxRunner,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		tx:          tx,
	}
}

// ─────────────────────────────────────────────────────────────
// Validación compartida de create/update
// ─────────────────────────────────────────────────────────────

// parseItems valida las líneas del request y las convierte a entidades sin ID
// ni InvoiceID (se asignan al persistir). El Amount del request se descarta.
func parseItems(in []dto.InvoiceItemRequest) ([]entity.InvoiceItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.InvoiceItem, 0, len(in))
	for i, it := range in {
		desc := strings.TrimSpace(it.Description)
		if desc == "" || it.Quantity <= 0 || it.Rate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.InvoiceItem{
			Position:    i,
			Description: desc,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      decimal.NewFromInt(it.Quantity).Mul(it.Rate),
		})
	}
	return items, nil
}

// validateHeader valida cliente, proyecto, estado y fecha de vencimiento.
// Devuelve el ProjectID normalizado ("" = sin proyecto).
func (uc *InvoiceUseCase) validateHeader(in dto.SaveInvoiceRequest) (string, error) {
	if in.ClientID == "" || in.DueDate == "" {
		return "", domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.DueDate); err != nil {
		return "", domain.ErrInvalidInput
	}
	if in.Status != "" && !draft.ValidStatus(in.Status) {
		return "", domain.ErrInvalidInput
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", domain.ErrNotFound
	}

	projectID := ""
	if in.ProjectID != nil && *in.ProjectID != "" && *in.ProjectID != draft.ProjectNone {
		project, err := uc.projectRepo.GetByID(*in.ProjectID)
		if err != nil {
			return "", err
		}
		if project == nil {
			return "", domain.ErrNotFound
		}
		// Un proyecto de otro cliente no puede colgar de esta factura.
		if project.ClientID != in.ClientID {
			return "", domain.ErrInvalidInput
		}
		projectID = project.ID
	}
	return projectID, nil
}

func totalOf(items []entity.InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// ─────────────────────────────────────────────────────────────
// Operaciones
// ─────────────────────────────────────────────────────────────

// Create crea una factura con sus líneas en una sola transacción. El número
// consecutivo se deriva del total de facturas existentes.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	items, err := parseItems(in.Items)
	if err != nil {
		return nil, err
	}
	projectID, err := uc.validateHeader(in)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}

	count, err := uc.invoiceRepo.Count()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: fmt.Sprintf("INV-%05d", count+1),
		ClientID:      in.ClientID,
		ProjectID:     projectID,
		Amount:        totalOf(items),
		Status:        status,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.tx.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		if err := repo.Create(invoice); err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.New().String()
			items[i].InvoiceID = invoice.ID
			if err := repo.CreateItem(&items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items), nil
}

// Update reemplaza cabecera y líneas de una factura existente. El número de
// factura original se conserva; las líneas viejas se sustituyen en bloque.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	items, err := parseItems(in.Items)
	if err != nil {
		return nil, err
	}
	projectID, err := uc.validateHeader(in)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = existing.Status
	}

	invoice := &entity.Invoice{
		ID:            existing.ID,
		InvoiceNumber: existing.InvoiceNumber,
		ClientID:      in.ClientID,
		ProjectID:     projectID,
		Amount:        totalOf(items),
		Status:        status,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	err = uc.tx.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		if err := repo.Update(invoice); err != nil {
			return err
		}
		if err := repo.DeleteItemsByInvoiceID(invoice.ID); err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.New().String()
			items[i].InvoiceID = invoice.ID
			if err := repo.CreateItem(&items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items), nil
}

// GetByID obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, derefItems(items)), nil
}

// List lista facturas con sus líneas, paginadas.
func (uc *InvoiceUseCase) List(page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toInvoiceResponse(inv, derefItems(items)))
	}
	return out, nil
}

// Delete elimina una factura; las líneas caen en cascada.
func (uc *InvoiceUseCase) Delete(id string) error {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

func derefItems(items []*entity.InvoiceItem) []entity.InvoiceItem {
	return lo.Map(items, func(it *entity.InvoiceItem, _ int) entity.InvoiceItem { return *it })
}

func toInvoiceResponse(inv *entity.Invoice, items []entity.InvoiceItem) *dto.InvoiceResponse {
	var projectID *string
	if inv.ProjectID != "" {
		id := inv.ProjectID
		projectID = &id
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ProjectID:     projectID,
		Amount:        inv.Amount,
		Status:        inv.Status,
		DueDate:       inv.DueDate,
		Items: lo.Map(items, func(it entity.InvoiceItem, _ int) dto.InvoiceItemResponse {
			return dto.InvoiceItemResponse{
				ID:          it.ID,
				Description: it.Description,
				Quantity:    it.Quantity,
				Rate:        it.Rate,
				Amount:      it.Amount,
			}
		}),
		Notes:     inv.Notes,
		CreatedAt: inv.CreatedAt,
	}
}
