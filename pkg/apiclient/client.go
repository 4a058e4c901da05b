// Package apiclient es el consumidor HTTP del almacén de recursos de la
// agencia: lista clientes, proyectos y equipo, y crea, actualiza y borra
// facturas contra la API REST. Implementa el puerto de almacén de la sesión
// de borrador.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/agencia-ops/internal/application/billing"
	"github.com/tu-usuario/agencia-ops/internal/application/dto"
	"github.com/tu-usuario/agencia-ops/internal/domain/draft"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
)

var _ billing.InvoiceStore = (*Client)(nil)

// Client habla con la API REST de la agencia. Adjunta el Bearer token de la
// sesión a cada petición protegida.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New construye el cliente. baseURL sin slash final, ej. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken fija el Bearer token de la sesión autenticada.
func (c *Client) SetToken(token string) { c.token = token }

// Login autentica contra /api/auth/login y guarda el token de la sesión.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	in := dto.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out, "login"); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	return &out, nil
}

// ListClients lista los clientes de la agencia.
func (c *Client) ListClients(ctx context.Context) ([]dto.ClientResponse, error) {
	var out []dto.ClientResponse
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &out, "list clients"); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjects lista todos los proyectos. El filtrado por cliente lo hace el
// borrador en memoria; aquí se trae la lista completa como hace el formulario.
func (c *Client) ListProjects(ctx context.Context) ([]entity.Project, error) {
	var raw []dto.ProjectResponse
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &raw, "list projects"); err != nil {
		return nil, err
	}
	projects := make([]entity.Project, 0, len(raw))
	for _, p := range raw {
		projects = append(projects, entity.Project{
			ID:          p.ID,
			Name:        p.Name,
			ClientID:    p.ClientID,
			Description: p.Description,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			Status:      p.Status,
			Budget:      p.Budget,
			TeamMembers: p.TeamMembers,
			CreatedAt:   p.CreatedAt,
		})
	}
	return projects, nil
}

// ListTeam lista los miembros del equipo.
func (c *Client) ListTeam(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/team", nil, &out, "list team"); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInvoices lista las facturas con sus líneas.
func (c *Client) ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error) {
	var out []dto.InvoiceResponse
	if err := c.do(ctx, http.MethodGet, "/api/invoices", nil, &out, "list invoices"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInvoice obtiene una factura por ID.
func (c *Client) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	var out dto.InvoiceResponse
	if err := c.do(ctx, http.MethodGet, "/api/invoices/"+id, nil, &out, "get invoice"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvoice envía una factura conciliada nueva.
func (c *Client) CreateInvoice(ctx context.Context, p draft.Persistable) (*entity.Invoice, error) {
	var out dto.InvoiceResponse
	if err := c.do(ctx, http.MethodPost, "/api/invoices", saveRequest(p), &out, "create invoice"); err != nil {
		return nil, err
	}
	return toInvoice(out), nil
}

// UpdateInvoice reemplaza una factura existente.
func (c *Client) UpdateInvoice(ctx context.Context, id string, p draft.Persistable) (*entity.Invoice, error) {
	var out dto.InvoiceResponse
	if err := c.do(ctx, http.MethodPut, "/api/invoices/"+id, saveRequest(p), &out, "update invoice"); err != nil {
		return nil, err
	}
	return toInvoice(out), nil
}

// DeleteInvoice borra una factura.
func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/invoices/"+id, nil, nil, "delete invoice")
}

// ─────────────────────────────────────────────────────────────
// Plumbing
// ─────────────────────────────────────────────────────────────

// do ejecuta la petición y decodifica la respuesta en out (si out no es nil).
// Las respuestas no-2xx se convierten en draft.RemoteError con el texto que
// haya devuelto el servidor.
func (c *Client) do(ctx context.Context, method, path string, body, out any, op string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: codificar body: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: armar petición: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return draft.NewRemoteError(op, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return draft.NewRemoteError(op, errorDetail(resp.Body), nil)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decodificar respuesta: %w", op, err)
	}
	return nil
}

// errorDetail extrae el texto de error del cuerpo: primero la clave "detail",
// luego "message". Devuelve vacío si el cuerpo no trae ninguna.
func errorDetail(body io.Reader) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}

func saveRequest(p draft.Persistable) dto.SaveInvoiceRequest {
	items := make([]dto.InvoiceItemRequest, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.InvoiceItemRequest{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		})
	}
	return dto.SaveInvoiceRequest{
		ClientID:  p.ClientID,
		ProjectID: p.ProjectID,
		Amount:    p.Amount,
		Status:    p.Status,
		DueDate:   p.DueDate,
		Items:     items,
		Notes:     p.Notes,
	}
}

func toInvoice(in dto.InvoiceResponse) *entity.Invoice {
	projectID := ""
	if in.ProjectID != nil {
		projectID = *in.ProjectID
	}
	return &entity.Invoice{
		ID:            in.ID,
		InvoiceNumber: in.InvoiceNumber,
		ClientID:      in.ClientID,
		ProjectID:     projectID,
		Amount:        in.Amount,
		Status:        in.Status,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     in.CreatedAt,
	}
}
