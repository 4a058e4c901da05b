package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveClientRequest body para POST /api/clients y PUT /api/clients/:id.
type SaveClientRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Address   string    `json:"address,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveProjectRequest body para POST /api/projects y PUT /api/projects/:id.
type SaveProjectRequest struct {
	Name        string              `json:"name" validate:"required,max=200"`
	ClientID    string              `json:"client_id" validate:"required,uuid"`
	Description string              `json:"description,omitempty"`
	StartDate   string              `json:"start_date,omitempty"`
	EndDate     string              `json:"end_date,omitempty"`
	Status      string              `json:"status" validate:"omitempty,oneof=active completed on_hold"`
	Budget      decimal.NullDecimal `json:"budget,omitempty"`
	TeamMembers []string            `json:"team_members,omitempty"`
}

// ProjectResponse proyecto en respuestas.
type ProjectResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	ClientID    string              `json:"client_id"`
	Description string              `json:"description,omitempty"`
	StartDate   string              `json:"start_date,omitempty"`
	EndDate     string              `json:"end_date,omitempty"`
	Status      string              `json:"status"`
	Budget      decimal.NullDecimal `json:"budget,omitempty"`
	TeamMembers []string            `json:"team_members"`
	CreatedAt   time.Time           `json:"created_at"`
}
