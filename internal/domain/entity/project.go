package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Project.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
)

// Project representa un proyecto de la agencia. Siempre pertenece a un Client.
type Project struct {
	ID          string
	Name        string
	ClientID    string
	Description string
	StartDate   string // fecha calendario YYYY-MM-DD, vacío = sin definir
	EndDate     string
	Status      string // active, completed, on_hold
	Budget      decimal.NullDecimal
	TeamMembers []string // IDs de User asignados
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
