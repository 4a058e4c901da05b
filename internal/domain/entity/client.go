package entity

import "time"

// Estados válidos para Client.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Client representa un cliente de la agencia.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Address   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
