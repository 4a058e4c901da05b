package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleTeamMember = "team_member"
)

// User representa un miembro del equipo de la agencia.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	Role         string // admin, team_member
	CreatedAt    time.Time
}
