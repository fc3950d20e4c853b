package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

// User representa un usuario del sistema. Los técnicos quedan ligados a una
// sede (SiteID); los admin no tienen sede y ven todo.
type User struct {
	ID           string
	Username     string
	PasswordHash string  // hash bcrypt, nunca plano en dominio después de persistir
	Role         string  // admin, technician
	SiteID       *string // nil para admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol admin.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
