package models

import (
	"strings"
	"time"
)

// Role labels are the exact strings stored in the usuarios table and embedded
// in token payloads. Comparisons against a route's required role are
// case-insensitive.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleUsuario    = "usuario"
)

// IsValidRole reports whether rol is one of the closed role set.
func IsValidRole(rol string) bool {
	switch strings.ToLower(rol) {
	case RoleAdmin, RoleSupervisor, RoleUsuario:
		return true
	}
	return false
}

// User is an account in the marketplace. Password holds the bcrypt hash and
// is never serialized.
type User struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	Telefono      *string   `json:"telefono,omitempty"`
	Rol           string    `json:"rol"`
	FechaRegistro time.Time `json:"fecha_registro"`
	FotoURL       *string   `json:"foto_url,omitempty"`
}

// HasRole compares the user's role to required, case-insensitively.
func (u *User) HasRole(required string) bool {
	return strings.EqualFold(u.Rol, required)
}
