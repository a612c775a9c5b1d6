package models

import (
	"strings"
	"time"
)

// Role gates which routes and actions a session may perform.
type Role string

const (
	RoleAdministrator Role = "Administrador"
	RoleFieldWorker   Role = "Terreno"
	RoleViewer        Role = "Visualizador"
)

// Roles lists every role.
var Roles = []Role{RoleAdministrator, RoleFieldWorker, RoleViewer}

// User is an identity in the demo user list. PasswordHash is a bcrypt hash
// of the demo password and is never copied into the session projection.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email"`
	Role         Role      `json:"rol"`
	Active       bool      `json:"activo"`
	CreatedAt    time.Time `json:"creadoEn"`
	PasswordHash string    `json:"passwordHash,omitempty"`
}

// ValidRole reports whether r is one of the three roles.
func ValidRole(r Role) bool {
	return r == RoleAdministrator || r == RoleFieldWorker || r == RoleViewer
}

// NormalizeEmail is the canonical form used for lookups and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail is the minimal shape check applied to user input: something
// before and after a single "@", with an interior dot in the domain.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// ValidUser is the shape check applied on load.
func ValidUser(u User) bool {
	return u.ID != "" &&
		u.Name != "" &&
		u.Email != "" &&
		ValidRole(u.Role) &&
		!u.CreatedAt.IsZero()
}
