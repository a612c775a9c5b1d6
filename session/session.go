// Package session owns the login boundary: resolving credentials against the
// user list, persisting the minimal signed-in projection, and gating the
// navigation surface by role.
package session

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/RIDSdiseno/beck-crm/models"
	"github.com/RIDSdiseno/beck-crm/storage"
)

// The three sign-in failures are distinguishable internally; the
// presentation layer collapses them into a single "could not sign in"
// message.
var (
	ErrUnknownUser    = errors.New("session: unknown user")
	ErrInactiveUser   = errors.New("session: user is deactivated")
	ErrBadCredentials = errors.New("session: invalid credentials")
)

// AuthUser is the minimal projection persisted as the session record. The
// password hash never crosses this boundary.
type AuthUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"nombre"`
	Email string      `json:"email"`
	Role  models.Role `json:"rol"`
}

// validAuthUser mirrors the strict shape check applied on session load.
func validAuthUser(u AuthUser) bool {
	return u.ID != "" && u.Name != "" && u.Email != "" && models.ValidRole(u.Role)
}

// Manager performs login/logout against the stored user collection.
type Manager struct {
	store *storage.Store
	log   *zap.Logger
}

// NewManager wires a Manager. A nil logger is replaced with a no-op one.
func NewManager(store *storage.Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log}
}

// Login resolves the email case-insensitively against the user collection,
// rejects unknown and deactivated accounts, verifies the password and
// persists the session projection.
func (m *Manager) Login(email, password string) (*AuthUser, error) {
	norm := models.NormalizeEmail(email)

	var found *models.User
	for _, u := range m.store.LoadUsers() {
		if models.NormalizeEmail(u.Email) == norm {
			found = &u
			break
		}
	}
	if found == nil {
		return nil, ErrUnknownUser
	}
	if !found.Active {
		return nil, ErrInactiveUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	au := AuthUser{ID: found.ID, Name: found.Name, Email: found.Email, Role: found.Role}
	raw, err := json.Marshal(au)
	if err != nil {
		return nil, err
	}
	if err := m.store.KV().Set(storage.KeySession, raw); err != nil {
		return nil, err
	}
	m.log.Info("user signed in", zap.String("user_id", au.ID), zap.String("role", string(au.Role)))
	return &au, nil
}

// Current returns the signed-in user, or nil when there is no valid session.
// A corrupt session record is treated as signed-out, never an error.
func (m *Manager) Current() *AuthUser {
	raw, ok, err := m.store.KV().Get(storage.KeySession)
	if err != nil || !ok {
		if err != nil {
			m.log.Warn("session read failed", zap.Error(err))
		}
		return nil
	}
	var au AuthUser
	if err := json.Unmarshal(raw, &au); err != nil || !validAuthUser(au) {
		m.log.Warn("discarding malformed session record")
		return nil
	}
	return &au
}

// Logout clears the session record.
func (m *Manager) Logout() error {
	return m.store.KV().Delete(storage.KeySession)
}
