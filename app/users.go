package app

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/RIDSdiseno/beck-crm/models"
)

// CreateUser is the self-service account creation path of the settings view.
// It can only hand out the FieldWorker and Viewer roles; Administrator is
// never assignable here. Emails are unique case-insensitively.
func (s *State) CreateUser(name, email string, role models.Role, password string) (models.User, error) {
	name = trimmed(name)
	if name == "" {
		return models.User{}, fmt.Errorf("%w: nombre", ErrMissingField)
	}
	if !models.ValidEmail(email) {
		return models.User{}, ErrInvalidEmail
	}
	if role == models.RoleAdministrator {
		return models.User{}, ErrAdminNotAssignable
	}
	if !models.ValidRole(role) {
		return models.User{}, fmt.Errorf("app: rol %q is not a role", role)
	}

	norm := models.NormalizeEmail(email)
	for _, u := range s.Users {
		if models.NormalizeEmail(u.Email) == norm {
			return models.User{}, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("app: hash password: %w", err)
	}

	u := models.User{
		ID:           "u_" + uuid.NewString(),
		Name:         name,
		Email:        norm,
		Role:         role,
		Active:       true,
		CreatedAt:    nowFunc(),
		PasswordHash: string(hash),
	}
	// Newest accounts list first, matching the settings table.
	s.Users = append([]models.User{u}, s.Users...)
	return u, s.persistUsers()
}

// UpdateUserRole reassigns a non-administrator account. Administrator
// accounts keep their role; the settings view never offers changing them.
func (s *State) UpdateUserRole(id string, role models.Role) error {
	if role == models.RoleAdministrator {
		return ErrAdminNotAssignable
	}
	if !models.ValidRole(role) {
		return fmt.Errorf("app: rol %q is not a role", role)
	}
	for i, u := range s.Users {
		if u.ID != id {
			continue
		}
		if u.Role == models.RoleAdministrator {
			return ErrNotAuthorized
		}
		s.Users[i].Role = role
		return s.persistUsers()
	}
	return ErrUnknownID
}

// SetUserActive toggles an account. Deactivated accounts cannot sign in.
func (s *State) SetUserActive(id string, active bool) error {
	for i, u := range s.Users {
		if u.ID == id {
			s.Users[i].Active = active
			return s.persistUsers()
		}
	}
	return ErrUnknownID
}

// DeleteUser removes an account.
func (s *State) DeleteUser(id string) error {
	for i, u := range s.Users {
		if u.ID == id {
			s.Users = append(s.Users[:i], s.Users[i+1:]...)
			return s.persistUsers()
		}
	}
	return ErrUnknownID
}

// ResetUsers restores the demo accounts.
func (s *State) ResetUsers() error {
	if err := s.store.ResetUsers(); err != nil {
		return err
	}
	s.Users = s.store.LoadUsers()
	return nil
}

func (s *State) persistUsers() error {
	if err := s.store.SaveUsers(s.Users); err != nil {
		s.log.Warn("persisting users failed", zap.Error(err))
		return err
	}
	return nil
}
