package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/RIDSdiseno/beck-crm/models"
)

func TestCreateUser(t *testing.T) {
	fixedClock(t)
	st, store := newTestState(t)

	u, err := st.CreateUser("Nueva Usuaria", "Nueva@BECK.cl", models.RoleFieldWorker, "clave123")
	require.NoError(t, err)

	assert.Equal(t, "nueva@beck.cl", u.Email, "email stored normalized")
	assert.Equal(t, models.RoleFieldWorker, u.Role)
	assert.True(t, u.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("clave123")))

	require.Len(t, st.Users, 4)
	assert.Equal(t, u.ID, st.Users[0].ID, "newest account lists first")

	reloaded := store.LoadUsers()
	require.Len(t, reloaded, 4)
	assert.Equal(t, u.ID, reloaded[0].ID)
}

func TestCreateUser_AdministratorNotAssignable(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	_, err := st.CreateUser("Otro Admin", "otro@beck.cl", models.RoleAdministrator, "clave123")
	assert.ErrorIs(t, err, ErrAdminNotAssignable)
	assert.Len(t, st.Users, 3)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	_, err := st.CreateUser("Duplicada", "ADMIN@beck.cl", models.RoleViewer, "clave123")
	assert.ErrorIs(t, err, ErrDuplicateEmail, "uniqueness is case-insensitive")
	assert.Len(t, st.Users, 3)
}

func TestCreateUser_Validation(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	_, err := st.CreateUser("   ", "a@beck.cl", models.RoleViewer, "clave123")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = st.CreateUser("Sin Correo", "no-es-correo", models.RoleViewer, "clave123")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = st.CreateUser("Rol Raro", "b@beck.cl", models.Role("Gerente"), "clave123")
	assert.Error(t, err)
}

func TestUpdateUserRole(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	require.NoError(t, st.UpdateUserRole("u_terreno_demo", models.RoleViewer))
	for _, u := range st.Users {
		if u.ID == "u_terreno_demo" {
			assert.Equal(t, models.RoleViewer, u.Role)
		}
	}

	assert.ErrorIs(t, st.UpdateUserRole("u_terreno_demo", models.RoleAdministrator), ErrAdminNotAssignable)
	assert.ErrorIs(t, st.UpdateUserRole("u_admin_demo", models.RoleViewer), ErrNotAuthorized,
		"administrator accounts keep their role")
	assert.ErrorIs(t, st.UpdateUserRole("u_inexistente", models.RoleViewer), ErrUnknownID)
}

func TestSetUserActiveAndDelete(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	require.NoError(t, st.SetUserActive("u_visualizador_demo", false))
	for _, u := range st.Users {
		if u.ID == "u_visualizador_demo" {
			assert.False(t, u.Active)
		}
	}

	require.NoError(t, st.DeleteUser("u_visualizador_demo"))
	assert.Len(t, st.Users, 2)
	assert.ErrorIs(t, st.DeleteUser("u_visualizador_demo"), ErrUnknownID)
}

func TestResetUsers(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	require.NoError(t, st.DeleteUser("u_visualizador_demo"))
	require.NoError(t, st.ResetUsers())
	assert.Len(t, st.Users, 3)
}
