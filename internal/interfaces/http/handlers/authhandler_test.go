package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "github.com/conseccomms/conseccomms/internal/application/user/dto"
	"github.com/conseccomms/conseccomms/internal/application/user/usecases"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
	"github.com/conseccomms/conseccomms/internal/interfaces/http/handlers/testutil"
	"github.com/conseccomms/conseccomms/internal/shared/errors"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

type mockRegisterUC struct {
	got    usecases.RegisterCommand
	called bool
	result *userdto.AuthResponse
	err    error
}

func (m *mockRegisterUC) Execute(_ context.Context, cmd usecases.RegisterCommand) (*userdto.AuthResponse, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *userdto.AuthResponse
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, _ usecases.LoginCommand) (*userdto.AuthResponse, error) {
	return m.result, m.err
}

type mockCurrentUserUC struct {
	result *userdto.UserDTO
	err    error
}

func (m *mockCurrentUserUC) Execute(_ context.Context, _ uint) (*userdto.UserDTO, error) {
	return m.result, m.err
}

type mockChangePasswordUC struct {
	got usecases.ChangePasswordCommand
	err error
}

func (m *mockChangePasswordUC) Execute(_ context.Context, cmd usecases.ChangePasswordCommand) error {
	m.got = cmd
	return m.err
}

type mockChangeEmailUC struct {
	got    usecases.ChangeEmailCommand
	result *userdto.UserDTO
	err    error
}

func (m *mockChangeEmailUC) Execute(_ context.Context, cmd usecases.ChangeEmailCommand) (*userdto.UserDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type authMocks struct {
	register *mockRegisterUC
	login    *mockLoginUC
	me       *mockCurrentUserUC
	password *mockChangePasswordUC
	email    *mockChangeEmailUC
}

func newTestAuthHandler() (*AuthHandler, *authMocks) {
	m := &authMocks{
		register: &mockRegisterUC{},
		login:    &mockLoginUC{},
		me:       &mockCurrentUserUC{},
		password: &mockChangePasswordUC{},
		email:    &mockChangeEmailUC{},
	}
	return NewAuthHandler(m.register, m.login, m.me, m.password, m.email, logger.NewNopLogger()), m
}

func TestRegister(t *testing.T) {
	h, m := newTestAuthHandler()
	m.register.result = &userdto.AuthResponse{
		User:        &userdto.UserDTO{ID: 1, Email: "ada@example.com"},
		AccessToken: "token",
		TokenType:   "Bearer",
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"email":     "ada@example.com",
		"full_name": "Ada Lovelace",
		"password":  "analytical1",
	})

	h.Register(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Ada Lovelace", m.register.got.FullName)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got userdto.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "token", got.AccessToken)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	h, m := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"email":     "ada@example.com",
		"full_name": "Ada",
		"password":  "short",
	})

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, m.register.called)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h, m := newTestAuthHandler()
	m.login.err = errors.NewUnauthorizedError("invalid email or password")

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCurrentUserRequiresAuth(t *testing.T) {
	h, _ := newTestAuthHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)

	h.GetCurrentUser(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePasswordPassesPreferences(t *testing.T) {
	h, m := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/auth/password", map[string]string{
		"current_password": "oldpass1",
		"new_password":     "newpass22",
	})
	testutil.SetAuthContext(c, 4)
	s := setting.Defaults()
	s.Notifications.Email = false
	testutil.SetSettingsContext(c, s)

	h.ChangePassword(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), m.password.got.UserID)
	assert.False(t, m.password.got.Preferences.Email)
}

func TestChangeEmail(t *testing.T) {
	h, m := newTestAuthHandler()
	m.email.result = &userdto.UserDTO{ID: 4, Email: "new@example.com"}

	c, w := testutil.NewTestContext(http.MethodPut, "/auth/email", map[string]string{
		"new_email": "new@example.com",
		"password":  "secret12",
	})
	testutil.SetAuthContext(c, 4)

	h.ChangeEmail(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new@example.com", m.email.got.NewEmail)
}

func TestChangeEmailConflict(t *testing.T) {
	h, m := newTestAuthHandler()
	m.email.err = errors.NewConflictError("email already in use")

	c, w := testutil.NewTestContext(http.MethodPut, "/auth/email", map[string]string{
		"new_email": "taken@example.com",
		"password":  "secret12",
	})
	testutil.SetAuthContext(c, 4)

	h.ChangeEmail(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
