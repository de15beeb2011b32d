package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/auth"
	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeAuthenticator responde con fn y cuenta las llamadas.
type fakeAuthenticator struct {
	calls int
	fn    func(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	f.calls++
	return f.fn(ctx, in)
}

func respondWith(resp *dto.LoginResponse, err error) *fakeAuthenticator {
	return &fakeAuthenticator{fn: func(context.Context, dto.LoginRequest) (*dto.LoginResponse, error) {
		return resp, err
	}}
}

func newUseCase(t *testing.T, a *fakeAuthenticator) (*auth.AuthUseCase, *session.Store) {
	t.Helper()
	store := session.NewStore(memory.NewSessionRepository(nil), zerolog.Nop())
	return auth.NewAuthUseCase(a, store, zerolog.Nop()), store
}

var employee = entity.Identity{ID: 2, Username: "empleado_prueba", FullName: "Empleado de Prueba", Role: entity.RoleEmployee}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RolPorAutoridad(t *testing.T) {
	cases := []struct {
		authority string
		want      entity.Role
	}{
		{"ROLE_ADMIN", entity.RoleAdmin},
		{"ROLE_EMPLOYEE", entity.RoleEmployee},
		{"ROLE_CUSTOMER", entity.RoleCustomer},
		{"ROLE_AUDITOR", entity.RoleCustomer},
	}
	for _, tc := range cases {
		t.Run(tc.authority, func(t *testing.T) {
			a := respondWith(&dto.LoginResponse{Token: "tok-" + tc.authority, Username: "ana", Roles: tc.authority}, nil)
			uc, store := newUseCase(t, a)

			role, err := uc.Login(context.Background(), "ana", "secreta")
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)

			snap := store.Snapshot()
			require.True(t, snap.Authenticated)
			assert.Equal(t, "ana", snap.Identity.Username)
			assert.Equal(t, tc.want, snap.Identity.Role)
			assert.Equal(t, "tok-"+tc.authority, snap.Token)
		})
	}
}

func TestLogin_EnviaCredenciales(t *testing.T) {
	var got dto.LoginRequest
	a := &fakeAuthenticator{fn: func(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
		got = in
		return &dto.LoginResponse{Token: "tok", Roles: "ROLE_EMPLOYEE"}, nil
	}}
	uc, store := newUseCase(t, a)

	_, err := uc.Login(context.Background(), "empleado_prueba", "clave")
	require.NoError(t, err)
	assert.Equal(t, dto.LoginRequest{Username: "empleado_prueba", Password: "clave"}, got)

	id, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "empleado_prueba", id.Username, "sin username en la respuesta se usa el del formulario")
}

func TestLogin_CredencialesInvalidas_SesionPreviaIntacta(t *testing.T) {
	uc, store := newUseCase(t, respondWith(nil, domain.ErrInvalidCredentials))
	require.NoError(t, store.SetCurrent(employee, "token-previo"))
	before := store.Snapshot()

	_, err := uc.Login(context.Background(), "ana", "mala")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, before, store.Snapshot(), "un login fallido no toca la sesión")
}

func TestLogin_ServidorNoDisponible(t *testing.T) {
	cases := map[string]error{
		"red":       errors.New("connection refused"),
		"envuelto":  errors.Join(domain.ErrServerUnavailable, errors.New("HTTP 500")),
		"cancelado": context.DeadlineExceeded,
	}
	for name, cause := range cases {
		t.Run(name, func(t *testing.T) {
			uc, store := newUseCase(t, respondWith(nil, cause))
			_, err := uc.Login(context.Background(), "ana", "secreta")
			assert.ErrorIs(t, err, domain.ErrServerUnavailable)
			assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
			_, ok := store.Current()
			assert.False(t, ok)
		})
	}
}

func TestLogin_RespuestaSinToken(t *testing.T) {
	uc, store := newUseCase(t, respondWith(&dto.LoginResponse{Username: "ana", Roles: "ROLE_ADMIN"}, nil))
	_, err := uc.Login(context.Background(), "ana", "secreta")
	assert.ErrorIs(t, err, domain.ErrServerUnavailable)
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestLogin_CamposVacios_NoLlamaAlServidor(t *testing.T) {
	a := respondWith(&dto.LoginResponse{Token: "tok", Roles: "ROLE_ADMIN"}, nil)
	uc, _ := newUseCase(t, a)

	_, err := uc.Login(context.Background(), "", "secreta")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(context.Background(), "ana", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 0, a.calls)
}

func TestLogin_LogoutDuranteElIntento_Descarta(t *testing.T) {
	var uc *auth.AuthUseCase
	a := &fakeAuthenticator{fn: func(context.Context, dto.LoginRequest) (*dto.LoginResponse, error) {
		// El usuario cierra sesión mientras la respuesta está en vuelo.
		uc.Logout()
		return &dto.LoginResponse{Token: "tok", Username: "ana", Roles: "ROLE_ADMIN"}, nil
	}}
	uc, store := newUseCase(t, a)

	_, err := uc.Login(context.Background(), "ana", "secreta")
	assert.ErrorIs(t, err, domain.ErrLoginSuperseded)
	_, ok := store.Current()
	assert.False(t, ok, "una respuesta tardía no resucita la sesión")
}

func TestLogin_OtroLoginDuranteElIntento_GanaElUltimo(t *testing.T) {
	var uc *auth.AuthUseCase
	first := true
	a := &fakeAuthenticator{}
	a.fn = func(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
		if first {
			first = false
			_, err := uc.Login(context.Background(), "empleado_prueba", "clave")
			require.NoError(t, err)
			return &dto.LoginResponse{Token: "tok-admin", Username: in.Username, Roles: "ROLE_ADMIN"}, nil
		}
		return &dto.LoginResponse{Token: "tok-empleado", Username: in.Username, Roles: "ROLE_EMPLOYEE"}, nil
	}
	uc, store := newUseCase(t, a)

	_, err := uc.Login(context.Background(), "administrador_prueba", "clave")
	assert.ErrorIs(t, err, domain.ErrLoginSuperseded)

	snap := store.Snapshot()
	require.True(t, snap.Authenticated)
	assert.Equal(t, "empleado_prueba", snap.Identity.Username)
	assert.Equal(t, "tok-empleado", snap.Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout / perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout(t *testing.T) {
	uc, store := newUseCase(t, respondWith(nil, nil))
	require.NoError(t, store.SetCurrent(employee, "tok"))

	var notified []*entity.Identity
	store.Subscribe(func(id *entity.Identity) { notified = append(notified, id) })

	uc.Logout()
	uc.Logout()

	_, ok := uc.CurrentIdentity()
	assert.False(t, ok)
	require.Len(t, notified, 1, "el segundo logout no es una transición")
	assert.Nil(t, notified[0])
}

func TestUpdateProfile(t *testing.T) {
	uc, store := newUseCase(t, respondWith(nil, nil))
	assert.ErrorIs(t, uc.UpdateProfile(employee), domain.ErrSessionExpired)

	require.NoError(t, store.SetCurrent(employee, "tok"))
	updated := employee
	updated.FullName = "Empleada Renombrada"
	require.NoError(t, uc.UpdateProfile(updated))

	id, ok := uc.CurrentIdentity()
	require.True(t, ok)
	assert.Equal(t, "Empleada Renombrada", id.FullName)
	tok, _ := store.Token()
	assert.Equal(t, "tok", tok)
}
