package auth

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/metrics"
)

// AuthUseCase cliente de autenticación de la consola: login, logout y perfil.
type AuthUseCase struct {
	authenticator ports.Authenticator
	store         *session.Store
	validate      *validator.Validate
	log           zerolog.Logger

	// attempts identifica el intento de login vigente; logout también lo invalida.
	attempts atomic.Uint64
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authenticator ports.Authenticator, store *session.Store, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{
		authenticator: authenticator,
		store:         store,
		validate:      validator.New(),
		log:           log,
	}
}

// Login intercambia credenciales por un token, guarda la sesión y devuelve el rol
// para que el llamador navegue a su sección.
//
// Errores:
//   - domain.ErrInvalidCredentials: usuario/contraseña incorrectos o vacíos.
//   - domain.ErrServerUnavailable: red, timeout o cualquier otra falla del servidor.
//   - domain.ErrLoginSuperseded: hubo logout u otro login mientras se esperaba la respuesta.
//
// Si falla, la sesión previa queda intacta.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (entity.Role, error) {
	in := dto.LoginRequest{Username: username, Password: password}
	if err := uc.validate.Struct(in); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		return "", domain.ErrInvalidCredentials
	}

	attempt := uc.attempts.Add(1)
	gen := uc.store.Generation()

	out, err := uc.authenticator.Authenticate(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			uc.log.Info().Str("username", username).Msg("credenciales inválidas")
			return "", domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("server_unavailable").Inc()
		uc.log.Error().Err(err).Str("username", username).Msg("error durante la autenticación")
		if errors.Is(err, domain.ErrServerUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrServerUnavailable, err)
	}
	if out == nil || out.Token == "" {
		metrics.LoginsTotal.WithLabelValues("server_unavailable").Inc()
		return "", fmt.Errorf("%w: respuesta de login sin token", domain.ErrServerUnavailable)
	}

	role, known := entity.RoleFromAuthority(out.Roles)
	if !known {
		uc.log.Warn().Str("authority", out.Roles).Msg("autoridad no reconocida; se asigna CUSTOMER")
	}
	identity := entity.Identity{
		ID:       out.ID,
		Username: out.Username,
		FullName: out.FullName,
		Role:     role,
	}
	if identity.Username == "" {
		identity.Username = username
	}

	if uc.attempts.Load() != attempt {
		metrics.LoginsTotal.WithLabelValues("superseded").Inc()
		return "", domain.ErrLoginSuperseded
	}
	stored, err := uc.store.SetCurrentIfGeneration(gen, identity, out.Token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrServerUnavailable, err)
	}
	if !stored {
		metrics.LoginsTotal.WithLabelValues("superseded").Inc()
		uc.log.Warn().Str("username", identity.Username).Msg("respuesta de login descartada: la sesión cambió durante el intento")
		return "", domain.ErrLoginSuperseded
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	uc.log.Info().Str("username", identity.Username).Str("role", role.String()).Msg("usuario autenticado")
	return role, nil
}

// Logout cierra la sesión local. No hay llamada al servidor: los tokens no tienen estado.
func (uc *AuthUseCase) Logout() {
	uc.attempts.Add(1)
	if uc.store.Clear() {
		uc.log.Info().Msg("sesión cerrada")
	}
}

// CurrentIdentity identidad de la sesión actual.
func (uc *AuthUseCase) CurrentIdentity() (entity.Identity, bool) {
	return uc.store.Current()
}

// UpdateProfile reemplaza los datos de perfil de la sesión (el token no cambia).
func (uc *AuthUseCase) UpdateProfile(identity entity.Identity) error {
	return uc.store.UpdateIdentity(identity)
}
