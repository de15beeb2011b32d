package ports

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
)

// Authenticator puerto de salida para el intercambio de credenciales.
// Implementaciones: API REST (POST /auth/login) y mock en memoria.
//
// Errores esperados:
//   - domain.ErrInvalidCredentials cuando el servidor responde 401.
//   - cualquier otro error se considera falla del servidor o de red.
type Authenticator interface {
	Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}
