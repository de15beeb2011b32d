package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/domain"
)

var _ ports.Authenticator = (*Authenticator)(nil)

// Authenticator adaptador HTTP del puerto Authenticator: POST {API}/auth/login.
type Authenticator struct {
	client    *Client
	loginPath string
}

// NewAuthenticator construye el adaptador; loginPath suele ser "/auth/login".
func NewAuthenticator(client *Client, loginPath string) *Authenticator {
	return &Authenticator{client: client, loginPath: loginPath}
}

// Authenticate 401 → domain.ErrInvalidCredentials; cualquier otra falla → domain.ErrServerUnavailable.
func (a *Authenticator) Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := a.client.Do(ctx, http.MethodPost, a.loginPath, in, &out); err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		if errors.Is(err, domain.ErrServerUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrServerUnavailable, err)
	}
	return &out, nil
}
