package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/jwt"
)

var _ ports.Authenticator = (*Authenticator)(nil)

// SeedUser usuario de prueba del modo mock (sin API de inventario).
type SeedUser struct {
	ID        int64
	Username  string
	FullName  string
	Authority string // ROLE_ADMIN, ROLE_EMPLOYEE, ROLE_CUSTOMER
}

// DefaultSeedUsers un usuario por rol.
var DefaultSeedUsers = []SeedUser{
	{ID: 1, Username: "administrador_prueba", FullName: "Administrador de Prueba", Authority: "ROLE_ADMIN"},
	{ID: 2, Username: "empleado_prueba", FullName: "Empleado de Prueba", Authority: "ROLE_EMPLOYEE"},
	{ID: 3, Username: "cliente_prueba", FullName: "Cliente de Prueba", Authority: "ROLE_CUSTOMER"},
}

// AuthenticatorConfig parámetros del autenticador mock.
// Password es común a todos los usuarios seed; Cost 0 usa bcrypt.DefaultCost.
type AuthenticatorConfig struct {
	Password string
	Secret   string
	Issuer   string
	TTL      time.Duration
	Cost     int
}

type credential struct {
	user SeedUser
	hash []byte
}

// Authenticator autentica contra usuarios seed con contraseña bcrypt y emite JWT firmados,
// igual que lo haría la API.
type Authenticator struct {
	users  map[string]credential
	secret string
	issuer string
	ttl    time.Duration
}

// NewAuthenticator hashea la contraseña de cada usuario seed.
func NewAuthenticator(cfg AuthenticatorConfig, users []SeedUser) (*Authenticator, error) {
	if cfg.Password == "" {
		return nil, fmt.Errorf("autenticador mock: contraseña vacía")
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("autenticador mock: secret JWT vacío")
	}
	cost := cfg.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	a := &Authenticator{
		users:  make(map[string]credential, len(users)),
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash de %s: %w", u.Username, err)
		}
		a.users[strings.ToLower(u.Username)] = credential{user: u, hash: hash}
	}
	return a, nil
}

// Authenticate valida username/password y devuelve la misma forma que POST /auth/login.
func (a *Authenticator) Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrServerUnavailable, err)
	}
	cred, ok := a.users[strings.ToLower(in.Username)]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(cred.hash, []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(a.secret, cred.user.Username, cred.user.Authority, a.issuer, a.ttl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrServerUnavailable, err)
	}
	return &dto.LoginResponse{
		Token:    token,
		Username: cred.user.Username,
		Roles:    cred.user.Authority,
		ID:       cred.user.ID,
		FullName: cred.user.FullName,
	}, nil
}

// SeedCatalogUsers usuarios seed como entidades del catálogo (sin contraseña).
func SeedCatalogUsers(users []SeedUser) []entity.User {
	out := make([]entity.User, 0, len(users))
	for _, u := range users {
		out = append(out, entity.User{ID: u.ID, Username: u.Username, FullName: u.FullName, Roles: u.Authority})
	}
	return out
}
