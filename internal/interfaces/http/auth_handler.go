package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/auth"
	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// AuthHandler formulario de login, logout y sesión actual.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	notices *SessionNotices
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, notices *SessionNotices) *AuthHandler {
	return &AuthHandler{uc: uc, notices: notices}
}

// LoginPage GET /login: estado del formulario y aviso de sesión expirada, si lo hay.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	out := dto.LoginPageResponse{
		ReturnURL: SafeReturnURL(c.Query("returnUrl")),
		Notice:    h.notices.Pop(),
	}
	if id, ok := h.uc.CurrentIdentity(); ok {
		out.Authenticated = true
		out.Username = id.Username
	}
	return c.JSON(out)
}

// Login POST /login: autentica y redirige a returnUrl (si es segura) o al inicio del rol.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ReturnURL == "" {
		in.ReturnURL = c.Query("returnUrl")
	}

	role, err := h.uc.Login(c.UserContext(), in.Username, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Usuario o contraseña inválidos"})
		case errors.Is(err, domain.ErrLoginSuperseded):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOGIN_SUPERSEDED", Message: "la sesión cambió mientras se iniciaba sesión, intente de nuevo"})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SERVER_UNAVAILABLE", Message: "Error en el servidor, intente más tarde"})
		}
	}

	h.notices.Clear()
	target := SafeReturnURL(in.ReturnURL)
	if target == "" {
		target = HomeFor(role)
	}
	return redirect(c, target)
}

// Logout POST /logout: borra la sesión local y vuelve al login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return redirect(c, PathLogin)
}

// Session GET /session: identidad actual (detrás del guard).
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sin sesión"})
	}
	return c.JSON(toSessionResponse(id))
}

// Access GET /access: página de acceso denegado.
func (h *AuthHandler) Access(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "no tiene permisos para acceder a esta sección"})
}

// Home GET /: inicio de cualquier usuario autenticado (CUSTOMER termina aquí).
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	sections := []string{}
	switch id.Role {
	case entity.RoleAdmin:
		sections = append(sections, "/admin")
	case entity.RoleEmployee:
		sections = append(sections, "/employee")
	}
	return c.JSON(dto.HomeResponse{Username: id.Username, Role: id.Role.String(), Sections: sections})
}

// HomeFor sección inicial de cada rol.
func HomeFor(role entity.Role) string {
	switch role {
	case entity.RoleAdmin:
		return "/admin"
	case entity.RoleEmployee:
		return "/employee"
	}
	return "/"
}

// SafeReturnURL devuelve raw si es una ruta local de la consola; si no, "".
// Descarta URLs absolutas, protocol-relative ("//host") y el propio login.
func SafeReturnURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	if u.Path == PathLogin || u.Path == "/logout" {
		return ""
	}
	return raw
}

func toSessionResponse(id entity.Identity) dto.SessionResponse {
	return dto.SessionResponse{ID: id.ID, Username: id.Username, FullName: id.FullName, Role: id.Role.String()}
}
