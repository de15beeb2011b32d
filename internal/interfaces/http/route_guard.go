package http

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/jwt"
	"github.com/jhoicas/Inventario-console/pkg/metrics"
)

// Rutas públicas de la consola.
const (
	PathLogin  = "/login"
	PathAccess = "/access"
)

// LocalIdentity key de c.Locals con la identidad que autorizó el guard.
const LocalIdentity = "identity"

// Decision resultado del guard para un intento de navegación.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionLogin
	DecisionAccessDenied
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionLogin:
		return "login"
	case DecisionAccessDenied:
		return "access_denied"
	}
	return "unknown"
}

// Outcome decisión del guard. Redirect está vacío cuando se permite.
type Outcome struct {
	Decision Decision
	Redirect string
	Identity entity.Identity
}

// SessionReader lectura de la sesión; el guard nunca la modifica.
type SessionReader interface {
	Snapshot() session.Snapshot
}

// RouteGuard decide si una ruta de la consola puede mostrarse. Es síncrono: solo lee
// el Session Store y el exp del token, sin llamadas de red.
type RouteGuard struct {
	sessions SessionReader
	now      func() time.Time
	log      zerolog.Logger
}

// NewRouteGuard construye el guard con el reloj del sistema.
func NewRouteGuard(sessions SessionReader, log zerolog.Logger) *RouteGuard {
	return &RouteGuard{sessions: sessions, now: time.Now, log: log}
}

// WithClock reemplaza el reloj (tests).
func (g *RouteGuard) WithClock(now func() time.Time) *RouteGuard {
	g.now = now
	return g
}

// Decide evalúa path contra el rol requerido (vacío = cualquier usuario autenticado):
//  1. sin sesión o token vencido → login con returnUrl=path
//  2. rol distinto del requerido → /access
//  3. si no, permitir
func (g *RouteGuard) Decide(path string, required entity.Role) Outcome {
	snap := g.sessions.Snapshot()
	if !snap.Authenticated || jwt.IsExpiredAt(snap.Token, g.now()) {
		return Outcome{Decision: DecisionLogin, Redirect: LoginURL(path)}
	}
	if required != "" && snap.Identity.Role != required {
		return Outcome{Decision: DecisionAccessDenied, Redirect: PathAccess, Identity: snap.Identity}
	}
	return Outcome{Decision: DecisionAllow, Identity: snap.Identity}
}

// Require middleware Fiber para rutas de un rol.
func (g *RouteGuard) Require(role entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out := g.Decide(c.OriginalURL(), role)
		metrics.GuardDecisionsTotal.WithLabelValues(out.Decision.String()).Inc()
		if out.Decision != DecisionAllow {
			g.log.Debug().
				Str("path", c.OriginalURL()).
				Str("required", role.String()).
				Str("decision", out.Decision.String()).
				Msg("navegación redirigida")
			return redirect(c, out.Redirect)
		}
		c.Locals(LocalIdentity, out.Identity)
		return c.Next()
	}
}

// Authenticated middleware para rutas sin rol declarado.
func (g *RouteGuard) Authenticated() fiber.Handler {
	return g.Require("")
}

// LoginURL ruta del login que vuelve a returnPath tras autenticarse.
func LoginURL(returnPath string) string {
	if returnPath == "" || returnPath == PathLogin {
		return PathLogin
	}
	return PathLogin + "?returnUrl=" + url.QueryEscape(returnPath)
}

// GetIdentity devuelve la identidad del contexto (después del guard).
func GetIdentity(c *fiber.Ctx) (entity.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(entity.Identity)
	return id, ok
}

// redirect 302 para GET/HEAD y 303 para el resto (el navegador repite con GET).
// El cuerpo JSON repite la ubicación para clientes que no siguen redirecciones.
func redirect(c *fiber.Ctx, location string) error {
	status := fiber.StatusSeeOther
	if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
		status = fiber.StatusFound
	}
	c.Location(location)
	return c.Status(status).JSON(dto.RedirectResponse{Location: location})
}
