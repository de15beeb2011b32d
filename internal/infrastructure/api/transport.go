package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/pkg/metrics"
)

// HeaderRequestID correlaciona las peticiones de la consola con los logs de la API.
const HeaderRequestID = "X-Request-ID"

// SessionSource lo que el augmentor necesita del Session Store.
type SessionSource interface {
	Snapshot() session.Snapshot
	ClearIfGeneration(gen uint64) bool
}

// TransportConfig opciones del augmentor.
type TransportConfig struct {
	// LoginPath sufijo del endpoint de login: no lleva token ni dispara logout forzado.
	LoginPath string
	// OnSessionExpired se invoca una vez por sesión cerrada por un 401/403 (redirección a login).
	OnSessionExpired func(req *http.Request)
}

// Transport intercepta toda petición a la API: agrega el bearer token de la sesión y
// cierra la sesión ante un 401/403. La respuesta se devuelve sin cambios; el Client la
// convierte en error.
type Transport struct {
	base      http.RoundTripper
	sessions  SessionSource
	loginPath string
	onExpired func(req *http.Request)
	log       zerolog.Logger
}

var _ http.RoundTripper = (*Transport)(nil)

// NewTransport envuelve base (http.DefaultTransport si es nil).
func NewTransport(base http.RoundTripper, sessions SessionSource, cfg TransportConfig, log zerolog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:      base,
		sessions:  sessions,
		loginPath: strings.TrimRight(cfg.LoginPath, "/"),
		onExpired: cfg.OnSessionExpired,
		log:       log,
	}
}

// RoundTrip implementa http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	snap := t.sessions.Snapshot()
	login := t.isLogin(req)

	// El contrato de RoundTripper prohíbe modificar req.
	out := req.Clone(req.Context())
	if out.Header.Get(HeaderRequestID) == "" {
		out.Header.Set(HeaderRequestID, uuid.NewString())
	}
	if snap.Authenticated && !login {
		out.Header.Set("Authorization", "Bearer "+snap.Token)
	}

	resp, err := t.base.RoundTrip(out)
	metrics.APIRequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		return nil, err
	}
	metrics.APIRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()

	if !login && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		t.expire(out, snap, resp.StatusCode)
	}
	return resp, nil
}

// expire cierra la sesión con la que se envió la petición. Si ya no es la actual
// (logout previo o login nuevo) no hace nada, así la redirección ocurre una sola vez.
func (t *Transport) expire(req *http.Request, snap session.Snapshot, status int) {
	if !snap.Authenticated || !t.sessions.ClearIfGeneration(snap.Generation) {
		return
	}
	metrics.ForcedLogoutsTotal.Inc()
	t.log.Warn().
		Int("status", status).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("request_id", req.Header.Get(HeaderRequestID)).
		Msg("la API rechazó el token; sesión cerrada")
	if t.onExpired != nil {
		t.onExpired(req)
	}
}

func (t *Transport) isLogin(req *http.Request) bool {
	if t.loginPath == "" {
		return false
	}
	return strings.HasSuffix(strings.TrimRight(req.URL.Path, "/"), t.loginPath)
}
