// Package metrics define y registra las métricas Prometheus de la consola.
// Es la única fuente de nombres, labels y textos de ayuda.
//
// Las métricas se registran en el registry por defecto al importar el paquete;
// la consola las expone en GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventario_console"

// ── Sesión ────────────────────────────────────────────────────────────────────

// LoginsTotal cuenta intentos de login.
// Label:
//   - result: "success", "invalid_credentials", "invalid_input", "server_unavailable", "superseded"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total de intentos de login, por resultado.",
	},
	[]string{"result"},
)

// ForcedLogoutsTotal cuenta sesiones cerradas por un 401/403 de la API.
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Sesiones cerradas por una respuesta 401 o 403 de la API.",
	},
)

// ExpiredSessionsSweptTotal cuenta sesiones borradas por el watcher de expiración.
var ExpiredSessionsSweptTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expired_sessions_swept_total",
		Help:      "Sesiones con token vencido borradas por el watcher.",
	},
)

// ── Navegación ────────────────────────────────────────────────────────────────

// GuardDecisionsTotal decisiones del route guard.
// Label:
//   - decision: "allow", "login", "access_denied"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Decisiones del route guard por tipo.",
	},
	[]string{"decision"},
)

// ── API de inventario ─────────────────────────────────────────────────────────

// APIRequestsTotal peticiones salientes a la API.
// Labels:
//   - method: verbo HTTP
//   - status: código de respuesta o "error" si no hubo respuesta
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Peticiones salientes a la API de inventario.",
	},
	[]string{"method", "status"},
)

// APIRequestDuration latencia de las peticiones salientes.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duración de las peticiones salientes a la API de inventario.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)
