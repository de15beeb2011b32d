package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/pkg/jwt"
	"github.com/jhoicas/Inventario-console/pkg/metrics"
)

// Sessions lo que el watcher necesita del Session Store.
type Sessions interface {
	Snapshot() session.Snapshot
	ClearIfGeneration(gen uint64) bool
}

// ExpiryWatcher borra la sesión cuando su token vence. El route guard solo lee el store;
// este job es quien hace efectiva la expiración aunque nadie navegue.
type ExpiryWatcher struct {
	sessions Sessions
	cron     *cron.Cron
	now      func() time.Time
	log      zerolog.Logger
}

// NewExpiryWatcher programa Check con la expresión cron spec (ej. "@every 30s").
func NewExpiryWatcher(sessions Sessions, spec string, log zerolog.Logger) (*ExpiryWatcher, error) {
	w := &ExpiryWatcher{
		sessions: sessions,
		cron:     cron.New(),
		now:      time.Now,
		log:      log,
	}
	if _, err := w.cron.AddFunc(spec, func() { w.Check() }); err != nil {
		return nil, fmt.Errorf("expresión cron %q: %w", spec, err)
	}
	return w, nil
}

// WithClock reemplaza el reloj (tests).
func (w *ExpiryWatcher) WithClock(now func() time.Time) *ExpiryWatcher {
	w.now = now
	return w
}

// Start arranca el scheduler en segundo plano.
func (w *ExpiryWatcher) Start() {
	w.cron.Start()
	w.log.Info().Msg("watcher de expiración de sesión iniciado")
}

// Stop detiene el scheduler y espera a que termine el Check en curso.
func (w *ExpiryWatcher) Stop() {
	<-w.cron.Stop().Done()
	w.log.Info().Msg("watcher de expiración de sesión detenido")
}

// Check borra la sesión actual si su token está vencido. Devuelve true si la borró.
func (w *ExpiryWatcher) Check() bool {
	snap := w.sessions.Snapshot()
	if !snap.Authenticated || !jwt.IsExpiredAt(snap.Token, w.now()) {
		return false
	}
	if !w.sessions.ClearIfGeneration(snap.Generation) {
		return false
	}
	metrics.ExpiredSessionsSweptTotal.Inc()
	w.log.Info().Str("username", snap.Identity.Username).Msg("token vencido; sesión cerrada")
	return true
}
