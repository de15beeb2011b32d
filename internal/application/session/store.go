package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

// ioTimeout límite para cada operación contra el almacenamiento durable.
const ioTimeout = 5 * time.Second

// record registro persistido: identidad y token viajan juntos.
type record struct {
	Identity entity.Identity `json:"identity"`
	Token    string          `json:"token"`
}

// Listener recibe la identidad actual tras cada transición; nil significa sin sesión.
type Listener func(identity *entity.Identity)

// Snapshot lectura consistente de la sesión.
// Generation cambia con cada login o logout; sirve para descartar efectos tardíos.
type Snapshot struct {
	Identity      entity.Identity
	Token         string
	Generation    uint64
	Authenticated bool
}

// Store fuente única de "quién está logueado" en la consola.
// Una instancia por proceso; se inyecta en el cliente de auth, el augmentor y el guard.
//
// Las mutaciones se serializan con writeMu: actualizan memoria bajo mu, persisten y
// notifican sin tenerlo. Los lectores nunca esperan la E/S del almacenamiento durable.
type Store struct {
	repo repository.SessionRepository
	log  zerolog.Logger

	hydrate sync.Once
	writeMu sync.Mutex

	mu       sync.RWMutex
	identity *entity.Identity
	token    string
	gen      uint64

	subMu     sync.Mutex
	listeners []subscription
	nextSubID int
}

type subscription struct {
	id int
	fn Listener
}

// NewStore construye el Session Store sobre un repositorio durable.
// La sesión persistida se lee recién en el primer acceso.
func NewStore(repo repository.SessionRepository, log zerolog.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// SetCurrent guarda identidad y token, los persiste y notifica a los suscriptores.
func (s *Store) SetCurrent(identity entity.Identity, token string) error {
	if !identity.Valid() || token == "" {
		return domain.ErrInvalidInput
	}
	s.ensureHydrated()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.setLocked(identity, token)
	s.mu.Unlock()

	s.persist(identity, token)
	s.notify(&identity)
	return nil
}

// SetCurrentIfGeneration como SetCurrent, pero solo si nadie modificó la sesión desde gen.
// Devuelve false si la generación ya cambió (respuesta de login tardía).
func (s *Store) SetCurrentIfGeneration(gen uint64, identity entity.Identity, token string) (bool, error) {
	if !identity.Valid() || token == "" {
		return false, domain.ErrInvalidInput
	}
	s.ensureHydrated()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return false, nil
	}
	s.setLocked(identity, token)
	s.mu.Unlock()

	s.persist(identity, token)
	s.notify(&identity)
	return true, nil
}

// UpdateIdentity reemplaza el perfil de la sesión actual conservando el token.
func (s *Store) UpdateIdentity(identity entity.Identity) error {
	if !identity.Valid() {
		return domain.ErrInvalidInput
	}
	s.ensureHydrated()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return domain.ErrSessionExpired
	}
	id := identity
	s.identity = &id
	token := s.token
	s.mu.Unlock()

	s.persist(identity, token)
	s.notify(&identity)
	return nil
}

// Current devuelve la identidad actual; ok=false si no hay sesión.
func (s *Store) Current() (entity.Identity, bool) {
	snap := s.Snapshot()
	return snap.Identity, snap.Authenticated
}

// Token devuelve el bearer token actual.
func (s *Store) Token() (string, bool) {
	snap := s.Snapshot()
	return snap.Token, snap.Authenticated
}

// Generation generación actual de la sesión.
func (s *Store) Generation() uint64 {
	return s.Snapshot().Generation
}

// Snapshot lee identidad, token y generación bajo el mismo lock.
func (s *Store) Snapshot() Snapshot {
	s.ensureHydrated()

	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Generation: s.gen}
	if s.identity != nil {
		snap.Identity = *s.identity
		snap.Token = s.token
		snap.Authenticated = true
	}
	return snap
}

// Clear borra la sesión de memoria y del almacenamiento durable.
// Devuelve true si había una sesión activa.
func (s *Store) Clear() bool {
	s.ensureHydrated()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	had := s.clearLocked()
	s.mu.Unlock()

	s.remove()
	if had {
		s.notify(nil)
	}
	return had
}

// ClearIfGeneration borra la sesión solo si sigue siendo la de gen.
// Evita que un 401 de una petición vieja cierre una sesión iniciada después.
func (s *Store) ClearIfGeneration(gen uint64) bool {
	s.ensureHydrated()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return false
	}
	had := s.clearLocked()
	s.mu.Unlock()

	s.remove()
	if had {
		s.notify(nil)
	}
	return had
}

// Subscribe registra fn; se invoca de forma síncrona en orden de registro, y en el
// mismo orden en que ocurrieron las transiciones. fn puede leer el store pero no
// modificarlo. La función devuelta cancela la suscripción.
func (s *Store) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) setLocked(identity entity.Identity, token string) {
	s.identity = &identity
	s.token = token
	s.gen++
}

func (s *Store) clearLocked() bool {
	had := s.identity != nil
	s.identity = nil
	s.token = ""
	s.gen++
	return had
}

// persist y remove corren con writeMu tomado y sin mu: el orden en disco sigue al de memoria.
func (s *Store) persist(identity entity.Identity, token string) {
	payload, err := json.Marshal(record{Identity: identity, Token: token})
	if err != nil {
		s.log.Error().Err(err).Msg("serializar sesión")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	if err := s.repo.Save(ctx, payload); err != nil {
		// La sesión en memoria sigue siendo válida; solo se pierde al reiniciar.
		s.log.Error().Err(err).Msg("persistir sesión")
	}
}

func (s *Store) remove() {
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	if err := s.repo.Delete(ctx); err != nil {
		s.log.Error().Err(err).Msg("borrar sesión persistida")
	}
}

// ensureHydrated lee el registro durable una sola vez por proceso.
func (s *Store) ensureHydrated() {
	s.hydrate.Do(s.load)
}

func (s *Store) load() {
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	raw, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("leer sesión persistida; se inicia sin sesión")
		return
	}
	if len(raw) == 0 {
		return
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil || !rec.Identity.Valid() || rec.Token == "" {
		s.log.Warn().Msg("sesión persistida corrupta; se descarta")
		if err := s.repo.Delete(ctx); err != nil {
			s.log.Error().Err(err).Msg("descartar sesión corrupta")
		}
		return
	}

	s.mu.Lock()
	s.identity = &rec.Identity
	s.token = rec.Token
	s.mu.Unlock()
	s.log.Debug().Str("username", rec.Identity.Username).Msg("sesión restaurada")
}

func (s *Store) notify(identity *entity.Identity) {
	s.subMu.Lock()
	subs := make([]subscription, len(s.listeners))
	copy(subs, s.listeners)
	s.subMu.Unlock()

	for _, sub := range subs {
		if identity == nil {
			sub.fn(nil)
			continue
		}
		id := *identity
		sub.fn(&id)
	}
}
