package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo guarda la sesión solo en memoria del proceso (modo efímero y tests).
type SessionRepo struct {
	mu      sync.Mutex
	payload []byte
}

// NewSessionRepository construye el repositorio; payload opcional simula una sesión previa.
func NewSessionRepository(payload []byte) *SessionRepo {
	return &SessionRepo{payload: payload}
}

// Load devuelve una copia del registro o nil si no hay.
func (r *SessionRepo) Load(_ context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.payload == nil {
		return nil, nil
	}
	return append([]byte(nil), r.payload...), nil
}

// Save reemplaza el registro.
func (r *SessionRepo) Save(_ context.Context, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = append([]byte(nil), payload...)
	return nil
}

// Delete borra el registro.
func (r *SessionRepo) Delete(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = nil
	return nil
}
