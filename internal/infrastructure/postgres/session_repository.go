package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

const createSessionsTable = `
	CREATE TABLE IF NOT EXISTS console_sessions (
		key        TEXT PRIMARY KEY,
		payload    BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// SessionRepo sesión en la tabla console_sessions, una fila por clave.
type SessionRepo struct {
	q   Querier
	key string
}

// NewSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSessionRepository(q Querier, key string) *SessionRepo {
	return &SessionRepo{q: q, key: key}
}

// EnsureSchema crea la tabla si no existe.
func (r *SessionRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, createSessionsTable); err != nil {
		return fmt.Errorf("crear tabla console_sessions: %w", err)
	}
	return nil
}

func (r *SessionRepo) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := r.q.QueryRow(ctx, `SELECT payload FROM console_sessions WHERE key = $1`, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return payload, nil
}

func (r *SessionRepo) Save(ctx context.Context, payload []byte) error {
	query := `
		INSERT INTO console_sessions (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, r.key, payload); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM console_sessions WHERE key = $1`, r.key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
