package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesión compartida entre instancias de la consola bajo una sola clave.
// Última escritura gana.
type SessionRepo struct {
	client *redis.Client
	key    string
}

// NewSessionRepository construye el repositorio; key suele ser "inventario.console.session".
func NewSessionRepository(client *redis.Client, key string) *SessionRepo {
	return &SessionRepo{client: client, key: key}
}

func (r *SessionRepo) Load(ctx context.Context) ([]byte, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get sesión: %w", err)
	}
	return raw, nil
}

func (r *SessionRepo) Save(ctx context.Context, payload []byte) error {
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set sesión: %w", err)
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del sesión: %w", err)
	}
	return nil
}
