package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo guarda la sesión en un archivo del perfil local (permisos 0600).
// La escritura es atómica: archivo temporal en el mismo directorio y rename.
type SessionRepo struct {
	path string
}

// NewSessionRepository construye el repositorio sobre path; el directorio se crea al guardar.
func NewSessionRepository(path string) *SessionRepo {
	return &SessionRepo{path: path}
}

// DefaultPath ruta por defecto: <config del usuario>/inventario-console/<key>.json.
func DefaultPath(key string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("directorio de configuración: %w", err)
	}
	return filepath.Join(dir, "inventario-console", key+".json"), nil
}

func (r *SessionRepo) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	return raw, nil
}

func (r *SessionRepo) Save(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op tras el rename

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync sesión: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar sesión: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("permisos de sesión: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("reemplazar sesión: %w", err)
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
