package repository

import "context"

// SessionRepository define el puerto de almacenamiento durable de la sesión (DIP).
// Guarda un único registro opaco bajo una clave con namespace; el Session Store
// serializa y valida su contenido.
type SessionRepository interface {
	// Load devuelve el registro guardado o (nil, nil) si no existe.
	Load(ctx context.Context) ([]byte, error)
	// Save reemplaza el registro (last-write-wins entre instancias).
	Save(ctx context.Context, payload []byte) error
	// Delete borra el registro; no falla si no existía.
	Delete(ctx context.Context) error
}
