package ports

import "context"

// Resource es el contrato CRUD único que consumen las secciones de la consola.
// Hay un adaptador HTTP (API de inventario) y otro en memoria (modo mock); se eligen
// al componer la aplicación.
type Resource[T any] interface {
	List(ctx context.Context) ([]T, error)
	// GetByID devuelve domain.ErrNotFound si no existe.
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id int64, item T) (*T, error)
	Delete(ctx context.Context, id int64) error
}
