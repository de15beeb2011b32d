package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/Inventario-console/internal/application/ports"
)

// Resource adaptador HTTP del contrato CRUD sobre un recurso REST (/products, /users...).
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource construye el adaptador para path (relativo a la URL base de la API).
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

var _ ports.Resource[struct{}] = (*Resource[struct{}])(nil)

// List GET {path}.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.Do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID GET {path}/{id}.
func (r *Resource[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodGet, r.itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create POST {path}.
func (r *Resource[T]) Create(ctx context.Context, item T) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodPost, r.path, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT {path}/{id}.
func (r *Resource[T]) Update(ctx context.Context, id int64, item T) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE {path}/{id}.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}
