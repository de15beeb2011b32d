package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// Identifiable entidades cuyo ID asigna el repositorio.
type Identifiable[T any] interface {
	*T
	SetID(id int64)
}

// Resource implementación en memoria del contrato CRUD (modo mock y tests).
type Resource[T any, PT Identifiable[T]] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
}

var _ ports.Resource[entity.Product] = (*Resource[entity.Product, *entity.Product])(nil)

// NewResource crea el recurso con los items iniciales; reciben los IDs 1..n en orden.
func NewResource[T any, PT Identifiable[T]](seed ...T) *Resource[T, PT] {
	r := &Resource[T, PT]{items: make(map[int64]T, len(seed))}
	for _, item := range seed {
		r.nextID++
		PT(&item).SetID(r.nextID)
		r.items[r.nextID] = item
	}
	return r
}

// List items ordenados por ID.
func (r *Resource[T, PT]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *Resource[T, PT]) GetByID(_ context.Context, id int64) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// Create asigna un ID nuevo, ignorando el que traiga item.
func (r *Resource[T, PT]) Create(_ context.Context, item T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	PT(&item).SetID(r.nextID)
	r.items[r.nextID] = item
	return &item, nil
}

func (r *Resource[T, PT]) Update(_ context.Context, id int64, item T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return nil, domain.ErrNotFound
	}
	PT(&item).SetID(id)
	r.items[id] = item
	return &item, nil
}

func (r *Resource[T, PT]) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
