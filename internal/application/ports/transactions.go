package ports

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// Transactions ventas: la API solo permite listar y registrar (no hay edición ni baja).
//
// Create devuelve domain.ErrNotFound si el producto o el usuario no existen y
// domain.ErrConflict si no hay stock suficiente.
type Transactions interface {
	List(ctx context.Context) ([]entity.Transaction, error)
	Create(ctx context.Context, in dto.CreateTransactionRequest) (*entity.Transaction, error)
}
