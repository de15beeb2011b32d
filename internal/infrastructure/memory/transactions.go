package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// Transactions ventas en memoria (modo mock). Cada alta descuenta stock del producto.
type Transactions struct {
	products ports.Resource[entity.Product]
	users    ports.Resource[entity.User]
	now      func() time.Time

	mu     sync.Mutex
	items  []entity.Transaction
	nextID int64
}

var _ ports.Transactions = (*Transactions)(nil)

func NewTransactions(products ports.Resource[entity.Product], users ports.Resource[entity.User]) *Transactions {
	return &Transactions{products: products, users: users, now: time.Now}
}

// List ventas en orden de alta.
func (t *Transactions) List(_ context.Context) ([]entity.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]entity.Transaction, len(t.items))
	copy(out, t.items)
	return out, nil
}

func (t *Transactions) Create(ctx context.Context, in dto.CreateTransactionRequest) (*entity.Transaction, error) {
	if in.Quantity <= 0 || in.ClientName == "" {
		return nil, domain.ErrInvalidInput
	}

	// El lock cubre leer stock y descontarlo.
	t.mu.Lock()
	defer t.mu.Unlock()

	product, err := t.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Quantity < in.Quantity {
		return nil, fmt.Errorf("%w: stock insuficiente (%d disponibles)", domain.ErrConflict, product.Quantity)
	}
	user, err := t.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	product.Quantity -= in.Quantity
	if _, err := t.products.Update(ctx, product.ID, *product); err != nil {
		return nil, err
	}

	employee := user.FullName
	if employee == "" {
		employee = user.Username
	}
	t.nextID++
	tx := entity.Transaction{
		ID:               t.nextID,
		EmployeeName:     employee,
		ClientName:       in.ClientName,
		ProductCode:      product.Code,
		ProductName:      product.Name,
		Quantity:         in.Quantity,
		TransactionPrice: product.RetailPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		CreatedAt:        t.now(),
	}
	t.items = append(t.items, tx)
	return &tx, nil
}
