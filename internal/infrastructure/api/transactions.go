package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

const transactionsPath = "/transactions"

// Transactions adaptador HTTP de las ventas (GET y POST /transactions).
type Transactions struct {
	client *Client
}

var _ ports.Transactions = (*Transactions)(nil)

func NewTransactions(client *Client) *Transactions {
	return &Transactions{client: client}
}

func (t *Transactions) List(ctx context.Context) ([]entity.Transaction, error) {
	var out []entity.Transaction
	if err := t.client.Do(ctx, http.MethodGet, transactionsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Transactions) Create(ctx context.Context, in dto.CreateTransactionRequest) (*entity.Transaction, error) {
	var out entity.Transaction
	if err := t.client.Do(ctx, http.MethodPost, transactionsPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
