package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction venta registrada por un empleado. TransactionPrice es el total de la
// línea (precio de venta por cantidad), no el unitario.
type Transaction struct {
	ID               int64           `json:"id"`
	EmployeeName     string          `json:"employee_name"`
	ClientName       string          `json:"client_name"`
	ProductCode      string          `json:"product_code"`
	ProductName      string          `json:"product_name"`
	Quantity         int             `json:"quantity"`
	TransactionPrice decimal.Decimal `json:"transaction_price"`
	CreatedAt        time.Time       `json:"created_at"`
}

// UnitPrice precio unitario derivado del total.
func (t Transaction) UnitPrice() decimal.Decimal {
	if t.Quantity <= 0 {
		return decimal.Zero
	}
	return t.TransactionPrice.Div(decimal.NewFromInt(int64(t.Quantity)))
}
