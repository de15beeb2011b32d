package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo tal como lo expone la API de inventario.
type Product struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	RetailPrice decimal.Decimal `json:"retail_price"`
	Quantity    int             `json:"quantity"`
	CategoryID  int64           `json:"category_id"`
	SupplierID  int64           `json:"supplier_id"`
}

// SetID asigna el ID (lo usan los repositorios en memoria).
func (p *Product) SetID(id int64) { p.ID = id }
