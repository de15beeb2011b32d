package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// Valuation valor del inventario a costo y a precio de venta.
type Valuation struct {
	Cost   decimal.Decimal
	Retail decimal.Decimal
	Units  int
}

// Margin ganancia bruta potencial (Retail - Cost).
func (v Valuation) Margin() decimal.Decimal {
	return v.Retail.Sub(v.Cost)
}

// Value suma Quantity * precio de cada producto. Cantidades negativas no suman.
func Value(products []entity.Product) Valuation {
	v := Valuation{Cost: decimal.Zero, Retail: decimal.Zero}
	for _, p := range products {
		if p.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(p.Quantity))
		v.Cost = v.Cost.Add(p.CostPrice.Mul(qty))
		v.Retail = v.Retail.Add(p.RetailPrice.Mul(qty))
		v.Units += p.Quantity
	}
	return v
}

// LowStock productos con Quantity <= threshold, en el orden recibido.
func LowStock(products []entity.Product, threshold int) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if p.Quantity <= threshold {
			out = append(out, p)
		}
	}
	return out
}
