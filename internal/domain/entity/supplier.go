package entity

// Supplier proveedor de productos.
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (s *Supplier) SetID(id int64) { s.ID = id }
