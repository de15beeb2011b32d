package entity

// Category representa una categoría de productos.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Category) SetID(id int64) { c.ID = id }
