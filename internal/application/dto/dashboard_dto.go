package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// LowStockThreshold cantidad a partir de la cual un producto se considera con stock bajo.
const LowStockThreshold = 10

// AdminDashboard conteos de la sección de administración.
type AdminDashboard struct {
	Username   string `json:"username"`
	Products   int    `json:"products"`
	Categories int    `json:"categories"`
	Suppliers  int    `json:"suppliers"`
	Users      int    `json:"users"`

	StockUnits  int             `json:"stockUnits"`
	StockCost   decimal.Decimal `json:"stockCost"`
	StockRetail decimal.Decimal `json:"stockRetail"`
	StockMargin decimal.Decimal `json:"stockMargin"`
}

// EmployeeDashboard resumen de la sección de empleado.
type EmployeeDashboard struct {
	Username      string           `json:"username"`
	FullName      string           `json:"fullName"`
	Products      int              `json:"products"`
	LowStockItems int              `json:"lowStockItems"`
	LowStock      []entity.Product `json:"lowStock"`
}

// HomeResponse página de inicio para cualquier usuario autenticado.
type HomeResponse struct {
	Username string   `json:"username"`
	Role     string   `json:"role"`
	Sections []string `json:"sections"`
}
