package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/inventory"
)

// Catalog recursos de la API que usa la consola.
type Catalog struct {
	Products   ports.Resource[entity.Product]
	Categories ports.Resource[entity.Category]
	Suppliers  ports.Resource[entity.Supplier]
	Users      ports.Resource[entity.User]

	Transactions ports.Transactions
}

// AdminHandler sección de administración (solo ADMIN).
type AdminHandler struct {
	catalog Catalog
}

// NewAdminHandler construye el handler.
func NewAdminHandler(catalog Catalog) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

// Dashboard GET /admin: conteos del catálogo.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, _ := GetIdentity(c)

	products, err := h.catalog.Products.List(ctx)
	if err != nil {
		return err
	}
	categories, err := h.catalog.Categories.List(ctx)
	if err != nil {
		return err
	}
	suppliers, err := h.catalog.Suppliers.List(ctx)
	if err != nil {
		return err
	}
	users, err := h.catalog.Users.List(ctx)
	if err != nil {
		return err
	}
	value := inventory.Value(products)
	return c.JSON(dto.AdminDashboard{
		Username:    id.Username,
		Products:    len(products),
		Categories:  len(categories),
		Suppliers:   len(suppliers),
		Users:       len(users),
		StockUnits:  value.Units,
		StockCost:   value.Cost,
		StockRetail: value.Retail,
		StockMargin: value.Margin(),
	})
}

// Transactions GET /admin/transactions: ventas registradas por los empleados.
func (h *AdminHandler) Transactions(c *fiber.Ctx) error {
	txs, err := h.catalog.Transactions.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(txs)
}
