package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/auth"
	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/inventory"
)

// EmployeeHandler sección de empleado (solo EMPLOYEE).
type EmployeeHandler struct {
	products     ports.Resource[entity.Product]
	users        ports.Resource[entity.User]
	transactions ports.Transactions
	authUC       *auth.AuthUseCase
	validate     *validator.Validate
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(catalog Catalog, authUC *auth.AuthUseCase) *EmployeeHandler {
	return &EmployeeHandler{
		products:     catalog.Products,
		users:        catalog.Users,
		transactions: catalog.Transactions,
		authUC:       authUC,
		validate:     validator.New(),
	}
}

// Dashboard GET /employee: productos y los que tienen stock bajo.
func (h *EmployeeHandler) Dashboard(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	products, err := h.products.List(c.UserContext())
	if err != nil {
		return err
	}
	low := inventory.LowStock(products, dto.LowStockThreshold)
	return c.JSON(dto.EmployeeDashboard{
		Username:      id.Username,
		FullName:      id.FullName,
		Products:      len(products),
		LowStockItems: len(low),
		LowStock:      low,
	})
}

// Products GET /employee/products: catálogo de solo lectura.
func (h *EmployeeHandler) Products(c *fiber.Ctx) error {
	products, err := h.products.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Profile GET /employee/profile.
func (h *EmployeeHandler) Profile(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	return c.JSON(toSessionResponse(id))
}

// UpdateProfile PUT /employee/profile: actualiza el usuario en la API y luego la sesión.
func (h *EmployeeHandler) UpdateProfile(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	var in dto.ProfileUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fullName es requerido; password debe tener al menos 8 caracteres"})
	}

	user, err := h.findUser(c, id)
	if err != nil {
		return err
	}
	user.FullName = in.FullName
	user.Password = in.Password
	if _, err := h.users.Update(c.UserContext(), user.ID, *user); err != nil {
		return err
	}

	id.FullName = in.FullName
	if id.ID == 0 {
		id.ID = user.ID
	}
	if err := h.authUC.UpdateProfile(id); err != nil {
		return err
	}
	return c.JSON(toSessionResponse(id))
}

// Transactions GET /employee/transactions.
func (h *EmployeeHandler) Transactions(c *fiber.Ctx) error {
	txs, err := h.transactions.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(txs)
}

// CreateTransaction POST /employee/transactions: registra una venta a nombre del
// usuario de la sesión. Rechaza cantidades mayores al stock antes de llamar a la API.
func (h *EmployeeHandler) CreateTransaction(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	in.UserID = id.ID
	if in.UserID == 0 {
		user, err := h.findUser(c, id)
		if err != nil {
			return err
		}
		in.UserID = user.ID
	}
	in.ClientName = strings.TrimSpace(in.ClientName)
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clientName, productId y quantity (mayor a 0) son requeridos"})
	}

	product, err := h.products.GetByID(c.UserContext(), in.ProductID)
	if err != nil {
		return err
	}
	if product.Quantity < in.Quantity {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock disponible: %d", product.Quantity),
		})
	}

	tx, err := h.transactions.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// findUser busca por ID; si la sesión no lo conoce (la API no lo envía en el login), por username.
func (h *EmployeeHandler) findUser(c *fiber.Ctx, id entity.Identity) (*entity.User, error) {
	if id.ID != 0 {
		return h.users.GetByID(c.UserContext(), id.ID)
	}
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == id.Username {
			return &users[i], nil
		}
	}
	return nil, errors.Join(domain.ErrNotFound, errors.New("usuario de la sesión"))
}
