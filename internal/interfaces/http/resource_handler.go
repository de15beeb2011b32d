package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
)

// ResourceHandler CRUD de un recurso del catálogo sobre la API de inventario.
// Los errores de la API llegan al ErrorHandler (401/403 → login).
type ResourceHandler[T any] struct {
	res ports.Resource[T]
}

// NewResourceHandler construye el handler.
func NewResourceHandler[T any](res ports.Resource[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{res: res}
}

// Mount registra GET /, GET /:id, POST /, PUT /:id y DELETE /:id en r.
func (h *ResourceHandler[T]) Mount(r fiber.Router) {
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	items, err := h.res.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *ResourceHandler[T]) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	item, err := h.res.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.res.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in T
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.res.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ResourceHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.res.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	return int64(id), nil
}
