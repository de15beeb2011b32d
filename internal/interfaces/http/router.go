package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/auth"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC  *auth.AuthUseCase
	Guard   *RouteGuard
	Notices *SessionNotices
	Catalog Catalog
	AppName string
	Log     zerolog.Logger
}

// NewApp crea la app Fiber de la consola con el ErrorHandler y recover.
func NewApp(name string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 40, // > timeout de la API
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Públicas
	authHandler := NewAuthHandler(deps.AuthUC, deps.Notices)
	app.Get(PathLogin, authHandler.LoginPage)
	app.Post(PathLogin, authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get(PathAccess, authHandler.Access)

	// Cualquier usuario autenticado
	app.Get("/", deps.Guard.Authenticated(), authHandler.Home)
	app.Get("/session", deps.Guard.Authenticated(), authHandler.Session)

	// Administración (ADMIN)
	admin := app.Group("/admin", deps.Guard.Require(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.Catalog)
	admin.Get("/", adminHandler.Dashboard)
	NewResourceHandler(deps.Catalog.Products).Mount(admin.Group("/products"))
	NewResourceHandler(deps.Catalog.Categories).Mount(admin.Group("/categories"))
	NewResourceHandler(deps.Catalog.Suppliers).Mount(admin.Group("/suppliers"))
	NewResourceHandler(deps.Catalog.Users).Mount(admin.Group("/users"))
	admin.Get("/transactions", adminHandler.Transactions)

	// Empleado (EMPLOYEE)
	employee := app.Group("/employee", deps.Guard.Require(entity.RoleEmployee))
	employeeHandler := NewEmployeeHandler(deps.Catalog, deps.AuthUC)
	employee.Get("/", employeeHandler.Dashboard)
	employee.Get("/products", employeeHandler.Products)
	employee.Get("/profile", employeeHandler.Profile)
	employee.Put("/profile", employeeHandler.UpdateProfile)
	employee.Get("/transactions", employeeHandler.Transactions)
	employee.Post("/transactions", employeeHandler.CreateTransaction)
}
