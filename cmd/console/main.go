package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/application/auth"
	"github.com/jhoicas/Inventario-console/internal/application/ports"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/file"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Inventario-console/internal/infrastructure/redis"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/Inventario-console/internal/interfaces/http"
	"github.com/jhoicas/Inventario-console/pkg/config"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("auth_mode", cfg.Auth.Mode).
		Str("session_backend", cfg.Session.Backend).
		Msg("iniciando consola")

	ctx := context.Background()
	sessionRepo, closeRepo, err := newSessionRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de sesión")
	}
	defer closeRepo()

	store := session.NewStore(sessionRepo, logger.Component(log, "session"))
	store.Subscribe(func(id *entity.Identity) {
		if id == nil {
			log.Info().Msg("sin sesión")
			return
		}
		log.Info().Str("username", id.Username).Str("role", id.Role.String()).Msg("sesión activa")
	})

	notices := httpRouter.NewSessionNotices()
	transport := api.NewTransport(nil, store, api.TransportConfig{
		LoginPath: cfg.API.LoginPath,
		OnSessionExpired: func(req *http.Request) {
			notices.SessionExpired()
			log.Warn().Str("path", req.URL.Path).Msg("sesión expirada; el próximo acceso redirige a login")
		},
	}, logger.Component(log, "api"))
	client := api.NewClient(cfg.API.BaseURL, api.NewHTTPClient(transport, cfg.API.Timeout()))

	var (
		authenticator ports.Authenticator
		catalog       httpRouter.Catalog
	)
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		mock, err := memory.NewAuthenticator(memory.AuthenticatorConfig{
			Password: cfg.Mock.Password,
			Secret:   cfg.Mock.JWTSecret,
			Issuer:   cfg.Mock.JWTIssuer,
			TTL:      time.Duration(cfg.Mock.JWTExpiration) * time.Minute,
		}, memory.DefaultSeedUsers)
		if err != nil {
			log.Fatal().Err(err).Msg("autenticador mock")
		}
		authenticator = mock
		catalog = mockCatalog()
	default:
		authenticator = api.NewAuthenticator(client, cfg.API.LoginPath)
		catalog = httpRouter.Catalog{
			Products:   api.NewResource[entity.Product](client, "/products"),
			Categories: api.NewResource[entity.Category](client, "/categories"),
			Suppliers:  api.NewResource[entity.Supplier](client, "/suppliers"),
			Users:      api.NewResource[entity.User](client, "/users"),

			Transactions: api.NewTransactions(client),
		}
	}

	authUC := auth.NewAuthUseCase(authenticator, store, logger.Component(log, "auth"))
	guard := httpRouter.NewRouteGuard(store, logger.Component(log, "guard"))

	watcher, err := scheduler.NewExpiryWatcher(store, cfg.Session.SweepSpec, logger.Component(log, "expiry"))
	if err != nil {
		log.Fatal().Err(err).Msg("watcher de expiración")
	}
	watcher.Check()
	watcher.Start()

	app := httpRouter.NewApp(cfg.App.Name, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:  authUC,
		Guard:   guard,
		Notices: notices,
		Catalog: catalog,
		AppName: cfg.App.Name,
		Log:     log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando consola...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	watcher.Stop()

	log.Info().Msg("consola detenida")
}

// newSessionRepository elige el backend de sesión; la función devuelta libera sus conexiones.
func newSessionRepository(ctx context.Context, cfg *config.Config) (repository.SessionRepository, func(), error) {
	noop := func() {}
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		return memory.NewSessionRepository(nil), noop, nil

	case config.SessionBackendRedis:
		client, err := infraredis.Connect(ctx, infraredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return infraredis.NewSessionRepository(client, cfg.Session.Key), closer(client), nil

	case config.SessionBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo := postgres.NewSessionRepository(pool, cfg.Session.Key)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil

	default:
		path := cfg.Session.File
		if path == "" {
			p, err := file.DefaultPath(cfg.Session.Key)
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		return file.NewSessionRepository(path), noop, nil
	}
}

func closer(c io.Closer) func() {
	return func() { _ = c.Close() }
}

// mockCatalog catálogo en memoria para AUTH_MODE=mock.
func mockCatalog() httpRouter.Catalog {
	products := memory.NewResource[entity.Product](
		entity.Product{Code: "P-001", Name: "Tornillo 1/4", CostPrice: decimal.RequireFromString("120"), RetailPrice: decimal.RequireFromString("200"), Quantity: 150, CategoryID: 1, SupplierID: 1},
		entity.Product{Code: "P-002", Name: "Tuerca 1/4", CostPrice: decimal.RequireFromString("80"), RetailPrice: decimal.RequireFromString("150"), Quantity: 8, CategoryID: 1, SupplierID: 1},
		entity.Product{Code: "P-003", Name: "Pintura blanca 1 gal", CostPrice: decimal.RequireFromString("45000"), RetailPrice: decimal.RequireFromString("62000"), Quantity: 12, CategoryID: 2, SupplierID: 2},
	)
	categories := memory.NewResource[entity.Category](
		entity.Category{Name: "Ferretería", Description: "Tornillería y herrajes"},
		entity.Category{Name: "Pinturas", Description: "Pinturas y solventes"},
	)
	suppliers := memory.NewResource[entity.Supplier](
		entity.Supplier{Name: "Herrajes del Norte", Email: "ventas@herrajesnorte.example", Phone: "6015550101"},
		entity.Supplier{Name: "Colores SAS", Email: "pedidos@colores.example", Phone: "6015550202"},
	)
	users := memory.NewResource[entity.User](memory.SeedCatalogUsers(memory.DefaultSeedUsers)...)
	return httpRouter.Catalog{
		Products:     products,
		Categories:   categories,
		Suppliers:    suppliers,
		Users:        users,
		Transactions: memory.NewTransactions(products, users),
	}
}
