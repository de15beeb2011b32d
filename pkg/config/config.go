package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Modos de autenticación.
const (
	AuthModeAPI  = "api"  // POST {API_BASE_URL}/auth/login
	AuthModeMock = "mock" // usuarios seed en memoria, sin API
)

// Backends de sesión durable.
const (
	SessionBackendFile     = "file"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
	SessionBackendMemory   = "memory"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	HTTP    HTTPConfig
	API     APIConfig
	Auth    AuthConfig
	Session SessionConfig
	Redis   RedisConfig
	DB      DBConfig
	Mock    MockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig API de inventario a la que se conecta la consola.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	LoginPath      string
}

// Timeout timeout de red de login y peticiones a la API.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AuthConfig selección del autenticador.
type AuthConfig struct {
	Mode string // api | mock
}

// SessionConfig almacenamiento durable de la sesión.
type SessionConfig struct {
	Backend   string // file | redis | postgres | memory
	File      string // vacío = directorio de configuración del usuario
	Key       string
	SweepSpec string // expresión cron del watcher de expiración
}

// RedisConfig conexión del backend "redis".
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DBConfig configuración de PostgreSQL para el backend "postgres".
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// MockConfig autenticador en memoria (AUTH_MODE=mock).
type MockConfig struct {
	JWTSecret     string
	JWTExpiration int // minutos
	JWTIssuer     string
	Password      string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-console"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 4200),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 30),
			LoginPath:      getString(v, "API_LOGIN_PATH", "/auth/login"),
		},
		Auth: AuthConfig{
			Mode: strings.ToLower(getString(v, "AUTH_MODE", AuthModeAPI)),
		},
		Session: SessionConfig{
			Backend:   strings.ToLower(getString(v, "SESSION_BACKEND", SessionBackendFile)),
			File:      getString(v, "SESSION_FILE", ""),
			Key:       getString(v, "SESSION_KEY", "inventario.console.session"),
			SweepSpec: getString(v, "SESSION_SWEEP_SPEC", "@every 30s"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory_pro"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Mock: MockConfig{
			JWTSecret:     getString(v, "MOCK_JWT_SECRET", ""),
			JWTExpiration: getInt(v, "MOCK_JWT_EXPIRATION_MINUTES", 60),
			JWTIssuer:     getString(v, "MOCK_JWT_ISSUER", "inventario-console-mock"),
			Password:      getString(v, "MOCK_PASSWORD", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Auth.Mode {
	case AuthModeAPI:
		if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
			return fmt.Errorf("config: API_BASE_URL inválida: %w", err)
		}
	case AuthModeMock:
		if c.Mock.JWTSecret == "" || c.Mock.Password == "" {
			return fmt.Errorf("config: AUTH_MODE=mock requiere MOCK_JWT_SECRET y MOCK_PASSWORD")
		}
	default:
		return fmt.Errorf("config: AUTH_MODE desconocido %q", c.Auth.Mode)
	}

	switch c.Session.Backend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendPostgres, SessionBackendMemory:
	default:
		return fmt.Errorf("config: SESSION_BACKEND desconocido %q", c.Session.Backend)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: API_TIMEOUT_SECONDS debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
