package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/pkg/config"
)

func TestNewPoolConfig_DesdeCampos(t *testing.T) {
	cfg, err := newPoolConfig(config.DBConfig{Host: "db.local", Port: 5433, User: "consola", Password: "p@ss:word", DBName: "inventario", SSLMode: "disable"})
	require.NoError(t, err)

	assert.Equal(t, "db.local", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), cfg.ConnConfig.Port)
	assert.Equal(t, "consola", cfg.ConnConfig.User)
	assert.Equal(t, "p@ss:word", cfg.ConnConfig.Password, "la contraseña se codifica en el DSN")
	assert.Equal(t, "inventario", cfg.ConnConfig.Database)
	assert.Equal(t, int32(2), cfg.MaxConns)
	assert.Equal(t, "inventario-console", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestNewPoolConfig_DatabaseURLTienePrioridad(t *testing.T) {
	cfg, err := newPoolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@127.0.0.1:6543/sesiones?sslmode=disable",
		Host:        "ignorado",
		Port:        5432,
	})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(6543), cfg.ConnConfig.Port)
	assert.Equal(t, "sesiones", cfg.ConnConfig.Database)
}

func TestNewPool_DSNInvalido(t *testing.T) {
	_, err := NewPool(context.Background(), config.DBConfig{DatabaseURL: "postgres://u:p@127.0.0.1:5432/db?sslmode=nope"})
	assert.Error(t, err)
}
