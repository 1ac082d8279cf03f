package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "hourstay", cfg.Database.Database)
	assert.Equal(t, "postgres", cfg.Data.Source)
	assert.Equal(t, "hourstay-backend", cfg.OTEL.ServiceName)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_SOURCE", "static")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "static", cfg.Data.Source)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "hourstay",
		Password: "secret",
		Database: "hourstay",
		SSLMode:  "disable",
	}
	assert.Contains(t, cfg.DatabaseDSN(), "host=localhost")
	assert.Contains(t, cfg.DatabaseDSN(), "dbname=hourstay")
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}
