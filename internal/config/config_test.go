package config_test

import (
	"testing"
	"time"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Given: no .env file and no overrides
	t.Setenv("DB_DRIVER", "sqlite")

	// When
	cfg, err := config.Load("test-defaults")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "volunteer-registry-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, config.StoreBackendMemory, cfg.Store.Backend)
	assert.False(t, cfg.UsesDatabase())
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Database.IsAutoMigrate, "sqlite defaults to auto migrate")
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Server.GracefulTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_BACKEND", "DATABASE")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_DSN", "file:test.db")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example,http://b.example")

	cfg, err := config.Load("test-overrides")

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, "file:test.db", cfg.Database.SQLiteDSN)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{
			name:   "memory store needs no database settings",
			mutate: func(c *config.Config) {},
		},
		{
			name: "invalid port",
			mutate: func(c *config.Config) {
				c.App.Port = 0
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			mutate: func(c *config.Config) {
				c.Store.Backend = "redis"
			},
			wantErr: true,
		},
		{
			name: "oracle without credentials",
			mutate: func(c *config.Config) {
				c.Store.Backend = config.StoreBackendDatabase
				c.Database.Driver = config.DriverOracle
			},
			wantErr: true,
		},
		{
			name: "oracle with credentials",
			mutate: func(c *config.Config) {
				c.Store.Backend = config.StoreBackendDatabase
				c.Database.Driver = config.DriverOracle
				c.Database.Host = "db.local"
				c.Database.Service = "XE"
				c.Database.User = "app"
				c.Database.Password = "secret"
			},
		},
		{
			name: "unknown driver",
			mutate: func(c *config.Config) {
				c.Store.Backend = config.StoreBackendDatabase
				c.Database.Driver = "mysql"
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				App:      config.AppConfig{Port: 8080},
				Store:    config.StoreConfig{Backend: config.StoreBackendMemory},
				Database: config.DatabaseConfig{Driver: config.DriverSQLite, SQLiteDSN: "file::memory:"},
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
