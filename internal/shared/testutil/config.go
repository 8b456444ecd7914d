package testutil

import (
	"time"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/config"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:    "volunteer-registry-api-test",
			Version: "test",
			Env:     "test",
			Port:    8080,
		},
		Store: config.StoreConfig{
			Backend: config.StoreBackendMemory,
		},
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			SQLiteDSN:       "file::memory:",
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
		},
	}
}
