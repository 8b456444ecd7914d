package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/config"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/database"
	"github.com/gin-gonic/gin"
)

// Handler handles meta endpoints (service info, health check)
type Handler struct {
	cfg *config.Config
	db  *database.DB // nil when records are kept in memory
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Root returns static service information
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Volunteer Management API",
		"name":    h.cfg.App.Name,
		"version": h.cfg.App.Version,
	})
}

// Health checks service and store health
func (h *Handler) Health(c *gin.Context) {
	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
		"version":     h.cfg.App.Version,
	}

	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": service,
			"checks": gin.H{
				"store": gin.H{"status": "up", "backend": config.StoreBackendMemory},
			},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"store": gin.H{
					"status":  "down",
					"backend": config.StoreBackendDatabase,
					"driver":  h.cfg.Database.Driver,
					"error":   err.Error(),
				},
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks": gin.H{
			"store": gin.H{
				"status":     "up",
				"backend":    config.StoreBackendDatabase,
				"driver":     h.cfg.Database.Driver,
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}
