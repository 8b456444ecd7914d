package router

import (
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/config"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/meta"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/volunteer"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
// db is nil when the memory store backend is selected
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, m *metrics.Metrics) {
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/", metaHandler.Root)
	router.GET("/health", metaHandler.Health)

	if cfg.Metrics.Enabled && m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// repository
	volunteerRepository := newVolunteerRepository(db)

	// service
	volunteerService := volunteer.NewVolunteerService(volunteerRepository, m)

	// handler
	volunteerHandler := volunteer.NewVolunteerHandler(volunteerService)
	volunteerHandler.RegisterRoutes(router)
}

func newVolunteerRepository(db *database.DB) volunteer.Repository {
	if db == nil {
		return volunteer.NewMemoryRepository()
	}
	return volunteer.NewGormRepository(db.DB)
}
