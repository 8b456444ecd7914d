package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap builds the gin engine and its middleware chain
type Bootstrap struct {
	cfg     *config.Config
	metrics *metrics.Metrics
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config, m *metrics.Metrics) *Bootstrap {
	return &Bootstrap{
		cfg:     cfg,
		metrics: m,
	}
}

// SetupEngine creates a gin engine with the common middleware chain; routes are added by router.Setup
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.LoggerMiddleware())
	if b.cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(b.metrics))
	}

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
