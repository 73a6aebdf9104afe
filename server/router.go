package server

import (
	"fmt"
	"net/http"
	"time"

	"tubeboost/infrastructure/configuration"
	"tubeboost/infrastructure/logger"
	httpHandler "tubeboost/interfaces/http"
	"tubeboost/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	healthHandler httpHandler.IHealthHandler,
	optimizerHandler httpHandler.IOptimizerHandler,
	cfg *configuration.Config,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		logger.GetLogger().WithField("panic", recovered).Error("Request panic recovered")
		body := gin.H{"error": "Internal server error"}
		if !cfg.IsProduction() {
			body["details"] = fmt.Sprintf("%v", recovered)
		}
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.IsProduction() {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler.Health)
	router.StaticFile("/", "static/index.html")

	api := router.Group("api")
	api.Use(middleware.RateLimit(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))
	{
		api.POST("/metadata", optimizerHandler.GetMetadata)
		api.POST("/transcript", optimizerHandler.GetTranscript)
		api.POST("/optimize", optimizerHandler.Optimize)
		api.POST("/bulk-optimize", optimizerHandler.BulkOptimize)
		api.POST("/trending-keywords", optimizerHandler.TrendingKeywords)
	}

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
