package http

import (
	"net/http"
	"time"

	"tubeboost/infrastructure/utils"

	"github.com/gin-gonic/gin"
)

// IHealthHandler exposes the liveness endpoint.
type IHealthHandler interface {
	Health(ctx *gin.Context)
}

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) IHealthHandler {
	return &HealthHandler{version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": utils.GetCurrentTime().Format(time.RFC3339),
		"version":   h.version,
	})
}
