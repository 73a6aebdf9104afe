package http

import (
	"errors"
	"net/http"

	"tubeboost/domain/dto"
	"tubeboost/domain/model"
	"tubeboost/infrastructure/logger"
	"tubeboost/usecase"

	"github.com/gin-gonic/gin"
)

// IOptimizerHandler defines the HTTP handlers for the optimization API.
type IOptimizerHandler interface {
	GetMetadata(ctx *gin.Context)
	GetTranscript(ctx *gin.Context)
	Optimize(ctx *gin.Context)
	BulkOptimize(ctx *gin.Context)
	TrendingKeywords(ctx *gin.Context)
}

// OptimizerHandler implements the optimization HTTP handlers.
type OptimizerHandler struct {
	optimizerUseCase usecase.IOptimizerUseCase
	devMode          bool
}

// NewOptimizerHandler creates a new optimizer handler instance. devMode
// controls whether 500 responses carry underlying error detail.
func NewOptimizerHandler(optimizerUseCase usecase.IOptimizerUseCase, devMode bool) IOptimizerHandler {
	return &OptimizerHandler{
		optimizerUseCase: optimizerUseCase,
		devMode:          devMode,
	}
}

// GetMetadata handles POST /api/metadata
func (h *OptimizerHandler) GetMetadata(ctx *gin.Context) {
	var req dto.MetadataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.URL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "YouTube URL is required"})
		return
	}

	response, err := h.optimizerUseCase.GetMetadata(ctx.Request.Context(), req.URL)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTranscript handles POST /api/transcript
func (h *OptimizerHandler) GetTranscript(ctx *gin.Context) {
	var req dto.MetadataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.URL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "YouTube URL is required"})
		return
	}

	response, err := h.optimizerUseCase.GetTranscript(ctx.Request.Context(), req.URL)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Optimize handles POST /api/optimize
func (h *OptimizerHandler) Optimize(ctx *gin.Context) {
	var req dto.OptimizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.URL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "YouTube URL is required"})
		return
	}

	response, err := h.optimizerUseCase.Optimize(ctx.Request.Context(), req.URL, model.OptimizationMode(req.OptimizationType))
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// BulkOptimize handles POST /api/bulk-optimize. Count limits are enforced
// here, before any network call is made.
func (h *OptimizerHandler) BulkOptimize(ctx *gin.Context) {
	var req dto.BulkOptimizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || len(req.URLs) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "An array of YouTube URLs is required"})
		return
	}
	if len(req.URLs) > usecase.MaxBulkURLs {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 10 URLs per request"})
		return
	}

	response, err := h.optimizerUseCase.BulkOptimize(ctx.Request.Context(), req.URLs, model.OptimizationMode(req.OptimizationType))
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// TrendingKeywords handles POST /api/trending-keywords
func (h *OptimizerHandler) TrendingKeywords(ctx *gin.Context) {
	var req dto.TrendingKeywordsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Topic == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	response, err := h.optimizerUseCase.TrendingKeywords(ctx.Request.Context(), req.Topic, req.Category)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// handleError converts pipeline failures into the JSON error envelope. One
// policy everywhere: the error field is a stable sanitized message; provider
// detail appears in details only in development.
func (h *OptimizerHandler) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidURL):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid YouTube URL"})
	case errors.Is(err, model.ErrUnsupportedMode):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrVideoNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
	case errors.Is(err, model.ErrTranscriptUnavailable):
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch transcript",
			"details": model.ErrTranscriptUnavailable.Error(),
		})
	case errors.Is(err, model.ErrResponseParse):
		logger.GetLogger().WithField("error", err).Error("Model response parse failed")
		ctx.JSON(http.StatusInternalServerError, h.envelope("Failed to generate optimization", err))
	default:
		logger.GetLogger().WithField("error", err).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, h.envelope("Internal server error", err))
	}
}

func (h *OptimizerHandler) envelope(message string, err error) gin.H {
	body := gin.H{"error": message}
	if h.devMode {
		body["details"] = err.Error()
	}
	return body
}
