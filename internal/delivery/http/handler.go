package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cleanfood/backend/internal/domain"
	"github.com/cleanfood/backend/internal/taxonomy"
	"github.com/cleanfood/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysisService *usecase.AnalysisService
	guideIndex      *taxonomy.Index
}

// NewHandler creates a new HTTP handler
func NewHandler(analysisService *usecase.AnalysisService, guideIndex *taxonomy.Index) *Handler {
	return &Handler{
		analysisService: analysisService,
		guideIndex:      guideIndex,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cleanfood-backend",
		"version": "1.0.0",
	})
}

// CheckIngredients analyses an ingredient list against the avoid guide and
// the caller's diet/allergy preferences
func (h *Handler) CheckIngredients(c *gin.Context) {
	if h.analysisService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "analysis service not configured",
		})
		return
	}

	var request domain.AnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients text is required"})
		case errors.Is(err, domain.ErrClassifierFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "analysis failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGuide returns the full avoid guide for browsing and export
func (h *Handler) GetGuide(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections": h.guideIndex.Sections(),
		"entries":  len(h.guideIndex.ListAll()),
	})
}

// LookupGuide resolves a single name/synonym to its guide entry, used by
// the presentation layer to re-derive badge labels and navigation targets
func (h *Handler) LookupGuide(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	match := h.guideIndex.Lookup(name)
	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching guide entry"})
		return
	}

	c.JSON(http.StatusOK, match)
}
