package recipes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-shopping/internal/core/recipe"
	"smart-shopping/internal/pkg/common"
)

// Handler serves recipe discovery endpoints.
type Handler struct {
	service *recipe.Service
}

func NewHandler(service *recipe.Service) *Handler {
	return &Handler{service: service}
}

// SearchRequest is the recipe search payload.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// HandleSearch looks up catalog recipes matching the query.
func (h *Handler) HandleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	results, err := h.service.Search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		common.LogError("recipe search failed",
			zap.String("query", req.Query),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Recipe search failed",
			"code":  common.ErrCodeInternalError,
		})
		return
	}

	common.LogInfo("recipe search",
		zap.String("query", req.Query),
		zap.Int("results", len(results)),
		zap.String("request_id", c.GetHeader("X-Request-ID")),
	)

	c.JSON(http.StatusOK, gin.H{
		"query":   req.Query,
		"count":   len(results),
		"recipes": results,
	})
}
