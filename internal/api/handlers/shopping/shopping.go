package shopping

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-shopping/internal/core/export"
	"smart-shopping/internal/core/recipe"
	coreshopping "smart-shopping/internal/core/shopping"
	"smart-shopping/internal/pkg/common"
)

// Handler serves the shopping-list endpoints.
type Handler struct {
	exporter *export.Client
}

// NewHandler builds the handler. exporter may be nil when export is disabled.
func NewHandler(exporter *export.Client) *Handler {
	return &Handler{exporter: exporter}
}

// ConsolidateRequest is the consolidate endpoint payload.
type ConsolidateRequest struct {
	Recipes []coreshopping.Recipe `json:"recipes"`
	Export  bool                  `json:"export,omitempty"`
}

// ItemView decorates a consolidated item with its display string.
type ItemView struct {
	coreshopping.ConsolidatedItem
	Display string `json:"display"`
}

// ConsolidateResponse is the consolidate endpoint result. ListID identifies
// the list towards the export collector.
type ConsolidateResponse struct {
	ListID                 string     `json:"list_id"`
	Items                  []ItemView `json:"items"`
	TotalItems             int        `json:"total_items"`
	ConsolidatedItemsCount int        `json:"consolidated_items_count"`
	RecipeCount            int        `json:"recipe_count"`
	Exported               bool       `json:"exported"`
}

// HandleConsolidate merges the submitted recipes into one shopping list.
func (h *Handler) HandleConsolidate(c *gin.Context) {
	var req ConsolidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid consolidate payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	list, err := coreshopping.Consolidate(req.Recipes)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}
		common.LogError("consolidation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Consolidation failed",
			"code":  common.ErrCodeInternalError,
		})
		return
	}

	resp := ConsolidateResponse{
		ListID:                 common.GenerateUUID(),
		Items:                  make([]ItemView, 0, len(list.Items)),
		TotalItems:             list.TotalItems,
		ConsolidatedItemsCount: list.ConsolidatedItemsCount,
		RecipeCount:            list.RecipeCount,
	}
	for _, item := range list.Items {
		resp.Items = append(resp.Items, ItemView{
			ConsolidatedItem: item,
			Display:          coreshopping.Format(item),
		})
	}

	if req.Export && h.exporter != nil {
		if err := h.exporter.Push(c.Request.Context(), resp.ListID, list); err != nil {
			// Export is best effort, the list is still returned.
			common.LogWarn("shopping list export failed", zap.Error(err))
		} else {
			resp.Exported = true
		}
	}

	common.LogInfo("shopping list consolidated",
		zap.Int("recipes", list.RecipeCount),
		zap.Int("items", list.TotalItems),
		zap.Int("consolidated", list.ConsolidatedItemsCount),
		zap.String("request_id", c.GetHeader("X-Request-ID")),
	)

	c.JSON(http.StatusOK, resp)
}

// SuggestionsRequest asks for hints on a set of ingredient names. Month
// defaults to the current month when absent or out of range.
type SuggestionsRequest struct {
	Ingredients []string `json:"ingredients"`
	Month       int      `json:"month,omitempty"`
}

// HandleSuggestions returns seasonal and nutritional hints per ingredient.
func (h *Handler) HandleSuggestions(c *gin.Context) {
	var req SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ingredients must not be empty",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	month := time.Now().Month()
	if req.Month >= 1 && req.Month <= 12 {
		month = time.Month(req.Month)
	}

	suggestions := make(map[string][]recipe.Suggestion, len(req.Ingredients))
	for _, name := range req.Ingredients {
		suggestions[name] = recipe.Suggest(name, month)
	}

	c.JSON(http.StatusOK, gin.H{
		"month":       int(month),
		"suggestions": suggestions,
	})
}
