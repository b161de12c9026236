package shopping

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-shopping/internal/core/recipe"
	coreshopping "smart-shopping/internal/core/shopping"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(nil)
	router.POST("/api/v1/shopping/consolidate", h.HandleConsolidate)
	router.POST("/api/v1/shopping/suggestions", h.HandleSuggestions)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleConsolidate(t *testing.T) {
	router := newTestRouter()

	q400 := 400.0
	q300 := 300.0
	body := ConsolidateRequest{
		Recipes: []coreshopping.Recipe{
			{Name: "Carbonara", Ingredients: []coreshopping.RawIngredient{
				{Name: "spaghetti", Quantity: &q400, Unit: "g"},
			}},
			{Name: "Bolognaise", Ingredients: []coreshopping.RawIngredient{
				{Name: "pâtes", Quantity: &q300, Unit: "g"},
			}},
		},
	}

	w := postJSON(t, router, "/api/v1/shopping/consolidate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ConsolidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ListID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "700 g", resp.Items[0].Display)
	assert.True(t, resp.Items[0].IsConsolidated)
	assert.Equal(t, 1, resp.TotalItems)
	assert.Equal(t, 2, resp.RecipeCount)
	assert.False(t, resp.Exported)
}

func TestHandleConsolidatePromotesDisplayUnit(t *testing.T) {
	router := newTestRouter()

	q1 := 1.0
	q500 := 500.0
	body := ConsolidateRequest{
		Recipes: []coreshopping.Recipe{
			{Name: "Pain", Ingredients: []coreshopping.RawIngredient{
				{Name: "farine", Quantity: &q1, Unit: "kg"},
			}},
			{Name: "Brioche", Ingredients: []coreshopping.RawIngredient{
				{Name: "farine", Quantity: &q500, Unit: "g"},
			}},
		},
	}

	w := postJSON(t, router, "/api/v1/shopping/consolidate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ConsolidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "1.5 kg", resp.Items[0].Display)
	assert.Equal(t, "g", resp.Items[0].Unit)
}

func TestHandleConsolidateValidationError(t *testing.T) {
	router := newTestRouter()

	body := ConsolidateRequest{
		Recipes: []coreshopping.Recipe{{Name: "Sans ingrédients"}},
	}

	w := postJSON(t, router, "/api/v1/shopping/consolidate", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp["code"])
	assert.Contains(t, resp["error"], "missing ingredients")
}

func TestHandleConsolidateMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shopping/consolidate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleConsolidateEmptyRecipeList(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/shopping/consolidate", ConsolidateRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ConsolidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.TotalItems)
	assert.Equal(t, 0, resp.RecipeCount)
}

func TestHandleSuggestions(t *testing.T) {
	router := newTestRouter()

	body := SuggestionsRequest{
		Ingredients: []string{"tomates cerises", "lait"},
		Month:       7,
	}

	w := postJSON(t, router, "/api/v1/shopping/suggestions", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Month       int                            `json:"month"`
		Suggestions map[string][]recipe.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 7, resp.Month)
	require.Contains(t, resp.Suggestions, "tomates cerises")
	require.Contains(t, resp.Suggestions, "lait")
	assert.NotEmpty(t, resp.Suggestions["lait"])
}

func TestHandleSuggestionsEmptyIngredients(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/shopping/suggestions", SuggestionsRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
