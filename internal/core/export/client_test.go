package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-shopping/internal/core/shopping"
	"smart-shopping/internal/infrastructure/config"
)

func testList() *shopping.ConsolidatedList {
	return &shopping.ConsolidatedList{
		Items: []shopping.ConsolidatedItem{
			{DisplayName: "pâtes", TotalQuantity: 700, Unit: "g", IsConsolidated: true},
		},
		TotalItems:             1,
		ConsolidatedItemsCount: 1,
		RecipeCount:            2,
	}
}

func TestClientPush(t *testing.T) {
	t.Parallel()

	var received payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(&config.ExportConfig{
		Enabled:  true,
		Endpoint: server.URL,
		Timeout:  time.Second,
	})
	require.NotNil(t, client)

	err := client.Push(context.Background(), "list-1", testList())
	require.NoError(t, err)

	assert.Equal(t, "list-1", received.ListID)
	require.NotNil(t, received.List)
	assert.Equal(t, 1, received.List.TotalItems)
	assert.Equal(t, "pâtes", received.List.Items[0].DisplayName)
	assert.False(t, received.ExportedAt.IsZero())
}

func TestClientPushServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&config.ExportConfig{
		Enabled:  true,
		Endpoint: server.URL,
		Timeout:  time.Second,
	})
	require.NotNil(t, client)

	err := client.Push(context.Background(), "list-2", testList())
	assert.Error(t, err)
}

func TestNewClientDisabled(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewClient(&config.ExportConfig{Enabled: false}))
	assert.Nil(t, NewClient(nil))
}
