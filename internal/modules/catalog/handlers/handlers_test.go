package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/fundplan/internal/modules/catalog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleListCatalog(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	service, err := catalog.NewService(logger)
	require.NoError(t, err)
	handler := NewHandler(service, logger)

	req := httptest.NewRequest("GET", "/api/catalog", nil)
	w := httptest.NewRecorder()

	handler.HandleListCatalog(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	err = json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Contains(t, response, "data")
	assert.Contains(t, response, "metadata")

	data := response["data"].(map[string]interface{})
	categories := data["categories"].([]interface{})
	assert.NotEmpty(t, categories)
	assert.Equal(t, float64(len(categories)), data["count"])

	first := categories[0].(map[string]interface{})
	assert.Contains(t, first, "key")
	assert.Contains(t, first, "label")
	assert.Contains(t, first, "asset_class")
	assert.Contains(t, first, "funds")
}
