package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestHandler() *Handler {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	return NewHandler(logger)
}

func TestHandleListStrategies(t *testing.T) {
	handler := setupTestHandler()

	req := httptest.NewRequest("GET", "/strategies", nil)
	w := httptest.NewRecorder()
	handler.HandleListStrategies(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Contains(t, response, "data")
	assert.Contains(t, response, "metadata")

	data := response["data"].(map[string]interface{})
	assert.NotContains(t, data, "preview")

	equity := data["equity_strategies"].([]interface{})
	require.Len(t, equity, 4)
	first := equity[0].(map[string]interface{})
	assert.Equal(t, "index_core", first["name"])
	assert.NotEmpty(t, first["description"])

	weights := first["weights"].(map[string]interface{})
	assert.Equal(t, 100.0, weights["index"])

	last := equity[3].(map[string]interface{})
	assert.Equal(t, "aggressive_growth", last["name"])
	assert.Equal(t, 35.0, last["weights"].(map[string]interface{})["largecap"])

	debt := data["debt_strategies"].([]interface{})
	require.Len(t, debt, 1)
	assert.Equal(t, "long_term", debt[0].(map[string]interface{})["name"])

	splits := data["risk_level_splits"].(map[string]interface{})
	assert.Equal(t, 85.0, splits["aggressive"])
	assert.Equal(t, 65.0, splits["moderate"])
	assert.Equal(t, 45.0, splits["conservative"])
}

func TestHandleListStrategiesWithAgePreview(t *testing.T) {
	handler := setupTestHandler()

	tests := []struct {
		name           string
		age            string
		expectStrategy string
		expectRisk     string
		expectEquity   float64
	}{
		{name: "young investor", age: "25", expectStrategy: "aggressive_growth", expectRisk: "aggressive", expectEquity: 75},
		{name: "mid career", age: "40", expectStrategy: "balanced_growth", expectRisk: "moderate", expectEquity: 60},
		{name: "near retirement", age: "60", expectStrategy: "market_weighted", expectRisk: "conservative", expectEquity: 40},
		{name: "equity clamped for very young", age: "18", expectStrategy: "aggressive_growth", expectRisk: "aggressive", expectEquity: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/strategies?age="+tt.age, nil)
			w := httptest.NewRecorder()
			handler.HandleListStrategies(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.NewDecoder(w.Body).Decode(&response)
			require.NoError(t, err)

			data := response["data"].(map[string]interface{})
			preview := data["preview"].(map[string]interface{})
			assert.Equal(t, tt.expectStrategy, preview["equity_strategy"])
			assert.Equal(t, tt.expectRisk, preview["risk_level"])
			assert.Equal(t, tt.expectEquity, preview["equity_percentage"])
			assert.Equal(t, 100-tt.expectEquity, preview["debt_percentage"])
		})
	}
}

func TestHandleListStrategiesInvalidAge(t *testing.T) {
	handler := setupTestHandler()

	for _, age := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest("GET", "/strategies?age="+age, nil)
		w := httptest.NewRecorder()
		handler.HandleListStrategies(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
