package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/fundplan/internal/config"
	"github.com/aristath/fundplan/internal/events"
	"github.com/aristath/fundplan/internal/modules/allocation"
	"github.com/aristath/fundplan/internal/modules/catalog"
	"github.com/aristath/fundplan/internal/modules/planning"
	"github.com/aristath/fundplan/internal/modules/rebalancing"
	"github.com/aristath/fundplan/internal/modules/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := zerolog.New(nil).Level(zerolog.Disabled)

	catalogSvc, err := catalog.NewService(log)
	require.NoError(t, err)

	registry, err := tools.LoadRegistry("")
	require.NoError(t, err)

	bus := events.NewBus(log)
	engine := allocation.NewEngine(catalogSvc, log)
	store := planning.NewStore(time.Hour, bus, log)

	return New(Config{
		Log:                log,
		Config:             &config.Config{Port: 8080, Version: "1.2.3", PlanTTL: time.Hour},
		Bus:                bus,
		PlanningService:    planning.NewService(engine, store, bus, log),
		RebalancingService: rebalancing.NewService(bus, log),
		CatalogService:     catalogSvc,
		ToolsService:       tools.NewService(registry, nil, bus, log),
	})
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, "fundplan", body["service"])
}

func TestAPIRoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	planBody := `{"profile":{"age":30,"monthly_income":100000,"monthly_investment":20000,"has_emergency_fund":true,"has_adequate_insurance":true}}`
	rebalanceBody := `{"current_values":{"largecap":60000,"FD":40000},"target_allocations":{"largecap":50,"FD":50}}`

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "create plan", method: http.MethodPost, path: "/api/plans", body: planBody, wantStatus: http.StatusCreated},
		{name: "list plans", method: http.MethodGet, path: "/api/plans", wantStatus: http.StatusOK},
		{name: "list strategies", method: http.MethodGet, path: "/api/strategies", wantStatus: http.StatusOK},
		{name: "list catalog", method: http.MethodGet, path: "/api/catalog", wantStatus: http.StatusOK},
		{name: "list tools", method: http.MethodGet, path: "/api/tools", wantStatus: http.StatusOK},
		{name: "analyze drift", method: http.MethodPost, path: "/api/rebalance/analyze", body: rebalanceBody, wantStatus: http.StatusOK},
		{name: "system status", method: http.MethodGet, path: "/api/system/status", wantStatus: http.StatusOK},
		{name: "unknown api route", method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reqBody *bytes.Buffer
			if tt.body != "" {
				reqBody = bytes.NewBufferString(tt.body)
			} else {
				reqBody = &bytes.Buffer{}
			}

			req := httptest.NewRequest(tt.method, tt.path, reqBody)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			rec := httptest.NewRecorder()
			srv.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, "body: %s", rec.Body.String())
		})
	}
}

func TestDashboardServed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Asset Allocation Planner")
}

func TestSPAFallbackServesIndex(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/plans/some-client-route", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Asset Allocation Planner")
}

func TestSPAFallbackExcludesAPI(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/plans/missing/unknown-sub-route", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<html")
}

func TestStaticAssetsServed(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path        string
		contentType string
	}{
		{path: "/assets/style.css", contentType: "text/css"},
		{path: "/assets/app.js", contentType: "application/javascript"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			srv.router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			assert.NotEmpty(t, rec.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fundplan_plans_created_total")
}

func TestCreatePlanThroughFullStack(t *testing.T) {
	srv := newTestServer(t)

	planBody := `{"profile":{"age":30,"monthly_income":100000,"monthly_investment":20000,"has_emergency_fund":true,"has_adequate_insurance":true}}`
	req := httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(planBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data struct {
			ID               string  `json:"id"`
			EquityPercentage float64 `json:"equity_percentage"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.ID)
	assert.InDelta(t, 70.0, body.Data.EquityPercentage, 0.001)

	// The created plan is retrievable through the same router
	req = httptest.NewRequest(http.MethodGet, "/api/plans/"+body.Data.ID, nil)
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
