package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/fundplan/internal/events"
)

func TestHealthStateClassification(t *testing.T) {
	h := NewSystemHandlers("test", zerolog.New(nil).Level(zerolog.Disabled))

	tests := []struct {
		name string
		want string
		cpu  float64
		mem  float64
	}{
		{name: "all quiet", cpu: 10, mem: 40, want: "healthy"},
		{name: "at the threshold", cpu: 90, mem: 90, want: "healthy"},
		{name: "cpu saturated", cpu: 95, mem: 40, want: "degraded"},
		{name: "memory saturated", cpu: 10, mem: 97, want: "degraded"},
		{name: "both saturated", cpu: 99, mem: 99, want: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.healthState(tt.cpu, tt.mem))
		})
	}
}

func TestSnapshot(t *testing.T) {
	h := NewSystemHandlers("2.0.0", zerolog.New(nil).Level(zerolog.Disabled))

	snapshot := h.Snapshot()

	assert.Equal(t, "2.0.0", snapshot.Version)
	assert.Contains(t, []string{"healthy", "degraded"}, snapshot.Status)
	assert.GreaterOrEqual(t, snapshot.UptimeSeconds, 0.0)
	assert.Greater(t, snapshot.Goroutines, 0)
	assert.GreaterOrEqual(t, snapshot.MemoryPercent, 0.0)
}

func TestHandleSystemStatus(t *testing.T) {
	h := NewSystemHandlers("2.0.0", zerolog.New(nil).Level(zerolog.Disabled))

	req := httptest.NewRequest(http.MethodGet, "/api/system/status", nil)
	rec := httptest.NewRecorder()
	h.HandleSystemStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response SystemStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "2.0.0", response.Version)
	assert.Contains(t, []string{"healthy", "degraded"}, response.Status)
	assert.NotEmpty(t, response.Uptime)
}

func TestStatusMonitorEmitsOnlyOnChange(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	bus := events.NewBus(log)
	h := NewSystemHandlers("test", log)
	monitor := NewStatusMonitor(bus, h, log)

	var received []*events.Event
	unsubscribe := bus.Subscribe(events.SystemStatusChanged, func(e *events.Event) {
		received = append(received, e)
	})
	defer unsubscribe()

	// First check always transitions from the empty initial state
	monitor.checkSystemStatus()
	require.Len(t, received, 1)

	data, ok := received[0].Data.(*events.SystemStatusChangedData)
	require.True(t, ok)
	assert.Equal(t, monitor.lastStatus, data.Status)
	assert.NotEmpty(t, data.Timestamp)

	// Same classification again does not emit
	status := monitor.lastStatus
	monitor.checkSystemStatus()
	if monitor.lastStatus == status {
		assert.Len(t, received, 1)
	}
}
