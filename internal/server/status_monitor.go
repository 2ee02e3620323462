package server

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/fundplan/internal/events"
)

// StatusMonitor periodically samples host health and emits an event when the
// classification flips between healthy and degraded
type StatusMonitor struct {
	bus            *events.Bus
	systemHandlers *SystemHandlers
	log            zerolog.Logger
	lastStatus     string
}

// NewStatusMonitor creates a new status monitor
func NewStatusMonitor(bus *events.Bus, systemHandlers *SystemHandlers, log zerolog.Logger) *StatusMonitor {
	return &StatusMonitor{
		bus:            bus,
		systemHandlers: systemHandlers,
		log:            log.With().Str("component", "status_monitor").Logger(),
	}
}

// Start begins periodic status monitoring
func (m *StatusMonitor) Start(interval time.Duration) {
	go m.monitor(interval)
}

// monitor runs the periodic monitoring loop
func (m *StatusMonitor) monitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.checkSystemStatus()

	for range ticker.C {
		m.checkSystemStatus()
	}
}

// checkSystemStatus emits an event when the health classification changes
func (m *StatusMonitor) checkSystemStatus() {
	status := m.systemHandlers.HealthState()
	if status == m.lastStatus {
		return
	}

	m.log.Info().
		Str("from", m.lastStatus).
		Str("to", status).
		Msg("System status changed")

	if m.bus != nil {
		m.bus.Emit(events.SystemStatusChanged, "status_monitor", &events.SystemStatusChangedData{
			Status:    status,
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
	m.lastStatus = status
}
