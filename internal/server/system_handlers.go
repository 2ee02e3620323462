package server

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Resource thresholds above which the service reports itself degraded.
const (
	cpuDegradedThreshold    = 90.0
	memoryDegradedThreshold = 90.0
)

// SystemHandlers exposes host and process health information
type SystemHandlers struct {
	log       zerolog.Logger
	version   string
	startTime time.Time
}

// NewSystemHandlers creates new system handlers
func NewSystemHandlers(version string, log zerolog.Logger) *SystemHandlers {
	return &SystemHandlers{
		log:       log.With().Str("component", "system").Logger(),
		version:   version,
		startTime: time.Now(),
	}
}

// SystemStatusResponse is the payload of the system status endpoint
type SystemStatusResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Uptime        string  `json:"uptime"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedMB  float64 `json:"memory_used_mb"`
	DiskPercent   float64 `json:"disk_percent"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Goroutines    int     `json:"goroutines"`
}

// HandleSystemStatus returns host resource usage and process health
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	response := h.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// Snapshot collects the current system status
func (h *SystemHandlers) Snapshot() SystemStatusResponse {
	cpuAvg, memPercent, memUsedMB := h.getSystemStats()

	uptime := time.Since(h.startTime)

	return SystemStatusResponse{
		Status:        h.healthState(cpuAvg, memPercent),
		Version:       h.version,
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: uptime.Seconds(),
		CPUPercent:    cpuAvg,
		MemoryPercent: memPercent,
		MemoryUsedMB:  memUsedMB,
		DiskPercent:   h.getDiskPercent(),
		Goroutines:    runtime.NumGoroutine(),
	}
}

// HealthState samples host resources and classifies them
func (h *SystemHandlers) HealthState() string {
	cpuAvg, memPercent, _ := h.getSystemStats()
	return h.healthState(cpuAvg, memPercent)
}

func (h *SystemHandlers) healthState(cpuAvg, memPercent float64) string {
	if cpuAvg > cpuDegradedThreshold || memPercent > memoryDegradedThreshold {
		return "degraded"
	}
	return "healthy"
}

// getSystemStats calculates CPU and RAM usage percentages
// Uses a short interval (100ms) so the API call stays responsive while
// still providing an accurate reading
func (h *SystemHandlers) getSystemStats() (float64, float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent, float64(memStat.Used) / 1024 / 1024
}

// getDiskPercent reports usage of the filesystem holding the working
// directory
func (h *SystemHandlers) getDiskPercent() float64 {
	wd, err := os.Getwd()
	if err != nil {
		wd = "/"
	}

	usage, err := disk.Usage(wd)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get disk usage")
		return 0
	}
	return usage.UsedPercent
}
