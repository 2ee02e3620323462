package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.PrettyLogs)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 24*time.Hour, cfg.PlanTTL)
	assert.Equal(t, "0 */10 * * * *", cfg.CleanupSchedule)
	assert.Empty(t, cfg.ToolsFile)
	assert.Equal(t, "1.0.0", cfg.Version)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PRETTY_LOGS", "true")
	t.Setenv("PLAN_TTL", "2h30m")
	t.Setenv("CLEANUP_SCHEDULE", "@hourly")
	t.Setenv("TOOLS_FILE", "/etc/fundplan/tools.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.PrettyLogs)
	assert.Equal(t, 2*time.Hour+30*time.Minute, cfg.PlanTTL)
	assert.Equal(t, "@hourly", cfg.CleanupSchedule)
	assert.Equal(t, "/etc/fundplan/tools.yaml", cfg.ToolsFile)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("PLAN_TTL", "whenever")
	t.Setenv("PRETTY_LOGS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.PlanTTL)
	assert.False(t, cfg.PrettyLogs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Port = 0 },
			wantErr: "invalid port",
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: "invalid port",
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.PlanTTL = 0 },
			wantErr: "plan TTL",
		},
		{
			name:    "empty schedule",
			mutate:  func(c *Config) { c.CleanupSchedule = "" },
			wantErr: "cleanup schedule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:            8080,
				PlanTTL:         time.Hour,
				CleanupSchedule: "@hourly",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
