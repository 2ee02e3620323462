// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	LogLevel        string
	CleanupSchedule string // cron expression for the expired-plan sweep
	ToolsFile       string // optional YAML file overriding the tool registry
	Version         string
	PlanTTL         time.Duration
	Port            int
	PrettyLogs      bool
	DevMode         bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvAsInt("PORT", 8080),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		PrettyLogs:      getEnvAsBool("PRETTY_LOGS", false),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		PlanTTL:         getEnvAsDuration("PLAN_TTL", 24*time.Hour),
		CleanupSchedule: getEnv("CLEANUP_SCHEDULE", "0 */10 * * * *"),
		ToolsFile:       getEnv("TOOLS_FILE", ""),
		Version:         getEnv("VERSION", "1.0.0"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PlanTTL <= 0 {
		return fmt.Errorf("plan TTL must be positive, got %s", c.PlanTTL)
	}
	if c.CleanupSchedule == "" {
		return fmt.Errorf("cleanup schedule must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
