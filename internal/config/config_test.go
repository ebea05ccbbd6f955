package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlindgren/cardbox/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:              ":8080",
		DBPath:            "test.db",
		LogLevel:          "INFO",
		ImportWorkerCount: 1,
		ImportQueueSize:   16,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidWorkerSettings(t *testing.T) {
	tests := []struct {
		name          string
		workers       int
		queue         int
		expectedError string
	}{
		{"zero workers", 0, 16, "IMPORT_WORKER_COUNT"},
		{"negative workers", -1, 16, "IMPORT_WORKER_COUNT"},
		{"zero queue", 1, 0, "IMPORT_QUEUE_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ImportWorkerCount = tt.workers
			cfg.ImportQueueSize = tt.queue

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("IMPORT_WORKER_COUNT", "")

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:cardbox.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 1, cfg.ImportWorkerCount)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("IMPORT_WORKER_COUNT", "3")
	t.Setenv("IMPORT_QUEUE_SIZE", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 3, cfg.ImportWorkerCount)
	assert.Equal(t, 16, cfg.ImportQueueSize, "invalid int falls back to default")
}
