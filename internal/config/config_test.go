package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Simulation: SimulationConfig{
			Input:         "input.txt",
			MaxInputBytes: 1 << 20,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
simulation:
  input: puzzles/day22.txt
  trace_tiles: true
  max_input_bytes: 4096
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "puzzles/day22.txt", cfg.Simulation.Input)
	assert.True(t, cfg.Simulation.TraceTiles)
	assert.Equal(t, int64(4096), cfg.Simulation.MaxInputBytes)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Simulation.TraceTiles)
	assert.Equal(t, int64(1<<20), cfg.Simulation.MaxInputBytes)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MONKEYMAP_SIMULATION_INPUT", "/tmp/from-env.txt")
	t.Setenv("MONKEYMAP_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.txt", cfg.Simulation.Input)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "error")
	v.Set("logging.format", "json")
	v.Set("simulation.input", "x.txt")

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "x.txt", cfg.Simulation.Input)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Simulation.MaxInputBytes = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "simulation.max_input_bytes")
}

// Property-based tests

func TestPropertyMaxInputBytesSign(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(-1<<40, 1<<40).Draw(t, "max_input_bytes")
		cfg := validConfig()
		cfg.Simulation.MaxInputBytes = n
		err := cfg.Validate()
		if n >= 0 && err != nil {
			t.Fatalf("valid max_input_bytes %d rejected: %v", n, err)
		}
		if n < 0 && err == nil {
			t.Fatalf("negative max_input_bytes %d accepted", n)
		}
	})
}
