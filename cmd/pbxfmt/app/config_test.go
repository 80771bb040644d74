package app

import (
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	// LogFormat should have a default.
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.LogOutput == "" {
		t.Error("LogOutput not set to default")
	}
}

// TestConfig_UpdateFromFlags verifies flag values win over loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "warn"}

	config.UpdateFromFlags(true, false, true, "debug")

	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if !config.NoColor {
		t.Error("NoColor flag not applied")
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}

	// Empty log level leaves the loaded value in place.
	config.UpdateFromFlags(false, true, false, "")
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug preserved", config.LogLevel)
	}
	if !config.Quiet {
		t.Error("Quiet flag not applied")
	}
}
