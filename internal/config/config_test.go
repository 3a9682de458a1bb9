package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/roshambo/internal/game"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "roshambo.yml")

	yamlContent := `first_to: 5
labels:
  first: "Player"
  second: "Computer"
color: false
`

	err := os.WriteFile(configFile, []byte(yamlContent), 0o600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := Load(afero.NewOsFs(), configFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.FirstTo != 5 {
		t.Errorf("Expected first_to 5, got %d", config.FirstTo)
	}
	if config.Labels.First != "Player" || config.Labels.Second != "Computer" {
		t.Errorf("Expected Player/Computer labels, got %+v", config.Labels)
	}
	if config.Color {
		t.Error("Expected color disabled")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(afero.NewOsFs(), filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoadFromYAMLAppliesDefaults(t *testing.T) {
	t.Parallel()

	config, err := LoadFromYAML([]byte("first_to: 2\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.FirstTo != 2 {
		t.Errorf("Expected first_to 2, got %d", config.FirstTo)
	}
	if config.Labels.First != "You" || config.Labels.Second != "Enemy" {
		t.Errorf("Expected default labels, got %+v", config.Labels)
	}
	if config.LogLevel != "info" {
		t.Errorf("Expected default log_level info, got %q", config.LogLevel)
	}
	if !config.Color {
		t.Error("Expected color enabled by default")
	}
}

func TestLoadFromYAMLRejectsZeroFirstTo(t *testing.T) {
	t.Parallel()

	_, err := LoadFromYAML([]byte("first_to: 0\n"))
	if !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	config := Default()
	config.LogLevel = "loud"

	if err := config.Validate(); err == nil {
		t.Fatal("Expected error for unknown log level")
	}
}

func TestValidateRejectsEmptyLabels(t *testing.T) {
	t.Parallel()

	config := Default()
	config.Labels.Second = ""

	if err := config.Validate(); err == nil {
		t.Fatal("Expected error for empty label")
	}
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected shipped defaults to validate, got %v", err)
	}

	settings, err := Default().Settings()
	if err != nil {
		t.Fatalf("Expected settings from defaults, got %v", err)
	}
	if settings.FirstTo != 3 {
		t.Errorf("Expected shipped default first-to 3, got %d", settings.FirstTo)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	if err := WriteDefault(fs, "roshambo.yml", false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := afero.ReadFile(fs, "roshambo.yml")
	if err != nil {
		t.Fatalf("Failed to read written config: %v", err)
	}

	config, err := LoadFromYAML(data)
	if err != nil {
		t.Fatalf("Expected written config to load, got %v", err)
	}
	if config.FirstTo != Default().FirstTo {
		t.Errorf("Expected first_to %d, got %d", Default().FirstTo, config.FirstTo)
	}
}

func TestWriteDefaultRefusesToOverwrite(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "roshambo.yml", []byte("first_to: 7\n"), 0o600); err != nil {
		t.Fatalf("Failed to seed existing config: %v", err)
	}

	err := WriteDefault(fs, "roshambo.yml", false)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("Expected os.ErrExist, got %v", err)
	}

	// With force the file is replaced.
	if err := WriteDefault(fs, "roshambo.yml", true); err != nil {
		t.Fatalf("Expected force overwrite to succeed, got %v", err)
	}

	data, err := afero.ReadFile(fs, "roshambo.yml")
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	config, err := LoadFromYAML(data)
	if err != nil {
		t.Fatalf("Expected config to load, got %v", err)
	}
	if config.FirstTo != Default().FirstTo {
		t.Errorf("Expected defaults after overwrite, got first_to %d", config.FirstTo)
	}
}
