package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/lumen/engine/core"
)

func TestLoadApplicationConfigMissingFile(t *testing.T) {
	config, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if config != DefaultApplicationConfig() {
		t.Errorf("config = %+v, expected defaults", config)
	}
}

func TestLoadApplicationConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	content := `
name = "Demo"
width = 1024
height = 768
assets_root = "data"
log_level = "debug"
watch_assets = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadApplicationConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Name != "Demo" || config.StartWidth != 1024 || config.StartHeight != 768 {
		t.Errorf("unexpected window settings: %+v", config)
	}
	if config.AssetsRoot != "data" || config.LogLevel != "debug" || config.WatchAssets {
		t.Errorf("unexpected settings: %+v", config)
	}
}

func TestLoadApplicationConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	if err := os.WriteFile(path, []byte("name = \"Partial\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadApplicationConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Name != "Partial" {
		t.Errorf("name = %q, expected Partial", config.Name)
	}
	if config.StartWidth != 800 || config.StartHeight != 800 {
		t.Errorf("window size = %dx%d, expected defaults 800x800", config.StartWidth, config.StartHeight)
	}
	if config.AssetsRoot != "assets" {
		t.Errorf("assets root = %q, expected default", config.AssetsRoot)
	}
}

func TestLoadApplicationConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	if err := os.WriteFile(path, []byte("width = \"many\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadApplicationConfig(path); err == nil {
		t.Fatal("expected an error for malformed configuration")
	}
}

func TestApplicationConfigLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected core.LogLevel
	}{
		{"debug", core.DebugLevel},
		{"info", core.InfoLevel},
		{"warn", core.WarnLevel},
		{"error", core.ErrorLevel},
		{"verbose", core.InfoLevel},
	}
	for _, tc := range tests {
		config := ApplicationConfig{LogLevel: tc.name}
		if got := config.Level(); got != tc.expected {
			t.Errorf("level %q = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}
