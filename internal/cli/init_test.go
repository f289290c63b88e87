package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/swatch/internal/config"
)

func withConfigDir(t *testing.T, dir string, force bool) {
	t.Helper()

	originalFunc := configDirFunc
	originalForce := initForce
	configDirFunc = func() string { return dir }
	initForce = force
	t.Cleanup(func() {
		configDirFunc = originalFunc
		initForce = originalForce
	})
}

func TestCreateConfigFile(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "swatch")
	withConfigDir(t, tempDir, false)

	result := createConfigFile()
	if result.Status != "done" {
		t.Fatalf("expected status 'done', got %q: %s", result.Status, result.Message)
	}

	content, err := os.ReadFile(filepath.Join(tempDir, "config.yaml"))
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if !strings.Contains(string(content), "Swatch Configuration File") {
		t.Error("config file doesn't contain expected header")
	}
}

func TestCreateConfigFile_ExistingNoForce(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0o644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	withConfigDir(t, tempDir, false)

	result := createConfigFile()
	if result.Status != "skipped" {
		t.Errorf("expected status 'skipped', got %q: %s", result.Status, result.Message)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != "existing" {
		t.Error("existing config was modified")
	}
}

func TestCreateConfigFile_Force(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0o644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	withConfigDir(t, tempDir, true)

	if result := createConfigFile(); result.Status != "done" {
		t.Fatalf("expected status 'done', got %q: %s", result.Status, result.Message)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != configTemplate {
		t.Error("config was not overwritten with the template")
	}
}

func TestConfigTemplate(t *testing.T) {
	if !strings.HasPrefix(configTemplate, "# Swatch Configuration File") {
		t.Error("config template doesn't have expected header")
	}

	for _, section := range []string{"logging:", "output:", "database:", "server:", "tui:"} {
		if !strings.Contains(configTemplate, section) {
			t.Errorf("config template missing section: %s", section)
		}
	}
}

func TestConfigTemplateLoads(t *testing.T) {
	var parsed map[string]any
	if err := yaml.Unmarshal([]byte(configTemplate), &parsed); err != nil {
		t.Fatalf("config template is not valid YAML: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if cfg.Server.Port != config.DefaultPort {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, config.DefaultPort)
	}
	if cfg.TUI.Highlight != "primary" {
		t.Errorf("tui.highlight = %q, want primary", cfg.TUI.Highlight)
	}
}
