package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.PageSize != DefaultPageSize {
		t.Errorf("expected page size %d, got %d", DefaultPageSize, cfg.PageSize)
	}
	if cfg.Source.BaseURL != defaultBaseURL {
		t.Errorf("unexpected base URL %q", cfg.Source.BaseURL)
	}
	if cfg.Source.Timeout.Duration != defaultTimeout {
		t.Errorf("unexpected timeout %v", cfg.Source.Timeout.Duration)
	}
	if cfg.StorageDir == "" {
		t.Errorf("expected a default storage dir")
	}
}

func TestLoadConfigPartialFileFillsDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
page_size = 12

[source]
base_url = "http://localhost:9999"
timeout = "5s"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.PageSize != 12 {
		t.Errorf("expected page size 12, got %d", cfg.PageSize)
	}
	if cfg.Source.BaseURL != "http://localhost:9999" {
		t.Errorf("unexpected base URL %q", cfg.Source.BaseURL)
	}
	if cfg.Source.Timeout.Duration != 5*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Source.Timeout.Duration)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != "8080" {
		t.Errorf("server defaults not applied: %s:%s", cfg.Server.Host, cfg.Server.Port)
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := &Config{
		StorageDir: dir,
		PageSize:   7,
		Source: SourceConfig{
			BaseURL: "http://localhost:1234",
			Timeout: Duration{10 * time.Second},
		},
		Server: ServerConfig{Host: "0.0.0.0", Port: "9090"},
	}
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if loaded.PageSize != 7 || loaded.Source.BaseURL != "http://localhost:1234" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.Source.Timeout.Duration != 10*time.Second {
		t.Errorf("round trip lost timeout: %v", loaded.Source.Timeout.Duration)
	}
	if loaded.Server.Host != "0.0.0.0" || loaded.Server.Port != "9090" {
		t.Errorf("round trip lost server config: %+v", loaded.Server)
	}
}

func TestSaveTemplateConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := &Config{StorageDir: dir}
	if err := cfg.SaveTemplateConfig(path); err != nil {
		t.Fatalf("writing template config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("template config must be loadable: %v", err)
	}
	if loaded.StorageDir != dir {
		t.Errorf("expected storage dir %q, got %q", dir, loaded.StorageDir)
	}
}
