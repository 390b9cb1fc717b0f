package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "likesync.db" {
			t.Errorf("expected database path likesync.db, got %s", config.Database.Path)
		}

		if config.Credentials.YouTube.ProxyURL != "http://localhost:8080" {
			t.Errorf("expected youtube proxy URL http://localhost:8080, got %s", config.Credentials.YouTube.ProxyURL)
		}

		if config.Sync.Master != "Pandora" {
			t.Errorf("expected master playlist Pandora, got %s", config.Sync.Master)
		}

		if config.Sync.Threshold != 0.7 {
			t.Errorf("expected threshold 0.7, got %v", config.Sync.Threshold)
		}

		if !config.Sync.CacheEnabled {
			t.Error("expected caching enabled by default")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[sync]
master = "Radio Likes"
threshold = 0.85
requests_per_second = 2.0
cache_enabled = false

[credentials.pandora]
email = "listener@example.com"
password = "hunter2"
curl_path = "session.sh"

[credentials.youtube]
proxy_url = "http://localhost:9090"
headers_path = "/path/to/browser.json"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Sync.Master != "Radio Likes" {
			t.Errorf("expected master Radio Likes, got %s", config.Sync.Master)
		}

		if config.Sync.Threshold != 0.85 {
			t.Errorf("expected threshold 0.85, got %v", config.Sync.Threshold)
		}

		if config.Credentials.Pandora.Email != "listener@example.com" {
			t.Errorf("expected pandora email listener@example.com, got %s", config.Credentials.Pandora.Email)
		}

		if config.Credentials.YouTube.HeadersPath != "/path/to/browser.json" {
			t.Errorf("expected headers path /path/to/browser.json, got %s", config.Credentials.YouTube.HeadersPath)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("ApplyEnv overrides credentials", func(t *testing.T) {
		t.Setenv("LIKESYNC_PANDORA_EMAIL", "env@example.com")
		t.Setenv("LIKESYNC_PANDORA_PASSWORD", "env-secret")
		t.Setenv("LIKESYNC_PROXY_URL", "http://localhost:7070")
		t.Setenv("LIKESYNC_HEADERS_PATH", "/env/browser.json")

		config := DefaultConfig()
		config.ApplyEnv()

		if config.Credentials.Pandora.Email != "env@example.com" {
			t.Errorf("expected env email, got %s", config.Credentials.Pandora.Email)
		}
		if config.Credentials.Pandora.Password != "env-secret" {
			t.Errorf("expected env password, got %s", config.Credentials.Pandora.Password)
		}
		if config.Credentials.YouTube.ProxyURL != "http://localhost:7070" {
			t.Errorf("expected env proxy URL, got %s", config.Credentials.YouTube.ProxyURL)
		}
		if config.Credentials.YouTube.HeadersPath != "/env/browser.json" {
			t.Errorf("expected env headers path, got %s", config.Credentials.YouTube.HeadersPath)
		}
	})
}
