package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Sync        SyncConfig        `toml:"sync"`
	Database    DatabaseConfig    `toml:"database"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Pandora PandoraConfig `toml:"pandora"`
	YouTube YouTubeConfig `toml:"youtube"`
}

// PandoraConfig contains the source-service login.
type PandoraConfig struct {
	Email    string `toml:"email"`
	Password string `toml:"password"`
	// Optional path to a .sh file with a browser cURL command whose
	// cookies are reused instead of the form login.
	CurlPath string `toml:"curl_path"`
}

// YouTubeConfig contains YouTube Music proxy settings.
type YouTubeConfig struct {
	ProxyURL    string `toml:"proxy_url"`
	HeadersPath string `toml:"headers_path"`
}

// SyncConfig tunes matching and playlist naming.
type SyncConfig struct {
	// Master is the aggregate playlist name; per-station playlists are
	// named "<master> - <station>".
	Master string `toml:"master"`
	// Threshold is the artist similarity cutoff in [0, 1].
	Threshold float64 `toml:"threshold"`
	// RequestsPerSecond paces catalog calls. Zero disables pacing.
	RequestsPerSecond float64 `toml:"requests_per_second"`
	// CacheEnabled persists good matches between runs.
	CacheEnabled bool `toml:"cache_enabled"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides credential fields from the environment so secrets
// can live in a .env file instead of config.toml.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LIKESYNC_PANDORA_EMAIL"); v != "" {
		c.Credentials.Pandora.Email = v
	}
	if v := os.Getenv("LIKESYNC_PANDORA_PASSWORD"); v != "" {
		c.Credentials.Pandora.Password = v
	}
	if v := os.Getenv("LIKESYNC_PROXY_URL"); v != "" {
		c.Credentials.YouTube.ProxyURL = v
	}
	if v := os.Getenv("LIKESYNC_HEADERS_PATH"); v != "" {
		c.Credentials.YouTube.HeadersPath = v
	}
}
