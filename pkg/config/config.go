package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

const (
	// DefaultPageSize is the fixed card-grid page size used when the config
	// does not override it.
	DefaultPageSize = 9

	defaultBaseURL = "https://restcountries.com/v3.1"
	defaultTimeout = 30 * time.Second
)

type Config struct {
	// StorageDir holds the feedback database.
	StorageDir string `toml:"storage_dir"`
	// PageSize is the number of country cards per result page.
	PageSize int          `toml:"page_size"`
	Source   SourceConfig `toml:"source"`
	Server   ServerConfig `toml:"server"`
}

// SourceConfig configures the remote country data source.
type SourceConfig struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func GetDefaultConfig() (*Config, error) {
	storageDir, err := GetDefaultStorageDir()
	if err != nil {
		return nil, fmt.Errorf("getting default storage directory: %w", err)
	}
	return &Config{
		StorageDir: storageDir,
		PageSize:   DefaultPageSize,
		Source: SourceConfig{
			BaseURL: defaultBaseURL,
			Timeout: Duration{defaultTimeout},
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
		},
	}, nil
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.StorageDir == "" {
		storageDir, err := GetDefaultStorageDir()
		if err != nil {
			return nil, fmt.Errorf("getting default storage directory: %w", err)
		}
		config.StorageDir = storageDir
	}

	if config.PageSize <= 0 {
		config.PageSize = DefaultPageSize
	}
	if config.Source.BaseURL == "" {
		config.Source.BaseURL = defaultBaseURL
	}
	if config.Source.Timeout.Duration == 0 {
		config.Source.Timeout = Duration{defaultTimeout}
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	storageDir := c.StorageDir
	if storageDir == "" {
		var err error
		storageDir, err = GetDefaultStorageDir()
		if err != nil {
			return fmt.Errorf("getting default storage directory: %w", err)
		}
	}

	// Replace the placeholder storage_dir with the actual path
	template := strings.Replace(configTemplate, "/home/user/.local/share/mundi", storageDir, 1)
	return os.WriteFile(configPath, []byte(template), 0644)
}

// GetDefaultStorageDir returns the default storage directory for the feedback database
func GetDefaultStorageDir() (string, error) {
	// Use XDG_DATA_HOME if set, otherwise use ~/.local/share
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	mundiDir := filepath.Join(dataDir, "mundi")

	if err := os.MkdirAll(mundiDir, 0755); err != nil {
		return "", fmt.Errorf("creating storage directory %s: %w", mundiDir, err)
	}

	return mundiDir, nil
}

// GetConfigDir returns the configuration directory for mundi
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	mundiConfigDir := filepath.Join(configDir, "mundi")

	if err := os.MkdirAll(mundiConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", mundiConfigDir, err)
	}

	return mundiConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
