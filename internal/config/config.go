package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	Library  LibraryConfig  `mapstructure:"library"`
	Browse   BrowseConfig   `mapstructure:"browse"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ProviderConfig holds stock-media provider configuration
type ProviderConfig struct {
	BaseURL string `mapstructure:"base_url"` // List-endpoint base URL
	APIKey  string `mapstructure:"api_key"`  // Optional provider API key
}

// LibraryConfig holds local media library configuration
type LibraryConfig struct {
	Dir string `mapstructure:"dir"` // Project database directory ("" = memory-only)
}

// BrowseConfig holds browsing panel preferences
type BrowseConfig struct {
	PageSize    int    `mapstructure:"page_size"`    // Grid page size
	DefaultKind string `mapstructure:"default_kind"` // "image" or "video"
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{},
		Library: LibraryConfig{
			Dir: defaultLibraryPath(),
		},
		Browse: BrowseConfig{
			PageSize:    24,
			DefaultKind: "image",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "stockpick", "stockpick.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "stockpick", "stockpick.log")
	}
}

// defaultLibraryPath returns the default media library directory
func defaultLibraryPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "stockpick", "library")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "stockpick", "library")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "stockpick")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "stockpick")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("STOCKPICK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Browse.PageSize <= 0 {
		cfg.Browse.PageSize = 24
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to keep snake_case key names
	viper.Set("provider.base_url", cfg.Provider.BaseURL)
	viper.Set("provider.api_key", cfg.Provider.APIKey)
	viper.Set("library.dir", cfg.Library.Dir)
	viper.Set("browse.page_size", cfg.Browse.PageSize)
	viper.Set("browse.default_kind", cfg.Browse.DefaultKind)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the provider base URL is set
func (c *Config) IsConfigured() bool {
	return c.Provider.BaseURL != ""
}
