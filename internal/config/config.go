package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cardtable/internal/deck"
	"github.com/charmbracelet/log"
)

// Config represents the application configuration
type Config struct {
	ShufflePasses     int    `toml:"shuffle_passes"`
	Seed              int64  `toml:"seed"` // 0 seeds from the clock
	RenumberPositions bool   `toml:"renumber_positions"`
	LogLevel          string `toml:"log_level"`
	Color             bool   `toml:"color"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		ShufflePasses: 1,
		LogLevel:      "info",
		Color:         true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardtable", "config.toml")
}

// LoadConfig loads the config file. A missing file yields the defaults and
// is not created; use SaveConfig for that.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Fall back to defaults if the file doesn't exist
	config := Default()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	// Keys missing from the file keep their default values
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// SaveConfig writes the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Create or truncate the file
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	if err := Encode(file, config); err != nil {
		return err
	}

	return nil
}

// Encode writes the config as TOML
func Encode(w io.Writer, config *Config) error {
	if err := toml.NewEncoder(w).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Level parses the configured log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// DeckOptions translates the config into deck options
func (c *Config) DeckOptions(logger *log.Logger) []deck.Option {
	opts := []deck.Option{
		deck.WithRenumbering(c.RenumberPositions),
		deck.WithLogger(logger),
	}
	if c.Seed != 0 {
		opts = append(opts, deck.WithSeed(c.Seed))
	}
	return opts
}
