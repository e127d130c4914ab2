package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the static application configuration. Ticket window
// geometry is fixed by the window package; only the main window and the
// frontend origin are configurable.
type Config struct {
	// Listen is the loopback address the frontend server binds.
	// Port 0 picks an ephemeral port.
	Listen string `toml:"listen"`

	// FrontendURL points windows at an external frontend (e.g. a dev
	// server with hot reload) instead of the embedded page.
	FrontendURL string `toml:"frontend_url"`

	// Main window size in logical units.
	MainWidth  float64 `toml:"main_width"`
	MainHeight float64 `toml:"main_height"`
}

const defaultConfigTOML = `# ticketdesk configuration

# Loopback address for the embedded frontend server. Port 0 = ephemeral.
listen = "127.0.0.1:0"

# Point windows at an external frontend instead of the embedded page.
# Useful for frontend development with hot reload.
frontend_url = ""

# Main window size.
main_width = 1200
main_height = 780
`

func defaultConfig() *Config {
	return &Config{
		Listen:     "127.0.0.1:0",
		MainWidth:  1200,
		MainHeight: 780,
	}
}

// configDir returns the directory for ticketdesk config files.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, "ticketdesk")
}

// configPath returns the full path to config.toml.
func configPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// LoadConfig reads the config file, creating it with defaults if missing.
func LoadConfig() (*Config, error) {
	path := configPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return defaultConfig(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); wErr != nil {
			return defaultConfig(), fmt.Errorf("write default config: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig(), fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

// parseConfig parses TOML bytes and normalizes out-of-range values.
func parseConfig(data []byte) (*Config, error) {
	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parse config.toml: %w", err)
	}
	return normalizeConfig(cfg), nil
}

func normalizeConfig(cfg *Config) *Config {
	out := *cfg
	if strings.TrimSpace(out.Listen) == "" {
		out.Listen = defaultConfig().Listen
	}
	if out.MainWidth < 400 {
		out.MainWidth = defaultConfig().MainWidth
	}
	if out.MainHeight < 300 {
		out.MainHeight = defaultConfig().MainHeight
	}
	out.FrontendURL = strings.TrimRight(strings.TrimSpace(out.FrontendURL), "/")
	return &out
}
