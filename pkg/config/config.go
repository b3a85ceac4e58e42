/*
Package config manages TOML config for congkit tools.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/lokchuen/congkit/internal/utils"
	"github.com/lokchuen/congkit/pkg/congkit"
)

// Config holds the entire config structure
type Config struct {
	Table  TableConfig    `toml:"table"`
	Filter congkit.Filter `toml:"filter"`
	CLI    CliConfig      `toml:"cli"`
	Server ServerConfig   `toml:"server"`
}

// TableConfig describes where the code table lives and how to build it.
type TableConfig struct {
	Path   string `toml:"path"`   // text table
	Binary string `toml:"binary"` // precomputed artifact, preferred when present
	Scheme string `toml:"scheme"` // "v3" or "v5"
	Preset string `toml:"preset"` // "chinese", "japanese", "all" or "custom"
}

// CliConfig holds interactive CLI options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	ShowRadicals bool `toml:"show_radicals"`
}

// ServerConfig holds IPC server limits.
type ServerConfig struct {
	MaxLimit    int `toml:"max_limit"`
	MaxPatterns int `toml:"max_patterns"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			Path:   "data/table.txt",
			Binary: "data/table.dat",
			Scheme: "v3",
			Preset: "chinese",
		},
		Filter: congkit.FilterChinese(),
		CLI: CliConfig{
			DefaultLimit: 24,
			ShowRadicals: true,
		},
		Server: ServerConfig{
			MaxLimit:    64,
			MaxPatterns: 32,
		},
	}
}

// Version maps the configured scheme name onto a table version.
func (c *Config) Version() (congkit.Version, error) {
	switch c.Table.Scheme {
	case "", "v3":
		return congkit.V3, nil
	case "v5":
		return congkit.V5, nil
	}
	return congkit.V3, fmt.Errorf("unknown scheme %q (want v3 or v5)", c.Table.Scheme)
}

// TableFilter resolves the configured preset, falling back to the custom
// [filter] section when preset is "custom".
func (c *Config) TableFilter() (congkit.Filter, error) {
	switch c.Table.Preset {
	case "", "chinese":
		return congkit.FilterChinese(), nil
	case "japanese":
		return congkit.FilterJapanese(), nil
	case "all":
		return congkit.FilterAll(), nil
	case "custom":
		return c.Filter, nil
	}
	return congkit.Filter{}, fmt.Errorf("unknown filter preset %q", c.Table.Preset)
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever sections still parse from a damaged file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if tableSection, ok := utils.ExtractSection(tempConfig, "table"); ok {
		extractTableConfig(tableSection, &config.Table)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

func extractTableConfig(data map[string]any, table *TableConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		table.Path = val
	}
	if val, ok := utils.ExtractString(data, "binary"); ok {
		table.Binary = val
	}
	if val, ok := utils.ExtractString(data, "scheme"); ok {
		table.Scheme = val
	}
	if val, ok := utils.ExtractString(data, "preset"); ok {
		table.Preset = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_radicals"); ok {
		cli.ShowRadicals = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_patterns"); ok {
		server.MaxPatterns = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}
