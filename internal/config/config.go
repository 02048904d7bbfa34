// Package config loads and validates ccx configuration from .ccx/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete ccx configuration (v2 schema)
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Report      ReportConfig      `json:"report" mapstructure:"report"`
	Eligibility EligibilityConfig `json:"eligibility" mapstructure:"eligibility"`
	Languages   map[string]string `json:"languages" mapstructure:"languages"`
	Logging     LoggingConfig     `json:"logging" mapstructure:"logging"`
}

// ReportConfig controls the persisted report sink
type ReportConfig struct {
	// Path is the report sink path; relative paths resolve against the working
	// directory. The file is overwritten on every run.
	Path string `json:"path" mapstructure:"path"`
}

// EligibilityConfig controls which declarations are analyzed
type EligibilityConfig struct {
	// HeaderExtensions are file suffixes whose declarations are excluded
	HeaderExtensions []string `json:"headerExtensions" mapstructure:"headerExtensions"`

	// SystemIncludeDirs are directory prefixes treated as system headers
	SystemIncludeDirs []string `json:"systemIncludeDirs" mapstructure:"systemIncludeDirs"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 2,
		Report: ReportConfig{
			Path: "results.cy",
		},
		Eligibility: EligibilityConfig{
			HeaderExtensions: []string{".h", ".hpp", ".hh", ".hxx"},
			SystemIncludeDirs: []string{
				"/usr/include",
				"/usr/local/include",
			},
		},
		Languages: map[string]string{},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <root>/.ccx/config.json
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 2)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".ccx"))

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to <root>/.ccx/config.json
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".ccx")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 2 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Report.Path == "" {
		return &ConfigError{Field: "report.path", Message: "report path must not be empty"}
	}
	for _, ext := range c.Eligibility.HeaderExtensions {
		if ext == "" || ext[0] != '.' {
			return &ConfigError{Field: "eligibility.headerExtensions", Message: "extensions must start with a dot"}
		}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
