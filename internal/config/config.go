package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"archlens/internal/errors"
)

// Config is the complete archlens configuration.
type Config struct {
	Version   int    `json:"version" mapstructure:"version"`
	FactsPath string `json:"factsPath" mapstructure:"factsPath"`

	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis"`
	Export   ExportConfig   `json:"export" mapstructure:"export"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// AnalysisConfig tunes the analysis pipeline.
type AnalysisConfig struct {
	BasePackage string `json:"basePackage" mapstructure:"basePackage"`
	ProfilePath string `json:"profilePath" mapstructure:"profilePath"`
	// CycleGranularity is type, package or context.
	CycleGranularity string `json:"cycleGranularity" mapstructure:"cycleGranularity"`
}

// ExportConfig controls snapshot exports.
type ExportConfig struct {
	OutputPath string `json:"outputPath" mapstructure:"outputPath"`
	Compress   bool   `json:"compress" mapstructure:"compress"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		FactsPath: "facts.json",
		Analysis: AnalysisConfig{
			CycleGranularity: "type",
		},
		Export: ExportConfig{
			OutputPath: "archlens-snapshot.json",
			Compress:   false,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <dir>/.archlens/config.json. A missing
// file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("factsPath", "facts.json")
	v.SetDefault("analysis.cycleGranularity", "type")
	v.SetDefault("export.outputPath", "archlens-snapshot.json")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(dir, ".archlens"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, errors.New(errors.ConfigInvalid, "reading config", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New(errors.ConfigInvalid, "decoding config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to <dir>/.archlens/config.json.
func (c *Config) Save(dir string) error {
	configDir := filepath.Join(dir, ".archlens")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, "config.json"), data, 0o644)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Analysis.CycleGranularity {
	case "", "type", "package", "context":
	default:
		return errors.New(errors.ConfigInvalid,
			fmt.Sprintf("unknown cycle granularity %q", c.Analysis.CycleGranularity), nil)
	}
	switch c.Logging.Format {
	case "", "json", "human":
	default:
		return errors.New(errors.ConfigInvalid,
			fmt.Sprintf("unknown logging format %q", c.Logging.Format), nil)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ConfigInvalid,
			fmt.Sprintf("unknown logging level %q", c.Logging.Level), nil)
	}
	return nil
}
