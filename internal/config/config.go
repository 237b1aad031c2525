package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsonsketch/internal/connector"
	"github.com/mcncl/jsonsketch/internal/errors"
	"github.com/mcncl/jsonsketch/internal/formatter"
	"github.com/mcncl/jsonsketch/internal/icons"
)

// Config represents the complete configuration for jsonsketch
type Config struct {
	Style   string       `yaml:"style" toml:"style"`
	Icon    string       `yaml:"icon" toml:"icon"`
	KeyCase string       `yaml:"key_case" toml:"key_case"`
	Output  OutputConfig `yaml:"output" toml:"output"`
	Dev     DevConfig    `yaml:"dev" toml:"dev"`
}

// OutputConfig controls how lines are written
type OutputConfig struct {
	KeepPadding bool `yaml:"keep_padding" toml:"keep_padding"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug" toml:"debug"`
}

// Overrides carries command-line values; empty strings and false leave the
// file or default value in place.
type Overrides struct {
	Style       string
	Icon        string
	KeyCase     string
	KeepPadding bool
	Debug       bool
}

// configNames are searched for, in order, in each directory.
var configNames = []string{".jsonsketch.yml", ".jsonsketch.yaml", ".jsonsketch.toml", "jsonsketch.yml", "jsonsketch.yaml", "jsonsketch.toml"}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Style:   connector.DefaultStyle,
		Icon:    icons.DefaultFamily.String(),
		KeyCase: string(formatter.KeyCaseNone),
	}
}

// LoadConfig loads configuration from a YAML or TOML file, chosen by extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	cfg := NewConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that style, icon and key case name known values. Style and
// icon problems keep their own error types.
func (c *Config) Validate() error {
	if _, err := connector.ForStyle(c.Style); err != nil {
		return err
	}
	if _, err := icons.Lookup(c.Icon); err != nil {
		return err
	}
	if err := formatter.ValidateKeyCase(c.KeyCase); err != nil {
		return errors.NewConfigError("invalid key_case", fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err))
	}
	return nil
}

// FindConfigFile searches for a config file in dir and its parents
func FindConfigFile(dir string) string {
	currentDir := dir
	if currentDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		currentDir = wd
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Apply merges command-line overrides into c.
func (c *Config) Apply(o Overrides) {
	if o.Style != "" {
		c.Style = o.Style
	}
	if o.Icon != "" {
		c.Icon = o.Icon
	}
	if o.KeyCase != "" {
		c.KeyCase = o.KeyCase
	}
	if o.KeepPadding {
		c.Output.KeepPadding = true
	}
	if o.Debug {
		c.Dev.Debug = true
	}
}

// LoadConfigWithCLI loads the config file at configPath (if any) and applies
// command-line overrides on top. Command-line values are not validated here;
// the renderer reports bad styles and icon families with their own errors.
func LoadConfigWithCLI(configPath string, o Overrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	cfg.Apply(o)
	return cfg, nil
}
